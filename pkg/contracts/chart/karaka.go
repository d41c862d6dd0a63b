package chart

// KarakaCode identifies a Jaimini chara karaka rank, assigned upstream by
// degree ordering.
type KarakaCode string

const (
	KarakaAtma    KarakaCode = "AK"  // soul significator
	KarakaAmatya  KarakaCode = "AmK" // career significator
	KarakaBhratri KarakaCode = "BK"  // siblings significator
	KarakaMatri   KarakaCode = "MK"  // mother significator
	KarakaPutra   KarakaCode = "PK"  // children significator
	KarakaGnati   KarakaCode = "GK"  // obstacles significator
	KarakaDara    KarakaCode = "DK"  // spouse significator
)

// AllKarakas returns the seven chara karakas in rank order, strongest first.
func AllKarakas() []KarakaCode {
	return []KarakaCode{
		KarakaAtma, KarakaAmatya, KarakaBhratri, KarakaMatri,
		KarakaPutra, KarakaGnati, KarakaDara,
	}
}

// IsValid reports whether the code is one of the seven chara karakas.
func (c KarakaCode) IsValid() bool {
	switch c {
	case KarakaAtma, KarakaAmatya, KarakaBhratri, KarakaMatri,
		KarakaPutra, KarakaGnati, KarakaDara:
		return true
	}
	return false
}

// KarakaFact pairs a karaka code with the planet holding that rank for the
// chart. Strength is the upstream degree-derived confidence in (0,1];
// zero means unreported and is treated as full strength.
type KarakaFact struct {
	Code     KarakaCode `json:"code" validate:"required"`
	Planet   Planet     `json:"planet" validate:"required"`
	Strength float64    `json:"strength,omitempty" validate:"gte=0,lte=1"`
}

// EffectiveStrength returns the strength to score with, defaulting to 1.
func (k KarakaFact) EffectiveStrength() float64 {
	if k.Strength <= 0 || k.Strength > 1 {
		return 1
	}
	return k.Strength
}
