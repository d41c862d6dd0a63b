package chart

// YogaCategory tags a detected combination with its classical family.
type YogaCategory string

const (
	YogaCategoryRaja        YogaCategory = "raja"
	YogaCategoryDhana       YogaCategory = "dhana"
	YogaCategoryVidya       YogaCategory = "vidya"
	YogaCategoryMahapurusha YogaCategory = "mahapurusha"
	YogaCategoryLunar       YogaCategory = "lunar"
	YogaCategorySolar       YogaCategory = "solar"
	YogaCategoryAffliction  YogaCategory = "affliction"
	YogaCategoryOther       YogaCategory = "other"
)

// IsValid reports whether the category is a known family.
func (c YogaCategory) IsValid() bool {
	switch c {
	case YogaCategoryRaja, YogaCategoryDhana, YogaCategoryVidya,
		YogaCategoryMahapurusha, YogaCategoryLunar, YogaCategorySolar,
		YogaCategoryAffliction, YogaCategoryOther:
		return true
	}
	return false
}

// YogaStrength is the qualitative strength label reported by the upstream
// yoga detector.
type YogaStrength string

const (
	YogaStrengthStrong   YogaStrength = "strong"
	YogaStrengthModerate YogaStrength = "moderate"
	YogaStrengthWeak     YogaStrength = "weak"
)

// IsValid reports whether the label is one of the three known strengths.
func (s YogaStrength) IsValid() bool {
	return s == YogaStrengthStrong || s == YogaStrengthModerate || s == YogaStrengthWeak
}

// YogaFact represents one combination detected by the upstream analyzer.
// Detection is out of scope here: facts arrive as an ordered list and are
// mapped onto houses and planets through the combination catalog.
type YogaFact struct {
	Name         string       `json:"name" validate:"required"`
	Category     YogaCategory `json:"category,omitempty"`
	Participants []Planet     `json:"participants,omitempty"`
	Houses       []int        `json:"houses,omitempty" validate:"dive,min=1,max=12"`
	Strength     YogaStrength `json:"strength,omitempty"`
	Description  string       `json:"description,omitempty"`
}

// HasParticipant reports whether the planet takes part in the combination.
func (y YogaFact) HasParticipant(p Planet) bool {
	for _, q := range y.Participants {
		if q == p {
			return true
		}
	}
	return false
}
