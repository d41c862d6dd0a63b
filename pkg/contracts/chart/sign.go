package chart

// Sign identifies a zodiac sign, numbered 1 (Aries) through 12 (Pisces).
type Sign int

const (
	SignAries Sign = iota + 1
	SignTaurus
	SignGemini
	SignCancer
	SignLeo
	SignVirgo
	SignLibra
	SignScorpio
	SignSagittarius
	SignCapricorn
	SignAquarius
	SignPisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// IsValid reports whether the sign is in 1..12.
func (s Sign) IsValid() bool {
	return s >= SignAries && s <= SignPisces
}

// String returns the sign name, or "Unknown" for out-of-range values.
func (s Sign) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return signNames[s-1]
}

// SignOfLongitude maps an absolute ecliptic longitude to its sign.
func SignOfLongitude(longitude float64) Sign {
	l := NormalizeLongitude(longitude)
	return Sign(int(l/30) + 1)
}

// NormalizeLongitude wraps a longitude into [0,360).
func NormalizeLongitude(longitude float64) float64 {
	l := longitude
	for l < 0 {
		l += 360
	}
	for l >= 360 {
		l -= 360
	}
	return l
}
