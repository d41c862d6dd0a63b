package astro

import "grahabala/pkg/contracts/chart"

// Nakshatra span in degrees: 360/27.
const nakshatraSpan = 360.0 / 27.0

var nakshatraNames = [...]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// Vimshottari lord cycle, repeating three times across the 27 mansions.
var nakshatraLordCycle = [...]chart.Planet{
	chart.PlanetKetu, chart.PlanetVenus, chart.PlanetSun, chart.PlanetMoon,
	chart.PlanetMars, chart.PlanetRahu, chart.PlanetJupiter,
	chart.PlanetSaturn, chart.PlanetMercury,
}

// NakshatraOf maps an absolute longitude to its lunar mansion, 1..27.
func (r *Reference) NakshatraOf(longitude float64) int {
	l := chart.NormalizeLongitude(longitude)
	n := int(l/nakshatraSpan) + 1
	if n > 27 {
		n = 27
	}
	return n
}

// NakshatraName returns the mansion name for an index 1..27.
func (r *Reference) NakshatraName(n int) string {
	if n < 1 || n > 27 {
		return "Unknown"
	}
	return nakshatraNames[n-1]
}

// NakshatraLord returns the Vimshottari lord of a mansion index 1..27.
func (r *Reference) NakshatraLord(n int) (chart.Planet, bool) {
	if n < 1 || n > 27 {
		return "", false
	}
	return nakshatraLordCycle[(n-1)%9], true
}

// Tara is one step of the 9-fold favorability cycle counted from the birth
// Moon's mansion.
type Tara string

const (
	TaraJanma       Tara = "janma"
	TaraSampat      Tara = "sampat"
	TaraVipat       Tara = "vipat"
	TaraKshema      Tara = "kshema"
	TaraPratyak     Tara = "pratyak"
	TaraSadhana     Tara = "sadhana"
	TaraNaidhana    Tara = "naidhana"
	TaraMitra       Tara = "mitra"
	TaraParamaMitra Tara = "parama_mitra"
)

var taraCycle = [...]Tara{
	TaraJanma, TaraSampat, TaraVipat, TaraKshema, TaraPratyak,
	TaraSadhana, TaraNaidhana, TaraMitra, TaraParamaMitra,
}

// TaraOf returns the favorability step of mansion `to` counted from
// mansion `from`, both 1..27. The count is inclusive, so a mansion counted
// from itself is Janma.
func (r *Reference) TaraOf(from, to int) (Tara, bool) {
	if from < 1 || from > 27 || to < 1 || to > 27 {
		return "", false
	}
	count := (to-from+27)%27 + 1
	return taraCycle[(count-1)%9], true
}
