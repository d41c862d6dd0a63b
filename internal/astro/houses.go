package astro

import "grahabala/pkg/contracts/chart"

// Classical house groupings. House 1 belongs to both the kendra and trikona
// sets; house 6 is both dusthana and upachaya, and group effects are
// treated as additive by the layers.
var (
	kendraHouses   = []int{1, 4, 7, 10}
	trikonaHouses  = []int{1, 5, 9}
	dusthanaHouses = []int{6, 8, 12}
	upachayaHouses = []int{3, 6, 10, 11}
)

// IsKendra reports whether the house is angular.
func (r *Reference) IsKendra(house int) bool { return containsInt(kendraHouses, house) }

// IsTrikona reports whether the house is a trine.
func (r *Reference) IsTrikona(house int) bool { return containsInt(trikonaHouses, house) }

// IsDusthana reports whether the house is one of the difficult houses.
func (r *Reference) IsDusthana(house int) bool { return containsInt(dusthanaHouses, house) }

// IsUpachaya reports whether the house is a growth house.
func (r *Reference) IsUpachaya(house int) bool { return containsInt(upachayaHouses, house) }

// KendraHouses returns the angular house numbers.
func (r *Reference) KendraHouses() []int { return kendraHouses }

// BadhakaHouse returns the obstruction house for an ascendant sign:
// 11th for movable, 9th for fixed, 7th for dual ascendants.
func (r *Reference) BadhakaHouse(ascendant chart.Sign) int {
	switch r.ModalityOf(ascendant) {
	case ModalityMovable:
		return 11
	case ModalityFixed:
		return 9
	case ModalityDual:
		return 7
	default:
		return 0
	}
}

// digBalaHouses maps each planet to the house where it gains full
// directional strength. The nodes carry no directional strength.
var digBalaHouses = map[chart.Planet]int{
	chart.PlanetJupiter: 1,
	chart.PlanetMercury: 1,
	chart.PlanetMoon:    4,
	chart.PlanetVenus:   4,
	chart.PlanetSaturn:  7,
	chart.PlanetSun:     10,
	chart.PlanetMars:    10,
}

// DigBalaHouse returns the directional-strength house of a planet.
func (r *Reference) DigBalaHouse(p chart.Planet) (int, bool) {
	h, ok := digBalaHouses[p]
	return h, ok
}

// DigBalaOppositeHouse returns the house directly opposite the planet's
// directional-strength house, where it is directionally weakest.
func (r *Reference) DigBalaOppositeHouse(p chart.Planet) (int, bool) {
	h, ok := digBalaHouses[p]
	if !ok {
		return 0, false
	}
	return (h+5)%12 + 1, true
}
