package astro

import "grahabala/pkg/contracts/chart"

// naturalSignificators maps each house to its primary classical karaka
// planet.
var naturalSignificators = map[int]chart.Planet{
	1:  chart.PlanetSun,
	2:  chart.PlanetJupiter,
	3:  chart.PlanetMars,
	4:  chart.PlanetMoon,
	5:  chart.PlanetJupiter,
	6:  chart.PlanetSaturn,
	7:  chart.PlanetVenus,
	8:  chart.PlanetSaturn,
	9:  chart.PlanetJupiter,
	10: chart.PlanetSun,
	11: chart.PlanetJupiter,
	12: chart.PlanetSaturn,
}

// NaturalSignificator returns the primary significator planet of a house.
func (r *Reference) NaturalSignificator(house int) (chart.Planet, bool) {
	p, ok := naturalSignificators[house]
	return p, ok
}

// karakaThemeHouses maps each chara karaka to the house whose theme it
// signifies.
var karakaThemeHouses = map[chart.KarakaCode]int{
	chart.KarakaAtma:    1,
	chart.KarakaAmatya:  10,
	chart.KarakaBhratri: 3,
	chart.KarakaMatri:   4,
	chart.KarakaPutra:   5,
	chart.KarakaGnati:   6,
	chart.KarakaDara:    7,
}

// KarakaThemeHouse returns the theme house of a chara karaka.
func (r *Reference) KarakaThemeHouse(code chart.KarakaCode) (int, bool) {
	h, ok := karakaThemeHouses[code]
	return h, ok
}

// vargaImportance weights the optional divisional charts for the
// multi-chart layers. Weights sum to 1 across the full divisional set;
// absent charts contribute nothing and no renormalization happens, so a
// sparse chart set simply pulls the layer toward neutral.
var vargaImportance = map[chart.VargaCode]float64{
	chart.VargaD2:  0.15,
	chart.VargaD3:  0.10,
	chart.VargaD9:  0.30,
	chart.VargaD10: 0.20,
	chart.VargaD12: 0.10,
	chart.VargaD30: 0.05,
	chart.VargaD60: 0.10,
}

// VargaImportance returns the weight of a divisional chart in the
// multi-chart layers. D1 has no weight there: it is the base chart.
func (r *Reference) VargaImportance(code chart.VargaCode) float64 {
	return vargaImportance[code]
}
