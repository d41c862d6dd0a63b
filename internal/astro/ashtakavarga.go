package astro

import "grahabala/pkg/contracts/chart"

// ashtakavargaTable lists, for one planet's bhinnashtakavarga, the benefic
// house offsets contributed by each reference point: the seven classical
// planets plus the ascendant. Offsets count inclusively from the
// contributor's sign.
type ashtakavargaTable struct {
	FromPlanet map[chart.Planet][]int
	FromLagna  []int
}

// Standard Parashari benefic-place tables. Row totals: Sun 48, Moon 49,
// Mars 39, Mercury 54, Jupiter 56, Venus 52, Saturn 39; grand total 337.
var ashtakavargaTables = map[chart.Planet]ashtakavargaTable{
	chart.PlanetSun: {
		FromPlanet: map[chart.Planet][]int{
			chart.PlanetSun:     {1, 2, 4, 7, 8, 9, 10, 11},
			chart.PlanetMoon:    {3, 6, 10, 11},
			chart.PlanetMars:    {1, 2, 4, 7, 8, 9, 10, 11},
			chart.PlanetMercury: {3, 5, 6, 9, 10, 11, 12},
			chart.PlanetJupiter: {5, 6, 9, 11},
			chart.PlanetVenus:   {6, 7, 12},
			chart.PlanetSaturn:  {1, 2, 4, 7, 8, 9, 10, 11},
		},
		FromLagna: []int{3, 4, 6, 10, 11, 12},
	},
	chart.PlanetMoon: {
		FromPlanet: map[chart.Planet][]int{
			chart.PlanetSun:     {3, 6, 7, 8, 10, 11},
			chart.PlanetMoon:    {1, 3, 6, 7, 10, 11},
			chart.PlanetMars:    {2, 3, 5, 6, 9, 10, 11},
			chart.PlanetMercury: {1, 3, 4, 5, 7, 8, 10, 11},
			chart.PlanetJupiter: {1, 4, 7, 8, 10, 11, 12},
			chart.PlanetVenus:   {3, 4, 5, 7, 9, 10, 11},
			chart.PlanetSaturn:  {3, 5, 6, 11},
		},
		FromLagna: []int{3, 6, 10, 11},
	},
	chart.PlanetMars: {
		FromPlanet: map[chart.Planet][]int{
			chart.PlanetSun:     {3, 5, 6, 10, 11},
			chart.PlanetMoon:    {3, 6, 11},
			chart.PlanetMars:    {1, 2, 4, 7, 8, 10, 11},
			chart.PlanetMercury: {3, 5, 6, 11},
			chart.PlanetJupiter: {6, 10, 11, 12},
			chart.PlanetVenus:   {6, 8, 11, 12},
			chart.PlanetSaturn:  {1, 4, 7, 8, 9, 10, 11},
		},
		FromLagna: []int{1, 3, 6, 10, 11},
	},
	chart.PlanetMercury: {
		FromPlanet: map[chart.Planet][]int{
			chart.PlanetSun:     {5, 6, 9, 11, 12},
			chart.PlanetMoon:    {2, 4, 6, 8, 10, 11},
			chart.PlanetMars:    {1, 2, 4, 7, 8, 9, 10, 11},
			chart.PlanetMercury: {1, 3, 5, 6, 9, 10, 11, 12},
			chart.PlanetJupiter: {6, 8, 11, 12},
			chart.PlanetVenus:   {1, 2, 3, 4, 5, 8, 9, 11},
			chart.PlanetSaturn:  {1, 2, 4, 7, 8, 9, 10, 11},
		},
		FromLagna: []int{1, 2, 4, 6, 8, 10, 11},
	},
	chart.PlanetJupiter: {
		FromPlanet: map[chart.Planet][]int{
			chart.PlanetSun:     {1, 2, 3, 4, 7, 8, 9, 10, 11},
			chart.PlanetMoon:    {2, 5, 7, 9, 11},
			chart.PlanetMars:    {1, 2, 4, 7, 8, 10, 11},
			chart.PlanetMercury: {1, 2, 4, 5, 6, 9, 10, 11},
			chart.PlanetJupiter: {1, 2, 3, 4, 7, 8, 10, 11},
			chart.PlanetVenus:   {2, 5, 6, 9, 10, 11},
			chart.PlanetSaturn:  {3, 5, 6, 12},
		},
		FromLagna: []int{1, 2, 4, 5, 6, 7, 9, 10, 11},
	},
	chart.PlanetVenus: {
		FromPlanet: map[chart.Planet][]int{
			chart.PlanetSun:     {8, 11, 12},
			chart.PlanetMoon:    {1, 2, 3, 4, 5, 8, 9, 11, 12},
			chart.PlanetMars:    {3, 5, 6, 9, 11, 12},
			chart.PlanetMercury: {3, 5, 6, 9, 11},
			chart.PlanetJupiter: {5, 8, 9, 10, 11},
			chart.PlanetVenus:   {1, 2, 3, 4, 5, 8, 9, 10, 11},
			chart.PlanetSaturn:  {3, 4, 5, 8, 9, 10, 11},
		},
		FromLagna: []int{1, 2, 3, 4, 5, 8, 9, 11},
	},
	chart.PlanetSaturn: {
		FromPlanet: map[chart.Planet][]int{
			chart.PlanetSun:     {1, 2, 4, 7, 8, 10, 11},
			chart.PlanetMoon:    {3, 6, 11},
			chart.PlanetMars:    {3, 5, 6, 10, 11, 12},
			chart.PlanetMercury: {6, 8, 9, 10, 11, 12},
			chart.PlanetJupiter: {5, 6, 11, 12},
			chart.PlanetVenus:   {6, 11, 12},
			chart.PlanetSaturn:  {3, 5, 6, 11},
		},
		FromLagna: []int{1, 3, 4, 6, 10, 11},
	},
}

// AshtakavargaPlanets returns the seven planets that own a
// bhinnashtakavarga table, in canonical order. The nodes own none.
func (r *Reference) AshtakavargaPlanets() []chart.Planet {
	return []chart.Planet{
		chart.PlanetSun, chart.PlanetMoon, chart.PlanetMars,
		chart.PlanetMercury, chart.PlanetJupiter, chart.PlanetVenus,
		chart.PlanetSaturn,
	}
}

// BinduCount returns the bindu total (0..8) of planet p's own table for a
// target sign, given the D1 sign positions of the seven contributors and
// the ascendant sign. Contributors missing from positions simply add
// nothing. The second return is false when p owns no table (the nodes).
func (r *Reference) BinduCount(p chart.Planet, target chart.Sign, positions map[chart.Planet]chart.Sign, ascendant chart.Sign) (int, bool) {
	table, ok := ashtakavargaTables[p]
	if !ok || !target.IsValid() {
		return 0, false
	}
	count := 0
	for contributor, offsets := range table.FromPlanet {
		from, present := positions[contributor]
		if !present || !from.IsValid() {
			continue
		}
		if containsInt(offsets, chart.HouseFrom(from, target)) {
			count++
		}
	}
	if ascendant.IsValid() && containsInt(table.FromLagna, chart.HouseFrom(ascendant, target)) {
		count++
	}
	return count, true
}

// SarvaBindu returns the sarvashtakavarga total of a sign: the sum of all
// seven planets' bindu counts there. The classical all-sign average is
// about 28.
func (r *Reference) SarvaBindu(target chart.Sign, positions map[chart.Planet]chart.Sign, ascendant chart.Sign) int {
	total := 0
	for _, p := range r.AshtakavargaPlanets() {
		n, _ := r.BinduCount(p, target, positions, ascendant)
		total += n
	}
	return total
}

// Kakshya segment span within a sign: 30/8 degrees.
const kakshyaSpan = 3.75

// kakshyaRulers orders the eight sub-sign segment rulers; the eighth
// segment belongs to the ascendant.
var kakshyaRulers = [...]chart.Planet{
	chart.PlanetSaturn, chart.PlanetJupiter, chart.PlanetMars,
	chart.PlanetSun, chart.PlanetVenus, chart.PlanetMercury,
	chart.PlanetMoon,
}

// KakshyaRuler returns the ruler of the sub-sign segment holding the given
// degree within a sign. isLagna is true for the eighth segment, which is
// ruled by the ascendant rather than a planet.
func (r *Reference) KakshyaRuler(degreeInSign float64) (ruler chart.Planet, isLagna bool) {
	idx := int(degreeInSign / kakshyaSpan)
	if idx < 0 {
		idx = 0
	}
	if idx > 7 {
		idx = 7
	}
	if idx == 7 {
		return "", true
	}
	return kakshyaRulers[idx], false
}
