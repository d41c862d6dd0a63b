package astro

import "grahabala/pkg/contracts/chart"

// aspectOffsets holds the whole-sign graha drishti of each planet as house
// counts from its own position. Every planet casts the 7th; Mars, Jupiter
// and Saturn add their classical special aspects; the nodes cast 5/7/9.
var aspectOffsets = map[chart.Planet][]int{
	chart.PlanetSun:     {7},
	chart.PlanetMoon:    {7},
	chart.PlanetMars:    {4, 7, 8},
	chart.PlanetMercury: {7},
	chart.PlanetJupiter: {5, 7, 9},
	chart.PlanetVenus:   {7},
	chart.PlanetSaturn:  {3, 7, 10},
	chart.PlanetRahu:    {5, 7, 9},
	chart.PlanetKetu:    {5, 7, 9},
}

// AspectOffsets returns the drishti offsets of a planet.
func (r *Reference) AspectOffsets(p chart.Planet) []int {
	return aspectOffsets[p]
}

// Aspects reports whether a planet placed in house `from` casts a full
// aspect on house `to`, both whole-sign house numbers 1..12.
func (r *Reference) Aspects(p chart.Planet, from, to int) bool {
	if from < 1 || from > 12 || to < 1 || to > 12 {
		return false
	}
	offset := (to-from+12)%12 + 1
	return containsInt(aspectOffsets[p], offset)
}

// HousesAspectedBy lists the houses a planet in house `from` aspects.
func (r *Reference) HousesAspectedBy(p chart.Planet, from int) []int {
	if from < 1 || from > 12 {
		return nil
	}
	offsets := aspectOffsets[p]
	houses := make([]int, 0, len(offsets))
	for _, o := range offsets {
		houses = append(houses, (from+o-2)%12+1)
	}
	return houses
}
