package bala

import "grahabala/pkg/contracts/chart"

// naisargikaBala ranks the planets by intrinsic luminosity, the classical
// ordering scaled down to layer points. The nodes take a small shared
// value.
var naisargikaBala = map[chart.Planet]float64{
	chart.PlanetSun:     3.0,
	chart.PlanetMoon:    2.6,
	chart.PlanetVenus:   2.1,
	chart.PlanetJupiter: 1.7,
	chart.PlanetMercury: 1.3,
	chart.PlanetMars:    0.9,
	chart.PlanetSaturn:  0.4,
	chart.PlanetRahu:    0.6,
	chart.PlanetKetu:    0.6,
}

// sthanaBala maps dignity to positional strength points.
var sthanaBala = map[chart.Dignity]float64{
	chart.DignityExalted:      5,
	chart.DignityMoolatrikona: 4.5,
	chart.DignityOwn:          4,
	chart.DignityFriend:       3,
	chart.DignityNeutral:      2,
	chart.DignityEnemy:        1,
	chart.DignityDebilitated:  0,
}

// dayStrong and nightStrong split the true planets by kala affinity.
// Mercury is strong at all hours.
var (
	dayStrong   = map[chart.Planet]bool{chart.PlanetSun: true, chart.PlanetJupiter: true, chart.PlanetVenus: true}
	nightStrong = map[chart.Planet]bool{chart.PlanetMoon: true, chart.PlanetMars: true, chart.PlanetSaturn: true}
)

// evalPlanetShadbala approximates the six-fold strength from the facts the
// contract carries: intrinsic rank, positional dignity, the day/night kala
// split read from the Sun's house, and retrograde chesta. A chart without
// a Sun is treated as a night birth.
func evalPlanetShadbala(in *Input) *PlanetLayerResult {
	res := newPlanetResult(LayerPlanetShadbala)

	for _, p := range chart.AllPlanets() {
		pf, ok := in.fact(p)
		if !ok {
			continue
		}

		res.Add(p, naisargikaBala[p], "")
		res.Add(p, sthanaBala[pf.Dignity], "")

		switch {
		case p.IsNode():
			res.Add(p, 1.25, "")
		case p == chart.PlanetMercury,
			in.dayBirth && dayStrong[p],
			!in.dayBirth && nightStrong[p]:
			res.Add(p, 2.5, "")
		}

		if pf.Retrograde && !p.IsNode() {
			res.Add(p, 3, "")
		}
	}
	return res
}
