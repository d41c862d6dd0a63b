package bala

import (
	"fmt"

	"grahabala/internal/astro"
	"grahabala/pkg/contracts/chart"
)

// Separation in degrees under which two true planets fight a graha yuddha.
const warOrb = 1.0

// warBrightness ranks the five war-capable planets; the brighter planet
// wins. Sun and Moon never fight, the nodes have no disc.
var warBrightness = map[chart.Planet]int{
	chart.PlanetVenus:   5,
	chart.PlanetJupiter: 4,
	chart.PlanetMercury: 3,
	chart.PlanetSaturn:  2,
	chart.PlanetMars:    1,
}

// evalPlanetSpecial scores the degree-level conditions: combustion,
// gandanta junctions, pushkara placements, planetary war, and residence in
// the planet's own nakshatra.
func evalPlanetSpecial(in *Input) *PlanetLayerResult {
	res := newPlanetResult(LayerPlanetSpecial)

	for _, p := range chart.AllPlanets() {
		pf, ok := in.fact(p)
		if !ok {
			continue
		}

		if in.hasSun && p != chart.PlanetSun && !p.IsNode() {
			if orb, ok := in.Ref.CombustionOrb(p); ok {
				switch d := astro.AngularDistance(pf.AbsoluteLongitude(), in.sunLon); {
				case d <= orb/2:
					res.Add(p, -7, "deeply combust")
				case d <= orb:
					res.Add(p, -5, "combust")
				}
			}
		}

		if in.Ref.InGandanta(pf.AbsoluteLongitude()) {
			res.Add(p, -4, "gandanta junction")
		}

		if in.Ref.IsPushkaraBhaga(pf.Sign, pf.Degree, pushkaraBhagaOrb) {
			res.Add(p, 3, "pushkara bhaga")
		}
		if in.Ref.IsPushkaraNavamsha(pf.Sign, pf.Degree) {
			res.Add(p, 2, "pushkara navamsha")
		}

		if lord, ok := in.Ref.NakshatraLord(pf.Nakshatra); ok && lord == p {
			res.Add(p, 2, "own nakshatra")
		}
	}

	scoreWars(in, res)
	return res
}

// scoreWars finds every fighting pair and splits the verdict by brightness.
func scoreWars(in *Input, res *PlanetLayerResult) {
	fighters := []chart.Planet{
		chart.PlanetMars, chart.PlanetMercury, chart.PlanetJupiter,
		chart.PlanetVenus, chart.PlanetSaturn,
	}
	for i, a := range fighters {
		af, ok := in.fact(a)
		if !ok {
			continue
		}
		for _, b := range fighters[i+1:] {
			bf, ok := in.fact(b)
			if !ok {
				continue
			}
			if astro.AngularDistance(af.AbsoluteLongitude(), bf.AbsoluteLongitude()) > warOrb {
				continue
			}
			winner, loser := a, b
			if warBrightness[b] > warBrightness[a] {
				winner, loser = b, a
			}
			res.Add(winner, 2, "wins graha yuddha")
			res.Add(loser, -4, fmt.Sprintf("loses planetary war to %s", winner))
		}
	}
}
