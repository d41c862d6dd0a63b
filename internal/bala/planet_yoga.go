package bala

import (
	"fmt"

	"grahabala/pkg/contracts/chart"
)

// evalPlanetYoga credits every combination to its participants, and adds
// the fixed bonus for a planet whose debilitation the analyzer promoted to
// Neecha-Bhanga Raja-Yoga.
func evalPlanetYoga(in *Input) *PlanetLayerResult {
	res := newPlanetResult(LayerPlanetYoga)

	for _, ry := range in.yogas {
		reason := fmt.Sprintf("%s (%+.1f)", ry.fact.Name, ry.points)
		for _, p := range ry.fact.Participants {
			if _, ok := in.fact(p); !ok {
				continue
			}
			res.Add(p, ry.points, reason)
		}
	}

	for _, p := range chart.AllPlanets() {
		if cr, ok := in.cancellation(p); ok && cr.RajaYoga {
			res.Add(p, 2, "neecha bhanga raja yoga")
		}
	}
	return res
}
