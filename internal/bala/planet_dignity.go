package bala

import (
	"fmt"
	"math"

	"grahabala/pkg/contracts/chart"
)

// Deep-degree orbs around the exact exaltation/debilitation degree.
const (
	deepOrbTight = 2.0
	deepOrbWide  = 5.0
)

// evalPlanetDignity scores the sign standing of each planet: dignity tier,
// proximity to the deep degree, the cancellation modifier for debilitated
// planets, and retrograde emphasis. Nodes take the tier but skip the
// degree-based refinements.
func evalPlanetDignity(in *Input) *PlanetLayerResult {
	res := newPlanetResult(LayerPlanetDignity)

	for _, p := range chart.AllPlanets() {
		pf, ok := in.fact(p)
		if !ok {
			continue
		}

		switch pf.Dignity {
		case chart.DignityExalted:
			res.Add(p, 15, fmt.Sprintf("exalted in %s", pf.Sign))
		case chart.DignityMoolatrikona:
			res.Add(p, 10, "in moolatrikona")
		case chart.DignityOwn:
			res.Add(p, 8, fmt.Sprintf("own sign %s", pf.Sign))
		case chart.DignityFriend:
			res.Add(p, 4, "")
		case chart.DignityEnemy:
			res.Add(p, -6, fmt.Sprintf("enemy sign %s", pf.Sign))
		case chart.DignityDebilitated:
			res.Add(p, -12, fmt.Sprintf("debilitated in %s", pf.Sign))
			cr, ok := in.cancellation(p)
			if !ok {
				cr = CancellationResult{Modifier: cancellationModifier(0)}
			}
			res.Add(p, cr.Modifier, fmt.Sprintf("%d cancellation rules satisfied", cr.Count))
			if cr.RajaYoga {
				res.Add(p, 0, "neecha bhanga raja yoga")
			}
		}

		if !p.IsNode() {
			res.Add(p, deepDegreePoints(in, p, pf), "")
			if pf.Retrograde {
				res.Add(p, 2, "retrograde")
			}
		}
	}
	return res
}

// deepDegreePoints rewards proximity to the exact exaltation degree and
// mirrors the penalty around the debilitation degree. Zero unless the
// planet stands in the relevant sign.
func deepDegreePoints(in *Input, p chart.Planet, pf chart.PlanetFact) float64 {
	if exSign, exDeg, ok := in.Ref.ExaltationPoint(p); ok && pf.Sign == exSign {
		switch d := math.Abs(pf.Degree - exDeg); {
		case d <= deepOrbTight:
			return 5
		case d <= deepOrbWide:
			return 3
		}
	}
	if debSign, debDeg, ok := in.Ref.DebilitationPoint(p); ok && pf.Sign == debSign {
		switch d := math.Abs(pf.Degree - debDeg); {
		case d <= deepOrbTight:
			return -5
		case d <= deepOrbWide:
			return -3
		}
	}
	return 0
}
