package bala

import (
	"fmt"

	"grahabala/pkg/contracts/chart"
)

// evalPlanetNavamsha scores each planet's own standing in the navamsha,
// plus the pushkara refinements judged on the rashi position. Neutral for
// every planet when no D9 chart was supplied.
func evalPlanetNavamsha(in *Input) *PlanetLayerResult {
	res := newPlanetResult(LayerPlanetNavamsha)
	d9, ok := in.Facts.Varga(chart.VargaD9)
	if !ok {
		return res
	}

	for _, p := range chart.AllPlanets() {
		pf, ok := in.fact(p)
		if !ok {
			continue
		}
		nf, ok := d9.Planet(p)
		if !ok {
			continue
		}

		if nf.Sign == pf.Sign {
			res.Add(p, 5, "vargottama")
		}

		switch in.Ref.DignityAt(p, nf.Sign, nf.Degree) {
		case chart.DignityExalted:
			res.Add(p, 6, "exalted in navamsha")
		case chart.DignityMoolatrikona:
			res.Add(p, 5, "moolatrikona navamsha")
		case chart.DignityOwn:
			res.Add(p, 4, "own navamsha")
		case chart.DignityFriend:
			res.Add(p, 2, "")
		case chart.DignityEnemy:
			res.Add(p, -2, "enemy navamsha")
		case chart.DignityDebilitated:
			res.Add(p, -4, "debilitated in navamsha")
		}

		if in.Ref.IsPushkaraNavamsha(pf.Sign, pf.Degree) {
			res.Add(p, 2, "pushkara navamsha")
		}
		if in.Ref.IsPushkaraBhaga(pf.Sign, pf.Degree, pushkaraBhagaOrb) {
			res.Add(p, 1, "pushkara bhaga")
		}
	}
	return res
}

// evalPlanetVarga scores each planet's dignity across every supplied
// divisional chart, weighted by the chart's importance.
func evalPlanetVarga(in *Input) *PlanetLayerResult {
	res := newPlanetResult(LayerPlanetVarga)

	for _, p := range chart.AllPlanets() {
		if _, ok := in.fact(p); !ok {
			continue
		}

		for _, code := range chart.DivisionalVargas() {
			vc, ok := in.Facts.Varga(code)
			if !ok {
				continue
			}
			vf, ok := vc.Planet(p)
			if !ok {
				continue
			}

			importance := in.Ref.VargaImportance(code)
			switch in.Ref.DignityAt(p, vf.Sign, vf.Degree) {
			case chart.DignityExalted:
				res.Add(p, importance*10, fmt.Sprintf("exalted in %s", code))
			case chart.DignityMoolatrikona, chart.DignityOwn:
				res.Add(p, importance*8, fmt.Sprintf("own sign in %s", code))
			case chart.DignityFriend:
				res.Add(p, importance*4, "")
			case chart.DignityEnemy:
				res.Add(p, importance*-5, "")
			case chart.DignityDebilitated:
				res.Add(p, importance*-10, fmt.Sprintf("debilitated in %s", code))
			}
		}
	}
	return res
}
