package bala

import (
	"fmt"

	"grahabala/pkg/contracts/chart"
)

// Orb in degrees around a sign's auspicious degree for pushkara bhaga.
const pushkaraBhagaOrb = 1.0

// evalHouseNavamsha scores each house by its lord's standing in the
// navamsha. Neutral for every house when no D9 chart was supplied.
func evalHouseNavamsha(in *Input) *HouseLayerResult {
	res := newHouseResult(LayerHouseNavamsha)
	d9, ok := in.Facts.Varga(chart.VargaD9)
	if !ok {
		return res
	}

	for h := 1; h <= 12; h++ {
		lord, ok := in.lordOf(h)
		if !ok {
			continue
		}
		lf, ok := in.fact(lord)
		if !ok {
			continue
		}
		nf, ok := d9.Planet(lord)
		if !ok {
			continue
		}

		if nf.Sign == lf.Sign {
			res.Add(h, 3, fmt.Sprintf("lord %s vargottama", lord))
		}

		switch in.Ref.DignityAt(lord, nf.Sign, nf.Degree) {
		case chart.DignityExalted:
			res.Add(h, 4, fmt.Sprintf("lord %s exalted in navamsha", lord))
		case chart.DignityMoolatrikona, chart.DignityOwn:
			res.Add(h, 3, fmt.Sprintf("lord %s in own navamsha", lord))
		case chart.DignityFriend:
			res.Add(h, 1.5, "")
		case chart.DignityEnemy:
			res.Add(h, -2, fmt.Sprintf("lord %s in enemy navamsha", lord))
		case chart.DignityDebilitated:
			res.Add(h, -4, fmt.Sprintf("lord %s debilitated in navamsha", lord))
		}

		if in.Ref.IsPushkaraNavamsha(lf.Sign, lf.Degree) {
			res.Add(h, 1.5, fmt.Sprintf("lord %s in pushkara navamsha", lord))
		}
	}
	return res
}

// evalHouseVarga scores each house by its lord's dignity across every
// supplied divisional chart, weighted by the chart's importance.
func evalHouseVarga(in *Input) *HouseLayerResult {
	res := newHouseResult(LayerHouseVarga)

	for h := 1; h <= 12; h++ {
		lord, ok := in.lordOf(h)
		if !ok {
			continue
		}

		for _, code := range chart.DivisionalVargas() {
			vc, ok := in.Facts.Varga(code)
			if !ok {
				continue
			}
			vf, ok := vc.Planet(lord)
			if !ok {
				continue
			}

			importance := in.Ref.VargaImportance(code)
			switch in.Ref.DignityAt(lord, vf.Sign, vf.Degree) {
			case chart.DignityExalted, chart.DignityMoolatrikona, chart.DignityOwn:
				res.Add(h, importance*10, fmt.Sprintf("lord %s dignified in %s", lord, code))
			case chart.DignityFriend:
				res.Add(h, importance*5, "")
			case chart.DignityEnemy:
				res.Add(h, importance*-4, "")
			case chart.DignityDebilitated:
				res.Add(h, importance*-6, fmt.Sprintf("lord %s debilitated in %s", lord, code))
			}
		}
	}
	return res
}
