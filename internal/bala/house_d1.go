package bala

import (
	"fmt"

	"grahabala/pkg/contracts/chart"
)

// Caps inside the rashi base layer. The house-group base and the
// conjunction bonus are small enough to need none.
const (
	d1OccupantCap = 6
	d1LordCap     = 4
)

// evalHouseD1Base scores the foundational rashi layer: house-group base
// points, occupant dignity, lord placement, and conjunction emphasis.
func evalHouseD1Base(in *Input) *HouseLayerResult {
	res := newHouseResult(LayerHouseD1Base)

	for h := 1; h <= 12; h++ {
		// Group base points are additive; the ascendant stacks its own
		// mark on top of being both kendra and trikona.
		if in.Ref.IsKendra(h) {
			res.Add(h, 2, "")
		}
		if in.Ref.IsTrikona(h) {
			res.Add(h, 2.5, "")
		}
		if h == 1 {
			res.Add(h, 3, "")
		}
		if in.Ref.IsUpachaya(h) {
			res.Add(h, 1, "")
		}
		if in.Ref.IsDusthana(h) {
			res.Add(h, -2.5, "")
		}

		occ := 0.0
		for _, p := range in.occupantsOf(h) {
			pts, reason := d1OccupantPoints(in, p)
			occ += pts
			res.Add(h, 0, reason)
		}
		res.Add(h, clamp(occ, -d1OccupantCap, d1OccupantCap), "")

		res.Add(h, d1LordPoints(in, h, res), "")

		switch n := len(in.occupantsOf(h)); {
		case n >= 3:
			res.Add(h, 2, fmt.Sprintf("%d planets conjoin", n))
		case n == 2:
			res.Add(h, 1, "two planets conjoin")
		}
	}
	return res
}

// d1OccupantPoints scores one occupant by dignity with a benefic or malefic
// tint. A debilitated occupant contributes its cancellation modifier in
// place of the dignity tier. The normalized fact dignity is authoritative
// here, as in every rashi layer.
func d1OccupantPoints(in *Input, p chart.Planet) (float64, string) {
	pf := in.facts[p]

	var pts float64
	var reason string
	switch pf.Dignity {
	case chart.DignityExalted:
		pts, reason = 3, fmt.Sprintf("%s exalted", p)
	case chart.DignityMoolatrikona:
		pts, reason = 2.5, fmt.Sprintf("%s in moolatrikona", p)
	case chart.DignityOwn:
		pts, reason = 2, fmt.Sprintf("%s in own sign", p)
	case chart.DignityFriend:
		pts = 1
	case chart.DignityNeutral:
		pts = 0.25
	case chart.DignityEnemy:
		pts, reason = -1, fmt.Sprintf("%s in enemy sign", p)
	case chart.DignityDebilitated:
		cr, ok := in.cancellation(p)
		if ok {
			pts = cr.Modifier
			reason = fmt.Sprintf("%s debilitated (%d cancellation rules)", p, cr.Count)
		} else {
			pts = -3
			reason = fmt.Sprintf("%s debilitated", p)
		}
	}

	if in.Ref.IsBenefic(p) {
		pts += 0.5
	} else if in.Ref.IsMalefic(p) {
		pts -= 0.5
	}
	return pts, reason
}

// d1LordPoints scores the house lord's placement and dignity, recording
// reasons directly and returning the capped point total.
func d1LordPoints(in *Input, h int, res *HouseLayerResult) float64 {
	lord, ok := in.lordOf(h)
	if !ok {
		return 0
	}
	lf, ok := in.fact(lord)
	if !ok {
		return 0
	}

	var pts float64
	switch {
	case in.Ref.IsKendra(lf.House):
		pts += 2.5
		res.Add(h, 0, fmt.Sprintf("lord %s in kendra", lord))
	case in.Ref.IsTrikona(lf.House):
		pts += 2.5
		res.Add(h, 0, fmt.Sprintf("lord %s in trikona", lord))
	case in.Ref.IsDusthana(lf.House):
		pts -= 2.5
		res.Add(h, 0, fmt.Sprintf("lord %s in dusthana", lord))
	}

	switch lf.Dignity {
	case chart.DignityExalted:
		pts += 1.5
		res.Add(h, 0, fmt.Sprintf("lord %s exalted", lord))
	case chart.DignityMoolatrikona, chart.DignityOwn:
		pts += 1.5
		res.Add(h, 0, fmt.Sprintf("lord %s in own sign", lord))
	case chart.DignityDebilitated:
		pts -= 1.5
		res.Add(h, 0, fmt.Sprintf("lord %s debilitated", lord))
	}

	return clamp(pts, -d1LordCap, d1LordCap)
}
