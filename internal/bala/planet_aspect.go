package bala

import (
	"fmt"

	"grahabala/pkg/contracts/chart"
)

// evalPlanetAspect scores the aspects a planet receives, the company it
// keeps, and hemming by the surrounding houses. Jupiter and Saturn weigh
// more than the other benefics and malefics since their special aspect
// patterns reach further.
func evalPlanetAspect(in *Input) *PlanetLayerResult {
	res := newPlanetResult(LayerPlanetAspect)

	for _, p := range chart.AllPlanets() {
		h, ok := in.houseOf(p)
		if !ok {
			continue
		}

		for _, q := range chart.AllPlanets() {
			if q == p {
				continue
			}
			qh, ok := in.houseOf(q)
			if !ok {
				continue
			}

			if qh == h {
				if in.Ref.IsBenefic(q) {
					res.Add(p, 1.5, fmt.Sprintf("conjunct benefic %s", q))
				} else if in.Ref.IsMalefic(q) {
					res.Add(p, -1.5, fmt.Sprintf("conjunct malefic %s", q))
				}
				continue
			}

			if !in.Ref.Aspects(q, qh, h) {
				continue
			}
			switch {
			case q.IsNode():
				res.Add(p, -1.5, fmt.Sprintf("node affliction from %s", q))
			case q == chart.PlanetJupiter:
				res.Add(p, 3, "benefic aspect from Jupiter")
			case q == chart.PlanetSaturn:
				res.Add(p, -3, "malefic aspect from Saturn")
			case in.Ref.IsBenefic(q):
				res.Add(p, 2, fmt.Sprintf("benefic aspect from %s", q))
			case in.Ref.IsMalefic(q):
				res.Add(p, -2, fmt.Sprintf("malefic aspect from %s", q))
			}
		}

		pts, reason := hemmingPoints(in, h)
		res.Add(p, pts, reason)
	}
	return res
}

// hemmingPoints checks the two adjacent houses for the kartari patterns:
// benefics on both sides shelter the planet, malefics squeeze it.
func hemmingPoints(in *Input, h int) (float64, string) {
	prev := (h+10)%12 + 1
	next := h%12 + 1

	benefic := func(house int) bool {
		for _, q := range in.occupantsOf(house) {
			if in.Ref.IsBenefic(q) {
				return true
			}
		}
		return false
	}
	malefic := func(house int) bool {
		for _, q := range in.occupantsOf(house) {
			if in.Ref.IsMalefic(q) {
				return true
			}
		}
		return false
	}

	if benefic(prev) && benefic(next) {
		return 3, "hemmed by benefics"
	}
	if malefic(prev) && malefic(next) {
		return -3, "hemmed by malefics (papa kartari)"
	}
	return 0, ""
}
