package bala

import "grahabala/pkg/contracts/chart"

// evalHouseSudarshana scores each house's sign from the three reference
// points of the sudarshana chakra: the ascendant, the Moon's sign, and the
// Sun's sign. A convergence bonus applies only when all three views exist
// and agree.
func evalHouseSudarshana(in *Input) *HouseLayerResult {
	res := newHouseResult(LayerHouseSudarshana)

	for h := 1; h <= 12; h++ {
		sign := in.signOf(h)
		if !sign.IsValid() {
			continue
		}

		views := []int{chart.HouseFrom(in.Facts.Ascendant, sign)}
		if in.hasMoon {
			views = append(views, chart.HouseFrom(in.moonSign, sign))
		}
		if in.hasSun {
			views = append(views, chart.HouseFrom(in.sunSign, sign))
		}

		favorable, unfavorable := 0, 0
		for _, v := range views {
			switch {
			case in.Ref.IsKendra(v) || in.Ref.IsTrikona(v):
				res.Add(h, 0.75, "")
				favorable++
			case v == 3 || v == 11:
				res.Add(h, 0.25, "")
			case in.Ref.IsDusthana(v):
				res.Add(h, -1, "")
				unfavorable++
			}
		}

		if len(views) == 3 {
			if favorable == 3 {
				res.Add(h, 1.5, "sudarshana convergence")
			} else if unfavorable == 3 {
				res.Add(h, -1.5, "sudarshana affliction")
			}
		}
	}
	return res
}
