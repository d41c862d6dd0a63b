package bala

import (
	"fmt"

	"grahabala/pkg/contracts/chart"
)

// evalHouseKaraka scores houses hosting chara karakas and natural
// significators. The layer only rewards; its floor is zero.
func evalHouseKaraka(in *Input) *HouseLayerResult {
	res := newHouseResult(LayerHouseKaraka)

	for _, k := range in.karakas {
		h, ok := in.houseOf(k.Planet)
		if !ok {
			continue
		}
		strength := k.EffectiveStrength()

		pts := 2.0
		if k.Code == chart.KarakaAtma {
			pts = 3.0
		}
		res.Add(h, pts*strength, fmt.Sprintf("%s karaka %s occupies", k.Code, k.Planet))

		if theme, ok := in.Ref.KarakaThemeHouse(k.Code); ok && theme == h {
			res.Add(h, 1.5, fmt.Sprintf("%s karaka in its theme house", k.Code))
		}

		if k.Code == chart.KarakaAtma {
			if in.Ref.IsKendra(h) {
				for _, kh := range in.Ref.KendraHouses() {
					res.Add(kh, 1, "")
				}
				res.Add(h, 0, "atma karaka in kendra")
			}
			if h == 10 {
				res.Add(10, 2, "atma karaka in the tenth")
			}
		}
	}

	for h := 1; h <= 12; h++ {
		sig, ok := in.Ref.NaturalSignificator(h)
		if !ok {
			continue
		}
		if ph, placed := in.houseOf(sig); placed && ph == h {
			res.Add(h, 1, fmt.Sprintf("natural significator %s present", sig))
		}
	}
	return res
}
