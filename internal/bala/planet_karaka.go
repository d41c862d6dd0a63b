package bala

import (
	"fmt"

	"grahabala/pkg/contracts/chart"
)

// Cap on the net argala balance.
const argalaCap = 4

// karakaRankPoints grades the Jaimini chara ranks.
var karakaRankPoints = map[chart.KarakaCode]float64{
	chart.KarakaAtma:    4,
	chart.KarakaAmatya:  3.5,
	chart.KarakaBhratri: 2.5,
	chart.KarakaMatri:   2,
	chart.KarakaPutra:   1.5,
	chart.KarakaGnati:   1,
	chart.KarakaDara:    0.5,
}

// evalPlanetKaraka scores the Jaimini signals attached to each planet: its
// chara rank, the argala balance around its seat, and keeping company with
// the two highest karakas.
func evalPlanetKaraka(in *Input) *PlanetLayerResult {
	res := newPlanetResult(LayerPlanetKaraka)

	for _, k := range in.karakas {
		pts := karakaRankPoints[k.Code] * k.EffectiveStrength()
		res.Add(k.Planet, pts, fmt.Sprintf("%s chara karaka", k.Code))
	}

	for _, p := range chart.AllPlanets() {
		h, ok := in.houseOf(p)
		if !ok {
			continue
		}
		res.Add(p, argalaBalance(in, h), "")
	}

	scoreKarakaCompany(in, res)
	return res
}

// argalaBalance nets the intervening planets around a seat house: support
// from the 2nd, 4th and 11th, obstruction from the 3rd, 10th and 12th.
// Benefics intervene harder and obstruct softer than malefics.
func argalaBalance(in *Input, seat int) float64 {
	nth := func(offset int) int {
		return (seat+offset-2)%12 + 1
	}

	var net float64
	for _, offset := range []int{2, 4, 11} {
		for _, q := range in.occupantsOf(nth(offset)) {
			if in.Ref.IsBenefic(q) {
				net += 1
			} else if in.Ref.IsMalefic(q) {
				net += 0.5
			}
		}
	}
	for _, offset := range []int{3, 10, 12} {
		for _, q := range in.occupantsOf(nth(offset)) {
			if in.Ref.IsBenefic(q) {
				net -= 0.5
			} else if in.Ref.IsMalefic(q) {
				net -= 1
			}
		}
	}
	return clamp(net, -argalaCap, argalaCap)
}

// scoreKarakaCompany rewards sharing a house with the soul and career
// karakas.
func scoreKarakaCompany(in *Input, res *PlanetLayerResult) {
	for _, k := range in.karakas {
		var pts float64
		switch k.Code {
		case chart.KarakaAtma:
			pts = 2
		case chart.KarakaAmatya:
			pts = 1.5
		default:
			continue
		}
		kh, ok := in.houseOf(k.Planet)
		if !ok {
			continue
		}
		for _, q := range in.occupantsOf(kh) {
			if q == k.Planet {
				continue
			}
			res.Add(q, pts, fmt.Sprintf("conjunct %s %s", k.Code, k.Planet))
		}
	}
}
