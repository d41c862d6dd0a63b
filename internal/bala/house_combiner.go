package bala

import (
	"math"
	"sort"

	"grahabala/pkg/contracts/score"
)

// maxHouseReasons bounds the reason list on a house scorecard.
const maxHouseReasons = 6

// weightedReason pairs a reason string with the absolute weighted
// contribution of the layer that produced it, for ranking.
type weightedReason struct {
	text   string
	weight float64
}

// combineHouses folds the clamped layer results into final 0..100 house
// scores. Results arrive in registry order, so results[i] pairs with
// houseLayers()[i]. The raw total is the weight-scaled sum of layer raws;
// the score is an affine map of the raw total onto the percentage scale.
func combineHouses(in *Input, results []*HouseLayerResult) (map[string]float64, map[string]score.HouseScorecard) {
	registry := houseLayers()
	scores := make(map[string]float64, 12)
	details := make(map[string]score.HouseScorecard, 12)

	for h := 1; h <= 12; h++ {
		var rawTotal float64
		contribs := make([]score.LayerContribution, 0, len(results))
		var reasons []weightedReason

		for i, res := range results {
			spec := registry[i].spec(in.Params.Houses)
			raw := res.Raw(h)
			weighted := spec.Weight * raw
			rawTotal += weighted
			contribs = append(contribs, score.LayerContribution{
				Layer:    res.Layer,
				Raw:      raw,
				Weighted: weighted,
			})
			for _, txt := range res.Reasons(h) {
				reasons = append(reasons, weightedReason{text: txt, weight: math.Abs(weighted)})
			}
		}

		s := clamp(in.Params.HouseBase+rawTotal*in.Params.HouseScale, 0, 100)
		key := score.HouseKey(h)
		scores[key] = s
		details[key] = score.HouseScorecard{
			House:         h,
			Score:         s,
			RawTotal:      rawTotal,
			Contributions: contribs,
			TopReasons:    topReasons(reasons, maxHouseReasons),
		}
	}
	return scores, details
}

// topReasons ranks reasons by descending weight and keeps the first n. The
// sort is stable so reasons from one layer keep their insertion order.
func topReasons(reasons []weightedReason, n int) []string {
	if len(reasons) == 0 {
		return nil
	}
	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].weight > reasons[j].weight
	})
	if len(reasons) > n {
		reasons = reasons[:n]
	}
	out := make([]string, len(reasons))
	for i, r := range reasons {
		out[i] = r.text
	}
	return out
}
