package bala

import (
	"fmt"
	"sort"
	"strings"

	"grahabala/pkg/contracts/chart"
	"grahabala/pkg/contracts/score"
)

// maxPlanetReasons bounds the strengths and weaknesses lists.
const maxPlanetReasons = 5

// Keyword sets deciding which layer reasons surface on the scorecard.
var (
	positiveKeywords = []string{
		"exalted", "own sign", "moolatrikona", "vargottama", "kendra",
		"trikona", "benefic", "yoga", "pushkara", "friendly", "dig bala",
		"raja",
	}
	negativeKeywords = []string{
		"debilitated", "combust", "dusthana", "malefic", "enemy",
		"gandanta", "war", "affliction", "papa", "badhaka",
	}
)

// layerView is one layer's evaluated state for a single planet, kept long
// enough to rank reasons.
type layerView struct {
	weighted float64
	topHalf  bool
	lowHalf  bool
	reasons  []string
}

// combinePlanets normalizes each clamped layer raw onto [0,1], folds the
// weighted sum onto a nominal 0..100 scale, and calibrates it through the
// anchor line. Results arrive in registry order, so results[i] pairs with
// planetLayers()[i]. Every canonical planet gets a scorecard; an unplaced
// planet simply reads neutral on every layer.
func combinePlanets(in *Input, results []*PlanetLayerResult) map[string]score.PlanetScorecard {
	registry := planetLayers()
	out := make(map[string]score.PlanetScorecard, 9)

	for _, p := range chart.AllPlanets() {
		var rawTotal float64
		views := make([]layerView, 0, len(results))
		contribs := make([]score.LayerContribution, 0, len(results))

		for i, res := range results {
			spec := registry[i].spec(in.Params.Planets)
			raw := res.Raw(p)
			norm := spec.Bounds.Normalize(raw)
			weighted := 100 * spec.Weight * norm
			rawTotal += weighted

			mid := spec.Bounds.Mid()
			views = append(views, layerView{
				weighted: weighted,
				topHalf:  raw > mid,
				lowHalf:  raw < mid,
				reasons:  res.Reasons(p),
			})
			contribs = append(contribs, score.LayerContribution{
				Layer:      res.Layer,
				Raw:        raw,
				Normalized: norm,
				Weighted:   weighted,
			})
		}

		s := in.Params.PlanetClamp.Clamp(calibrate(rawTotal, in.Params.Anchors))
		grade := score.GradeFromScore(s)
		strengths := pickReasons(views, true, positiveKeywords, maxPlanetReasons)
		weaknesses := pickReasons(views, false, negativeKeywords, maxPlanetReasons)

		cr, hasCR := in.cancellation(p)
		out[string(p)] = score.PlanetScorecard{
			Planet:              string(p),
			Score:               s,
			Grade:               grade,
			RawTotal:            rawTotal,
			Contributions:       contribs,
			Strengths:           strengths,
			Weaknesses:          weaknesses,
			Summary:             summaryLine(p, s, grade, len(strengths), len(weaknesses)),
			CancellationApplied: hasCR && cr.Count > 0,
			RajaYoga:            hasCR && cr.RajaYoga,
		}
	}
	return out
}

// calibrate maps a weighted raw total onto the reporting scale through the
// three-anchor piecewise line. The end segments extrapolate, so the clamp
// is what finally bounds the score.
func calibrate(raw float64, a [3]CalibrationAnchor) float64 {
	if raw <= a[1].Raw {
		return lerpAnchor(a[0], a[1], raw)
	}
	return lerpAnchor(a[1], a[2], raw)
}

func lerpAnchor(lo, hi CalibrationAnchor, raw float64) float64 {
	slope := (hi.Score - lo.Score) / (hi.Raw - lo.Raw)
	return lo.Score + (raw-lo.Raw)*slope
}

// pickReasons collects scorecard reasons from the layers sitting in the
// right half of their range, strongest contribution first for strengths,
// weakest first for weaknesses.
func pickReasons(views []layerView, wantTop bool, keywords []string, limit int) []string {
	idx := make([]int, len(views))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if wantTop {
			return views[idx[a]].weighted > views[idx[b]].weighted
		}
		return views[idx[a]].weighted < views[idx[b]].weighted
	})

	var out []string
	for _, i := range idx {
		v := views[i]
		if wantTop && !v.topHalf || !wantTop && !v.lowHalf {
			continue
		}
		for _, reason := range v.reasons {
			if !matchesAny(reason, keywords) {
				continue
			}
			out = append(out, reason)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

// matchesAny reports whether the reason contains one of the keywords,
// case-insensitively.
func matchesAny(reason string, keywords []string) bool {
	r := strings.ToLower(reason)
	for _, k := range keywords {
		if strings.Contains(r, k) {
			return true
		}
	}
	return false
}

// summaryLine formats the fixed one-line digest of a planet scorecard.
func summaryLine(p chart.Planet, s float64, g score.Grade, strengths, weaknesses int) string {
	return fmt.Sprintf("%s: %.1f (%s) - %s, %s", p, s, g,
		countNoun(strengths, "strength", "strengths"),
		countNoun(weaknesses, "weakness", "weaknesses"))
}

// countNoun formats a count with the right noun form.
func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
