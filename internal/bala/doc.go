// Package bala implements the deep scoring engine: normalized 0-100
// strength scores for the twelve houses and nine grahas of a natal chart,
// computed from pre-extracted chart facts.
//
// The package never performs ephemeris work. It consumes a read-only
// chart.Facts value produced upstream (placements, divisional charts,
// detected combinations, karaka assignments) and renders a judgement of
// strength per house and per planet, with per-layer breakdowns and
// human-readable reasons.
//
// # Core Components
//
//   - Calculator: the engine. Built once from configuration, safe for
//     concurrent use, scores one chart (Score) or many (ScoreBatch).
//   - Cancellation analyzer: evaluates the twelve-rule
//     debilitation-cancellation checklist per debilitated planet before any
//     layer runs, since three layers consume its verdicts.
//   - House layers: ten pure evaluators (five primary, five secondary)
//     covering the rashi chart, the navamsha, the other divisional charts,
//     detected combinations, karakas, bhava bala, sudarshana, upagrahas,
//     sahamas, and tara bala.
//   - Planet layers: ten pure evaluators covering dignity, house placement,
//     aspects, shadbala, navamsha, divisional charts, combination
//     participation, special conditions, ashtakavarga, and karaka roles.
//   - Combiners: fold weighted layer raws into final scores. House scores
//     map linearly onto 0-100; planet scores pass through a piecewise
//     calibration curve fitted against reference charts.
//
// # Architecture
//
// Evaluation is a strict pipeline. Score builds an immutable Input (derived
// indexes over the facts), runs the cancellation analyzer, evaluates every
// layer in registry order, clamps each layer to its declared bounds, and
// combines. Layers never see each other's output and never mutate the
// Input, so their order is irrelevant to the result and the whole pipeline
// is deterministic: identical facts yield identical reports apart from the
// generated ID and timestamp.
//
//   - engine.go: Calculator, Score, ScoreBatch
//   - input.go: Input construction and derived indexes
//   - neecha.go: debilitation-cancellation analyzer
//   - layers.go: layer registries (evaluation order, weights, bounds)
//   - house_*.go, planet_*.go: the twenty layer evaluators
//   - *_combiner.go: score folding, calibration, grades, reasons
//   - weights.go: tunable parameters and their validation
//   - calibration.go: grid-search fitting of the tunables
//   - insights.go: chart-level highlights
//   - metrics.go: OpenTelemetry instruments
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cal, err := bala.NewCalculator(cfg, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := cal.Score(ctx, facts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Planets["Mars"].Summary)
//
// # Scoring Model
//
// Every layer emits a raw score inside declared bounds. House layers are
// weighted and summed, then mapped by score = base + raw*scale. Planet
// layers are first normalized onto [0,1] against their bounds, weighted,
// summed onto a nominal 0-100 scale, and calibrated through a three-anchor
// piecewise-linear curve before a soft clamp keeps headroom at both ends.
// The anchor values were fitted against hand-scored reference charts; they
// are configuration, not constants of nature.
//
// Missing optional inputs degrade, never fail: a chart with no navamsha
// simply scores the navamsha layers as neutral. The only fatal input error
// is a missing or empty rashi chart.
package bala
