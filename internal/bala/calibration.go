package bala

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"grahabala/pkg/contracts/chart"
	"grahabala/pkg/contracts/score"
)

// CalibrationSample pairs a reference chart with the scores the fitted
// model is expected to reproduce. Either expectation map may be sparse.
type CalibrationSample struct {
	Facts           *chart.Facts
	ExpectedPlanets map[chart.Planet]float64
	ExpectedHouses  map[int]float64
}

// CalibrationConfig bounds the grid search.
type CalibrationConfig struct {
	// ScaleMin..ScaleMax is the searched range of the house scale factor.
	ScaleMin   float64
	ScaleMax   float64
	ScaleSteps int

	// AnchorSpread is the +- shift searched around the mid calibration
	// anchor's score, in AnchorSteps points.
	AnchorSpread float64
	AnchorSteps  int

	MinSamples     int
	MaxConcurrency int
}

// DefaultCalibrationConfig returns a grid small enough to run inside a
// test suite.
func DefaultCalibrationConfig() CalibrationConfig {
	return CalibrationConfig{
		ScaleMin:       1.8,
		ScaleMax:       3.4,
		ScaleSteps:     9,
		AnchorSpread:   10,
		AnchorSteps:    5,
		MinSamples:     3,
		MaxConcurrency: 4,
	}
}

// CalibrationResult is the fitted parameter set with its residual error.
type CalibrationResult struct {
	Params       ScoringParams `json:"params"`
	MeanAbsError float64       `json:"mean_abs_error"`
	SamplesUsed  int           `json:"samples_used"`
	Evaluated    int           `json:"evaluated"`
	FittedAt     time.Time     `json:"fitted_at"`
}

// Calibrate grid-searches the house scale factor and the planet anchor
// curve against reference charts with expected scores, minimizing mean
// absolute error. The search is deterministic: ties resolve to the earlier
// grid point.
func Calibrate(ctx context.Context, samples []CalibrationSample, cfg CalibrationConfig) (*CalibrationResult, error) {
	start := time.Now()
	logger := slog.Default()

	if err := validateCalibrationConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cal, err := NewCalculator(nil, logger)
	if err != nil {
		return nil, fmt.Errorf("build reference calculator: %w", err)
	}

	usable := usableSamples(cal, samples)
	if len(usable) < cfg.MinSamples {
		return nil, &ValidationError{
			Field:   "samples",
			Message: fmt.Sprintf("need at least %d usable samples, got %d", cfg.MinSamples, len(usable)),
			Value:   len(usable),
		}
	}

	candidates := candidateGrid(cal.Params(), cfg)
	logger.InfoContext(ctx, "starting parameter calibration",
		"samples", len(usable),
		"candidates", len(candidates))

	maes := make([]float64, len(candidates))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, cfg.MaxConcurrency)

	for i, params := range candidates {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("calibration cancelled: %w", ctx.Err())
		default:
		}

		i, params := i, params
		wg.Add(1)
		go func() {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			maes[i] = candidateError(ctx, cal, usable, params)
		}()
	}
	wg.Wait()

	best := 0
	for i := 1; i < len(maes); i++ {
		if maes[i] < maes[best] {
			best = i
		}
	}

	result := &CalibrationResult{
		Params:       candidates[best],
		MeanAbsError: maes[best],
		SamplesUsed:  len(usable),
		Evaluated:    len(candidates),
		FittedAt:     time.Now().UTC(),
	}

	logger.InfoContext(ctx, "parameter calibration completed",
		"duration", time.Since(start),
		"mean_abs_error", result.MeanAbsError,
		"house_scale", result.Params.HouseScale,
		"mid_anchor_score", result.Params.Anchors[1].Score)

	return result, nil
}

// usableSamples filters to samples the engine accepts that carry at least
// one expectation.
func usableSamples(cal *Calculator, samples []CalibrationSample) []CalibrationSample {
	usable := make([]CalibrationSample, 0, len(samples))
	for _, s := range samples {
		if cal.checkInput(s.Facts) != nil {
			continue
		}
		if len(s.ExpectedPlanets) == 0 && len(s.ExpectedHouses) == 0 {
			continue
		}
		usable = append(usable, s)
	}
	return usable
}

// candidateGrid builds every parameter combination worth trying, dropping
// the ones that fail structural validation.
func candidateGrid(base ScoringParams, cfg CalibrationConfig) []ScoringParams {
	scales := linspace(cfg.ScaleMin, cfg.ScaleMax, cfg.ScaleSteps)
	shifts := linspace(-cfg.AnchorSpread, cfg.AnchorSpread, cfg.AnchorSteps)

	candidates := make([]ScoringParams, 0, len(scales)*len(shifts))
	for _, scale := range scales {
		for _, shift := range shifts {
			p := base
			p.HouseScale = scale
			p.Anchors[1].Score = base.Anchors[1].Score + shift
			if p.Validate() != nil {
				continue
			}
			candidates = append(candidates, p)
		}
	}
	return candidates
}

// candidateError scores every sample under the candidate parameters and
// returns the mean absolute error against the expectations.
func candidateError(ctx context.Context, cal *Calculator, samples []CalibrationSample, params ScoringParams) float64 {
	var sum float64
	var n int

	for _, s := range samples {
		report := cal.evaluate(ctx, s.Facts, params)
		for p, want := range s.ExpectedPlanets {
			if sc, ok := report.Planets[string(p)]; ok {
				sum += math.Abs(sc.Score - want)
				n++
			}
		}
		for h, want := range s.ExpectedHouses {
			sum += math.Abs(report.Houses[score.HouseKey(h)] - want)
			n++
		}
	}
	if n == 0 {
		return math.Inf(1)
	}
	return sum / float64(n)
}

// validateCalibrationConfig checks the grid bounds.
func validateCalibrationConfig(cfg CalibrationConfig) error {
	if cfg.ScaleMin <= 0 || cfg.ScaleMax <= cfg.ScaleMin {
		return &ValidationError{
			Field:   "scale_range",
			Message: fmt.Sprintf("scale range must be positive and ordered, got [%v, %v]", cfg.ScaleMin, cfg.ScaleMax),
		}
	}
	if cfg.ScaleSteps < 2 {
		return &ValidationError{
			Field:   "scale_steps",
			Message: "scale steps must be at least 2",
			Value:   cfg.ScaleSteps,
		}
	}
	if cfg.AnchorSpread < 0 {
		return &ValidationError{
			Field:   "anchor_spread",
			Message: fmt.Sprintf("anchor spread must be non-negative, got %v", cfg.AnchorSpread),
			Value:   cfg.AnchorSpread,
		}
	}
	if cfg.AnchorSteps < 1 {
		return &ValidationError{
			Field:   "anchor_steps",
			Message: "anchor steps must be at least 1",
			Value:   cfg.AnchorSteps,
		}
	}
	if cfg.MinSamples < 1 {
		return &ValidationError{
			Field:   "min_samples",
			Message: "minimum samples must be at least 1",
			Value:   cfg.MinSamples,
		}
	}
	if cfg.MaxConcurrency < 1 {
		return &ValidationError{
			Field:   "max_concurrency",
			Message: "max concurrency must be at least 1",
			Value:   cfg.MaxConcurrency,
		}
	}
	return nil
}

// linspace creates num linearly spaced values between start and stop.
func linspace(start, stop float64, num int) []float64 {
	if num <= 0 {
		return nil
	}
	if num == 1 {
		return []float64{start}
	}
	result := make([]float64, num)
	step := (stop - start) / float64(num-1)
	for i := range result {
		result[i] = start + float64(i)*step
	}
	return result
}
