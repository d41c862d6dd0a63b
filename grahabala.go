// Package grahabala is the public entry point to the deep scoring engine.
// The implementation lives under internal/, which other modules cannot
// import; everything a consumer needs is re-exported here. Input and
// output contracts stay in pkg/contracts/chart and pkg/contracts/score.
//
// Library use:
//
//	cal, err := grahabala.NewCalculator(nil, nil)
//	report, err := cal.Score(ctx, facts)
//
// Hosts that want the full ambient stack (resolved configuration, JSON
// logging, OpenTelemetry tracing and Prometheus metrics) open a Runtime
// instead and read the Calculator off it.
package grahabala

import (
	"context"
	"log/slog"

	"grahabala/internal/bala"
	"grahabala/internal/config"
)

// Engine types, aliased so consumers can name them without reaching into
// internal packages.
type (
	Calculator         = bala.Calculator
	ScoringParams      = bala.ScoringParams
	CancellationResult = bala.CancellationResult
	CalibrationSample  = bala.CalibrationSample
	CalibrationConfig  = bala.CalibrationConfig
	CalibrationResult  = bala.CalibrationResult
	ValidationError    = bala.ValidationError
	Config             = config.Config
)

// NewCalculator builds a scoring engine. A nil config selects the fitted
// default parameters; a nil logger selects the process default. The
// returned Calculator is immutable and safe for concurrent use.
func NewCalculator(cfg *Config, logger *slog.Logger) (*Calculator, error) {
	return bala.NewCalculator(cfg, logger)
}

// LoadConfig resolves configuration from the defaults, the optional YAML
// overlay file, and GRAHA_* environment variables, in rising precedence.
func LoadConfig() (*Config, error) {
	return config.Load()
}

// DefaultConfig returns the canonical fitted configuration.
func DefaultConfig() *Config {
	return config.Default()
}

// Calibrate grid-searches the house scale factor and the planet anchor
// curve against reference charts with expected scores.
func Calibrate(ctx context.Context, samples []CalibrationSample, cfg CalibrationConfig) (*CalibrationResult, error) {
	return bala.Calibrate(ctx, samples, cfg)
}

// DefaultCalibrationConfig returns a search grid small enough to run
// inside a test suite.
func DefaultCalibrationConfig() CalibrationConfig {
	return bala.DefaultCalibrationConfig()
}
