package grahabala

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"grahabala/internal/bala"
	"grahabala/internal/config"
	"grahabala/internal/infrastructure"
	"grahabala/pkg/contracts"
)

// How often an open Runtime samples the Go runtime onto the meter.
const runtimeSampleInterval = 15 * time.Second

// Runtime owns the process-wide wiring a host would otherwise assemble by
// hand: resolved configuration, the JSON logger, the OpenTelemetry
// providers, the runtime metrics sampler, and a ready Calculator.
type Runtime struct {
	Config     *Config
	Logger     *slog.Logger
	Calculator *Calculator

	// MetricsHandler serves the Prometheus scrape endpoint. Nil when
	// metrics are disabled; the host mounts it wherever it serves HTTP.
	MetricsHandler http.Handler

	providers *infrastructure.OTelProviders
	sampling  context.CancelFunc
}

// Open resolves configuration and brings up the full stack. Equivalent to
// LoadConfig followed by OpenWith.
func Open(ctx context.Context) (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return OpenWith(ctx, cfg)
}

// OpenWith is Open with the configuration supplied by the caller. A nil
// config selects the fitted defaults. Observability is installed before
// the engine so its tracer and meter bind to the configured providers.
func OpenWith(ctx context.Context, cfg *Config) (*Runtime, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	providers, err := infrastructure.InitializeOTel(infrastructure.NewOTelConfig(cfg.Observability), logger)
	if err != nil {
		return nil, fmt.Errorf("initialize observability: %w", err)
	}

	cal, err := bala.NewCalculator(cfg, logger)
	if err != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if serr := providers.Shutdown(shutdownCtx); serr != nil {
			logger.WarnContext(ctx, "observability shutdown failed", "error", serr)
		}
		return nil, fmt.Errorf("build calculator: %w", err)
	}

	rt := &Runtime{
		Config:         cfg,
		Logger:         logger,
		Calculator:     cal,
		MetricsHandler: providers.PrometheusHTTP,
		providers:      providers,
	}

	if providers.Meter != nil {
		collector, err := infrastructure.NewRuntimeCollector(providers.Meter, runtimeSampleInterval)
		if err != nil {
			logger.WarnContext(ctx, "runtime metrics disabled", "error", err)
		} else {
			sctx, cancel := context.WithCancel(context.Background())
			rt.sampling = cancel
			go collector.Start(sctx)
		}
	}

	logger.InfoContext(ctx, "scoring engine ready",
		slog.String("version", contracts.Version),
		slog.Bool("tracing", cfg.Observability.EnableTracing),
		slog.Bool("metrics", cfg.Observability.EnableMetrics))

	return rt, nil
}

// Close stops the runtime sampler, flushes the OpenTelemetry providers,
// and closes the log file if one is open.
func (r *Runtime) Close(ctx context.Context) error {
	if r.sampling != nil {
		r.sampling()
	}

	var errs []error
	if r.providers != nil {
		if err := r.providers.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := infrastructure.CloseLogFile(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("close runtime: %v", errs)
	}
	return nil
}
