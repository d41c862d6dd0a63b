package bala

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"grahabala/internal/astro"
	"grahabala/internal/config"
	"grahabala/internal/yoga"
	"grahabala/pkg/contracts/chart"
	"grahabala/pkg/contracts/score"
)

// Calculator is the scoring engine. It holds only immutable state after
// construction and is safe for concurrent use.
type Calculator struct {
	params   ScoringParams
	logger   *slog.Logger
	ref      *astro.Reference
	catalog  *yoga.Catalog
	validate *validator.Validate
	metrics  *ScoringMetrics
	tracer   trace.Tracer
}

// NewCalculator builds an engine. A nil config selects the fitted default
// parameters; a nil logger selects the process default. Metric registration
// failures disable instrumentation but never the engine.
func NewCalculator(cfg *config.Config, logger *slog.Logger) (*Calculator, error) {
	params := DefaultScoringParams()
	if cfg != nil {
		params = ParamsFromConfig(cfg.Scoring)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("scoring parameters: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := NewScoringMetrics()
	if err != nil {
		logger.Warn("scoring metrics disabled", "error", err)
		metrics = nil
	}

	return &Calculator{
		params:   params,
		logger:   logger,
		ref:      astro.Std(),
		catalog:  yoga.Default(),
		validate: validator.New(),
		metrics:  metrics,
		tracer:   otel.Tracer("grahabala/bala"),
	}, nil
}

// Params returns a copy of the engine's scoring parameters.
func (c *Calculator) Params() ScoringParams {
	return c.params
}

// checkInput rejects charts missing the rashi essentials; anything else
// degrades to neutral layers downstream.
func (c *Calculator) checkInput(facts *chart.Facts) error {
	if facts == nil {
		return &ValidationError{Field: "facts", Message: "chart facts are required"}
	}
	if err := facts.Validate(); err != nil {
		return fmt.Errorf("validate chart: %w", err)
	}
	return nil
}

// Score evaluates one chart: cancellation analysis, ten house layers, ten
// planet layers, both combiners, and the chart-wide insights. Identical
// facts produce identical reports except for ID and GeneratedAt.
func (c *Calculator) Score(ctx context.Context, facts *chart.Facts) (*score.Report, error) {
	if err := c.checkInput(facts); err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "bala.Score")
	defer span.End()

	start := time.Now()
	report := c.evaluate(ctx, facts, c.params)
	elapsed := time.Since(start)

	c.metrics.RecordScore(ctx, report, elapsed)
	c.logger.InfoContext(ctx, "chart scored",
		"report_id", report.ID,
		"planets", len(report.Planets),
		"strongest_planet", report.Insights.StrongestPlanet,
		"weakest_planet", report.Insights.WeakestPlanet,
		"flags", len(report.Insights.Flags),
		"duration_ms", elapsed.Milliseconds())

	return report, nil
}

// ScoreBatch evaluates charts concurrently under the configured limit.
// Results keep the input order; the first failure cancels the rest and is
// reported with its chart index.
func (c *Calculator) ScoreBatch(ctx context.Context, charts []*chart.Facts) ([]*score.Report, error) {
	ctx, span := c.tracer.Start(ctx, "bala.ScoreBatch",
		trace.WithAttributes(attribute.Int("charts", len(charts))))
	defer span.End()

	c.metrics.RecordBatch(ctx, len(charts))

	reports := make([]*score.Report, len(charts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.params.BatchConcurrency)

	for i, facts := range charts {
		i, facts := i, facts
		g.Go(func() error {
			report, err := c.Score(gctx, facts)
			if err != nil {
				return fmt.Errorf("chart %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "batch scored", "charts", len(charts))
	return reports, nil
}

// evaluate runs the scoring pipeline. Layers run sequentially so reports
// stay deterministic.
func (c *Calculator) evaluate(ctx context.Context, facts *chart.Facts, params ScoringParams) *score.Report {
	in := c.newInput(ctx, facts, params)
	in.Cancellations = analyzeCancellations(in)
	for _, cr := range in.Cancellations {
		c.metrics.RecordCancellation(ctx, cr)
	}

	houses, houseDetails := combineHouses(in, evalHouseLayers(in))
	planets := combinePlanets(in, evalPlanetLayers(in))

	return &score.Report{
		ID:           uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Houses:       houses,
		HouseDetails: houseDetails,
		Planets:      planets,
		Insights:     buildInsights(houses, planets),
	}
}

// evalHouseLayers runs the house registry in order, clamping every result
// to its declared bounds.
func evalHouseLayers(in *Input) []*HouseLayerResult {
	layers := houseLayers()
	results := make([]*HouseLayerResult, 0, len(layers))
	for _, l := range layers {
		res := l.eval(in)
		res.ClampTo(l.spec(in.Params.Houses).Bounds)
		results = append(results, res)
	}
	return results
}

// evalPlanetLayers mirrors evalHouseLayers for the planet registry.
func evalPlanetLayers(in *Input) []*PlanetLayerResult {
	layers := planetLayers()
	results := make([]*PlanetLayerResult, 0, len(layers))
	for _, l := range layers {
		res := l.eval(in)
		res.ClampTo(l.spec(in.Params.Planets).Bounds)
		results = append(results, res)
	}
	return results
}
