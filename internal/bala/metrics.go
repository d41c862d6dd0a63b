package bala

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"grahabala/pkg/contracts/score"
)

// ScoringMetrics carries the engine's instruments. A nil receiver is a
// no-op so the engine keeps scoring when instrument registration failed.
type ScoringMetrics struct {
	chartsScored  metric.Int64Counter
	scoreDuration metric.Float64Histogram
	planetScores  metric.Float64Histogram
	houseScores   metric.Float64Histogram
	cancellations metric.Int64Counter
	batchCharts   metric.Int64Histogram
}

// NewScoringMetrics registers the scoring instruments on the global meter.
func NewScoringMetrics() (*ScoringMetrics, error) {
	meter := otel.Meter("grahabala/bala")

	chartsScored, err := meter.Int64Counter(
		"bala_charts_scored_total",
		metric.WithDescription("Charts scored since process start"),
	)
	if err != nil {
		return nil, err
	}

	scoreDuration, err := meter.Float64Histogram(
		"bala_score_duration_seconds",
		metric.WithDescription("Wall time of one chart evaluation"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	planetScores, err := meter.Float64Histogram(
		"bala_planet_score",
		metric.WithDescription("Calibrated planet scores"),
	)
	if err != nil {
		return nil, err
	}

	houseScores, err := meter.Float64Histogram(
		"bala_house_score",
		metric.WithDescription("Combined house scores"),
	)
	if err != nil {
		return nil, err
	}

	cancellations, err := meter.Int64Counter(
		"bala_cancellations_total",
		metric.WithDescription("Debilitation cancellations observed, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	batchCharts, err := meter.Int64Histogram(
		"bala_batch_size_charts",
		metric.WithDescription("Charts per batch request"),
	)
	if err != nil {
		return nil, err
	}

	return &ScoringMetrics{
		chartsScored:  chartsScored,
		scoreDuration: scoreDuration,
		planetScores:  planetScores,
		houseScores:   houseScores,
		cancellations: cancellations,
		batchCharts:   batchCharts,
	}, nil
}

// RecordScore registers one finished evaluation.
func (m *ScoringMetrics) RecordScore(ctx context.Context, report *score.Report, elapsed time.Duration) {
	if m == nil || report == nil {
		return
	}
	m.chartsScored.Add(ctx, 1)
	m.scoreDuration.Record(ctx, elapsed.Seconds())
	for _, s := range report.Houses {
		m.houseScores.Record(ctx, s)
	}
	for _, sc := range report.Planets {
		m.planetScores.Record(ctx, sc.Score,
			metric.WithAttributes(attribute.String("planet", sc.Planet)))
	}
}

// RecordCancellation registers one analyzer verdict.
func (m *ScoringMetrics) RecordCancellation(ctx context.Context, cr CancellationResult) {
	if m == nil {
		return
	}
	outcome := "cancelled"
	if cr.RajaYoga {
		outcome = "raja_yoga"
	} else if cr.Count == 0 {
		outcome = "uncancelled"
	}
	m.cancellations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordBatch registers the size of one batch request.
func (m *ScoringMetrics) RecordBatch(ctx context.Context, charts int) {
	if m == nil {
		return
	}
	m.batchCharts.Record(ctx, int64(charts))
}
