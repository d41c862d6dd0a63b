package bala

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"grahabala/internal/shared/testutil"
	"grahabala/pkg/contracts/chart"
)

// Benchmark tests for the scoring hot paths. Reports are computed per
// request, so single-chart latency is the number that matters.

func benchCalculator(b *testing.B) *Calculator {
	b.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	cal, err := NewCalculator(nil, logger)
	if err != nil {
		b.Fatalf("calculator error: %v", err)
	}
	return cal
}

// BenchmarkScore benchmarks the complete single-chart scoring pipeline.
func BenchmarkScore(b *testing.B) {
	benchmarks := []struct {
		name  string
		facts *chart.Facts
	}{
		{"full_chart", testutil.BaselineChart()},
		{"minimal_chart", testutil.MinimalChart()},
		{"random_chart", testutil.RandomChart(11)},
	}

	ctx := context.Background()

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			cal := benchCalculator(b)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := cal.Score(ctx, bm.facts); err != nil {
					b.Fatalf("score error: %v", err)
				}
			}
		})
	}
}

// BenchmarkScoreBatch benchmarks the bounded concurrent batch path at
// typical consultation batch sizes.
func BenchmarkScoreBatch(b *testing.B) {
	benchmarks := []struct {
		name string
		size int
	}{
		{"batch_4", 4},
		{"batch_16", 16},
		{"batch_64", 64},
	}

	ctx := context.Background()

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			cal := benchCalculator(b)

			charts := make([]*chart.Facts, bm.size)
			for i := range charts {
				charts[i] = testutil.RandomChart(int64(i + 1))
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := cal.ScoreBatch(ctx, charts); err != nil {
					b.Fatalf("batch error: %v", err)
				}
			}
		})
	}
}

// BenchmarkAnalyzeCancellations benchmarks the standalone neecha bhanga
// analysis on a chart with three debilitated planets.
func BenchmarkAnalyzeCancellations(b *testing.B) {
	ctx := context.Background()
	cal := benchCalculator(b)
	facts := generateDebilitatedChart()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := cal.AnalyzeCancellations(ctx, facts); err != nil {
			b.Fatalf("analysis error: %v", err)
		}
	}
}

// BenchmarkHouseLayers benchmarks every house layer evaluator in isolation.
func BenchmarkHouseLayers(b *testing.B) {
	cal := benchCalculator(b)
	in := cal.newInput(context.Background(), testutil.BaselineChart(), cal.params)
	in.Cancellations = analyzeCancellations(in)

	for _, layer := range houseLayers() {
		b.Run(layer.key, func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				layer.eval(in)
			}
		})
	}
}

// BenchmarkPlanetLayers benchmarks every planet layer evaluator in isolation.
func BenchmarkPlanetLayers(b *testing.B) {
	cal := benchCalculator(b)
	in := cal.newInput(context.Background(), testutil.BaselineChart(), cal.params)
	in.Cancellations = analyzeCancellations(in)

	for _, layer := range planetLayers() {
		b.Run(layer.key, func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				layer.eval(in)
			}
		})
	}
}
