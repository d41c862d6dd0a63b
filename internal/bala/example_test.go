package bala

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"grahabala/internal/shared/testutil"
	"grahabala/pkg/contracts/chart"
	"grahabala/pkg/contracts/score"
)

// Example_basicUsage demonstrates scoring a single birth chart with the
// default parameters.
func Example_basicUsage() {
	ctx := context.Background()

	// Assemble chart facts the way an ephemeris adapter would
	facts := generateSampleChart()

	// Create calculator with default scoring parameters
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	calculator, err := NewCalculator(nil, logger)
	if err != nil {
		fmt.Printf("Error building calculator: %v\n", err)
		return
	}

	report, err := calculator.Score(ctx, facts)
	if err != nil {
		fmt.Printf("Error scoring chart: %v\n", err)
		return
	}

	fmt.Printf("Planet Strength Results:\n")
	fmt.Printf("========================\n")
	for _, planet := range chart.AllPlanets() {
		card := report.Planets[string(planet)]
		fmt.Printf("%-8s score %5.1f grade %s\n", card.Planet, card.Score, card.Grade)
	}

	fmt.Printf("\nHouse Strength Results:\n")
	fmt.Printf("=======================\n")
	for house := 1; house <= 12; house++ {
		fmt.Printf("House %-2d score %5.1f\n", house, report.Houses[score.HouseKey(house)])
	}

	fmt.Printf("\nStrongest planet: %s\n", report.Insights.StrongestPlanet)
	fmt.Printf("Strongest houses: %v\n", report.Insights.StrongestHouses)
}

// Example_batchScoring demonstrates scoring several charts through the
// bounded concurrent batch path.
func Example_batchScoring() {
	ctx := context.Background()

	charts := []*chart.Facts{
		generateSampleChart(),
		generateDebilitatedChart(),
		testutil.RandomChart(42),
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	calculator, err := NewCalculator(nil, logger)
	if err != nil {
		fmt.Printf("Error building calculator: %v\n", err)
		return
	}

	reports, err := calculator.ScoreBatch(ctx, charts)
	if err != nil {
		fmt.Printf("Error scoring batch: %v\n", err)
		return
	}

	fmt.Printf("Batch Scoring Results:\n")
	fmt.Printf("======================\n")
	for i, report := range reports {
		fmt.Printf("Chart %d: strongest planet %s, weakest planet %s\n",
			i+1,
			report.Insights.StrongestPlanet,
			report.Insights.WeakestPlanet,
		)
	}

	fmt.Printf("\nTotal charts scored: %d\n", len(reports))
}

// Example_cancellationAnalysis demonstrates inspecting neecha bhanga
// verdicts for the debilitated planets of a chart without running the
// full scoring pipeline.
func Example_cancellationAnalysis() {
	ctx := context.Background()

	facts := generateDebilitatedChart()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	calculator, err := NewCalculator(nil, logger)
	if err != nil {
		fmt.Printf("Error building calculator: %v\n", err)
		return
	}

	verdicts, err := calculator.AnalyzeCancellations(ctx, facts)
	if err != nil {
		fmt.Printf("Error analyzing cancellations: %v\n", err)
		return
	}

	fmt.Printf("Debilitation Cancellation Analysis:\n")
	fmt.Printf("===================================\n")
	for _, planet := range chart.AllPlanets() {
		verdict, ok := verdicts[planet]
		if !ok {
			continue
		}

		fmt.Printf("%s debilitated in %s (house %d)\n",
			verdict.Planet, verdict.DebilitationSign, verdict.House)
		for _, rule := range verdict.RulesSatisfied {
			fmt.Printf("  - %s\n", rule)
		}
		fmt.Printf("  rules satisfied: %d | raja yoga: %v | dignity modifier: %+.1f\n",
			verdict.Count, verdict.RajaYoga, verdict.Modifier)
	}
}

// generateSampleChart builds a strongly placed reference chart. A real
// caller would derive these placements from ephemeris output.
func generateSampleChart() *chart.Facts {
	return testutil.NewChart(
		testutil.WithAscendant(chart.SignAries, 15),
		testutil.WithPlanet(chart.PlanetSun, chart.SignLeo, 10, false),
		testutil.WithPlanet(chart.PlanetMoon, chart.SignTaurus, 20, false),
		testutil.WithPlanet(chart.PlanetMars, chart.SignCapricorn, 5, false),
		testutil.WithPlanet(chart.PlanetMercury, chart.SignVirgo, 10, false),
		testutil.WithPlanet(chart.PlanetJupiter, chart.SignSagittarius, 15, false),
		testutil.WithPlanet(chart.PlanetVenus, chart.SignLibra, 8, false),
		testutil.WithPlanet(chart.PlanetSaturn, chart.SignAquarius, 25, false),
	)
}

// generateDebilitatedChart places the Moon, Mercury and Jupiter in their
// debilitation signs. The Moon and Jupiter have cancellation conditions
// present; Mercury does not.
func generateDebilitatedChart() *chart.Facts {
	return testutil.NewChart(
		testutil.WithAscendant(chart.SignLeo, 10),
		testutil.WithPlanet(chart.PlanetSun, chart.SignPisces, 10, false),
		testutil.WithPlanet(chart.PlanetMoon, chart.SignScorpio, 20, false),
		testutil.WithPlanet(chart.PlanetMars, chart.SignAries, 5, false),
		testutil.WithPlanet(chart.PlanetMercury, chart.SignPisces, 15, false),
		testutil.WithPlanet(chart.PlanetJupiter, chart.SignCapricorn, 10, false),
		testutil.WithPlanet(chart.PlanetVenus, chart.SignLibra, 10, false),
		testutil.WithPlanet(chart.PlanetSaturn, chart.SignAquarius, 20, false),
		testutil.WithPlanet(chart.PlanetRahu, chart.SignPisces, 5, true),
		testutil.WithPlanet(chart.PlanetKetu, chart.SignVirgo, 5, true),
	)
}
