package bala

import (
	"sort"

	"grahabala/pkg/contracts/chart"
	"grahabala/pkg/contracts/score"
)

// Flag prefixes surfaced on ChartInsights.
const (
	flagRajaYoga    = "neecha_bhanga_raja_yoga:"
	flagExceptional = "exceptional_strength:"
	flagCritical    = "critical_weakness:"
)

// buildInsights derives the chart-wide digest from the finished scorecards.
// Ties resolve toward the lower house number and the earlier canonical
// planet, keeping the digest deterministic.
func buildInsights(houses map[string]float64, planets map[string]score.PlanetScorecard) score.ChartInsights {
	type rankedHouse struct {
		house int
		score float64
	}
	ranked := make([]rankedHouse, 0, 12)
	for h := 1; h <= 12; h++ {
		ranked = append(ranked, rankedHouse{house: h, score: houses[score.HouseKey(h)]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].house < ranked[j].house
	})
	strongest := []int{ranked[0].house, ranked[1].house, ranked[2].house}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].house < ranked[j].house
	})
	weakest := []int{ranked[0].house, ranked[1].house, ranked[2].house}

	insights := score.ChartInsights{
		StrongestHouses: strongest,
		WeakestHouses:   weakest,
		GradeCounts:     make(map[score.Grade]int, 6),
	}

	var best, worst float64
	for _, p := range chart.AllPlanets() {
		sc, ok := planets[string(p)]
		if !ok {
			continue
		}
		insights.GradeCounts[sc.Grade]++
		if insights.StrongestPlanet == "" || sc.Score > best {
			insights.StrongestPlanet, best = sc.Planet, sc.Score
		}
		if insights.WeakestPlanet == "" || sc.Score < worst {
			insights.WeakestPlanet, worst = sc.Planet, sc.Score
		}
	}

	for _, p := range chart.AllPlanets() {
		if sc, ok := planets[string(p)]; ok && sc.RajaYoga {
			insights.Flags = append(insights.Flags, flagRajaYoga+string(p))
		}
	}
	for _, p := range chart.AllPlanets() {
		if sc, ok := planets[string(p)]; ok && sc.Grade == score.GradeS {
			insights.Flags = append(insights.Flags, flagExceptional+string(p))
		}
	}
	for _, p := range chart.AllPlanets() {
		if sc, ok := planets[string(p)]; ok && sc.Grade == score.GradeF {
			insights.Flags = append(insights.Flags, flagCritical+string(p))
		}
	}
	return insights
}
