// Package score defines the output contract produced by the scoring engine
// and consumed by the surrounding orchestration pipeline: per-house and
// per-planet scorecards with layer-level breakdowns, plus chart-wide
// insights. Scores are numeric and reasons are short machine-checkable
// strings; prose generation happens downstream.
package score

import (
	"fmt"
	"time"
)

// LayerContribution records one layer's share of a combined score.
// Normalized is populated for planet layers only (house layers are weighted
// on their raw scale).
type LayerContribution struct {
	Layer      string  `json:"layer"`
	Raw        float64 `json:"raw"`
	Normalized float64 `json:"normalized,omitempty"`
	Weighted   float64 `json:"weighted"`
}

// HouseScorecard is the detail structure for one house.
type HouseScorecard struct {
	House         int                 `json:"house"`
	Score         float64             `json:"score"`
	RawTotal      float64             `json:"raw_total"`
	Contributions []LayerContribution `json:"contributions"`
	TopReasons    []string            `json:"top_reasons,omitempty"`
}

// PlanetScorecard is the detail structure for one planet.
type PlanetScorecard struct {
	Planet              string              `json:"planet"`
	Score               float64             `json:"score"`
	Grade               Grade               `json:"grade"`
	RawTotal            float64             `json:"raw_total"`
	Contributions       []LayerContribution `json:"contributions"`
	Strengths           []string            `json:"strengths,omitempty"`
	Weaknesses          []string            `json:"weaknesses,omitempty"`
	Summary             string              `json:"summary"`
	CancellationApplied bool                `json:"cancellation_applied,omitempty"`
	RajaYoga            bool                `json:"raja_yoga,omitempty"`
}

// ChartInsights summarizes one evaluation for quick downstream triage.
type ChartInsights struct {
	StrongestHouses []int         `json:"strongest_houses"`
	WeakestHouses   []int         `json:"weakest_houses"`
	StrongestPlanet string        `json:"strongest_planet"`
	WeakestPlanet   string        `json:"weakest_planet"`
	GradeCounts     map[Grade]int `json:"grade_counts"`
	Flags           []string      `json:"flags,omitempty"`
}

// Report is the complete result of scoring one chart. Houses is keyed
// "house_1".."house_12"; Planets is keyed by planet name. Both maps are
// always fully populated, even for minimal input.
type Report struct {
	ID           string                     `json:"id"`
	GeneratedAt  time.Time                  `json:"generated_at"`
	Houses       map[string]float64         `json:"houses"`
	HouseDetails map[string]HouseScorecard  `json:"house_details"`
	Planets      map[string]PlanetScorecard `json:"planets"`
	Insights     ChartInsights              `json:"insights"`
}

// HouseKey formats the canonical key for a house number.
func HouseKey(n int) string {
	return fmt.Sprintf("house_%d", n)
}
