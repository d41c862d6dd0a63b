package bala

import (
	"math"

	"grahabala/pkg/contracts/chart"
)

// Bounds declares the raw range a scoring layer may emit. Layer raws are
// clamped to the range before weighting; planet layers additionally
// normalize the clamped raw onto [0,1].
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IsValid reports whether the range is non-empty.
func (b Bounds) IsValid() bool {
	return b.Min < b.Max
}

// Clamp bounds v to [Min, Max].
func (b Bounds) Clamp(v float64) float64 {
	return clamp(v, b.Min, b.Max)
}

// Normalize maps v linearly onto [0,1], clamping out-of-range input.
func (b Bounds) Normalize(v float64) float64 {
	if !b.IsValid() {
		return 0
	}
	return clamp((v-b.Min)/(b.Max-b.Min), 0, 1)
}

// Mid returns the midpoint of the range.
func (b Bounds) Mid() float64 {
	return (b.Min + b.Max) / 2
}

// HouseLayerResult accumulates one layer's raw contribution per house.
// Houses are numbered 1..12; out-of-range house numbers are ignored so a
// malformed catalog entry cannot corrupt the accumulator.
type HouseLayerResult struct {
	Layer   string
	raws    [13]float64
	reasons [13][]string
}

func newHouseResult(layer string) *HouseLayerResult {
	return &HouseLayerResult{Layer: layer}
}

// Add accumulates points for a house. An empty reason records nothing; a
// zero-point call may still carry a reason.
func (r *HouseLayerResult) Add(house int, points float64, reason string) {
	if house < 1 || house > 12 {
		return
	}
	r.raws[house] += points
	if reason != "" {
		r.reasons[house] = append(r.reasons[house], reason)
	}
}

// Raw returns the accumulated raw score for a house.
func (r *HouseLayerResult) Raw(house int) float64 {
	if house < 1 || house > 12 {
		return 0
	}
	return r.raws[house]
}

// Reasons returns the reasons recorded for a house.
func (r *HouseLayerResult) Reasons(house int) []string {
	if house < 1 || house > 12 {
		return nil
	}
	return r.reasons[house]
}

// ClampTo sanitizes and bounds every house raw to the layer's declared
// range. Called once by the driver after the evaluator returns.
func (r *HouseLayerResult) ClampTo(b Bounds) {
	for h := 1; h <= 12; h++ {
		r.raws[h] = b.Clamp(sanitize(r.raws[h]))
	}
}

// PlanetLayerResult accumulates one layer's raw contribution per planet.
type PlanetLayerResult struct {
	Layer   string
	raws    map[chart.Planet]float64
	reasons map[chart.Planet][]string
}

func newPlanetResult(layer string) *PlanetLayerResult {
	return &PlanetLayerResult{
		Layer:   layer,
		raws:    make(map[chart.Planet]float64, 9),
		reasons: make(map[chart.Planet][]string, 9),
	}
}

// Add accumulates points for a planet. Unknown planet names are ignored.
func (r *PlanetLayerResult) Add(p chart.Planet, points float64, reason string) {
	if !p.IsValid() {
		return
	}
	r.raws[p] += points
	if reason != "" {
		r.reasons[p] = append(r.reasons[p], reason)
	}
}

// Raw returns the accumulated raw score for a planet.
func (r *PlanetLayerResult) Raw(p chart.Planet) float64 {
	return r.raws[p]
}

// Reasons returns the reasons recorded for a planet.
func (r *PlanetLayerResult) Reasons(p chart.Planet) []string {
	return r.reasons[p]
}

// ClampTo sanitizes and bounds every planet raw to the layer's declared
// range.
func (r *PlanetLayerResult) ClampTo(b Bounds) {
	for p, v := range r.raws {
		r.raws[p] = b.Clamp(sanitize(v))
	}
}

// CancellationResult is the analyzer's verdict for one debilitated planet.
type CancellationResult struct {
	Planet           chart.Planet `json:"planet"`
	DebilitationSign chart.Sign   `json:"debilitation_sign"`
	House            int          `json:"house"`
	RulesSatisfied   []string     `json:"rules_satisfied,omitempty"`
	Count            int          `json:"count"`
	RajaYoga         bool         `json:"raja_yoga"`
	Modifier         float64      `json:"modifier"`
}

// ValidationError represents an input-contract violation.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return ve.Message
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sanitize replaces NaN and infinities with zero so one bad upstream value
// cannot poison an aggregate.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
