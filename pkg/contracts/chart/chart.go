// Package chart defines the read-only input contract consumed by the
// scoring engine: planet placements, houses, divisional charts, detected
// combinations, and karaka assignments, all produced by an upstream chart
// facts provider. The engine never mutates these values.
package chart

import "fmt"

// Facts is the complete input for one chart evaluation. Only the D1
// essentials (ascendant plus at least one planet) are required; every other
// field is optional and its absence degrades the affected layers to a
// neutral contribution.
type Facts struct {
	Ascendant       Sign                     `json:"ascendant" validate:"required,min=1,max=12"`
	AscendantDegree float64                  `json:"ascendant_degree,omitempty" validate:"gte=0,lt=30"`
	Planets         []PlanetFact             `json:"planets" validate:"required,min=1,dive"`
	Houses          []HouseFact              `json:"houses,omitempty" validate:"dive"`
	Vargas          map[VargaCode]VargaChart `json:"vargas,omitempty"`
	Yogas           []YogaFact               `json:"yogas,omitempty" validate:"dive"`
	Karakas         []KarakaFact             `json:"karakas,omitempty" validate:"dive"`
}

// Validate checks the minimal D1 shape. It is deliberately permissive:
// anything beyond a present ascendant and a non-empty planet list degrades
// during scoring instead of failing here.
func (f *Facts) Validate() error {
	if f == nil {
		return fmt.Errorf("chart facts are nil")
	}
	if !f.Ascendant.IsValid() {
		return fmt.Errorf("ascendant sign %d out of range 1..12", int(f.Ascendant))
	}
	if len(f.Planets) == 0 {
		return fmt.Errorf("no planet placements supplied")
	}
	return nil
}

// Planet returns the D1 placement of the named planet.
func (f *Facts) Planet(name Planet) (PlanetFact, bool) {
	for _, p := range f.Planets {
		if p.Name == name {
			return p, true
		}
	}
	return PlanetFact{}, false
}

// Varga returns the divisional chart with the given code.
func (f *Facts) Varga(code VargaCode) (VargaChart, bool) {
	v, ok := f.Vargas[code]
	return v, ok
}

// HasVarga reports whether a divisional chart is present.
func (f *Facts) HasVarga(code VargaCode) bool {
	_, ok := f.Vargas[code]
	return ok
}

// Karaka returns the karaka assignment with the given code.
func (f *Facts) Karaka(code KarakaCode) (KarakaFact, bool) {
	for _, k := range f.Karakas {
		if k.Code == code {
			return k, true
		}
	}
	return KarakaFact{}, false
}
