package bala

import (
	"context"

	"grahabala/internal/astro"
	"grahabala/internal/yoga"
	"grahabala/pkg/contracts/chart"
)

// Input is the assembled evaluation context handed to every scoring layer.
// It is built once per chart and read-only from then on; layers never see
// each other's output through it.
type Input struct {
	Facts         *chart.Facts
	Ref           *astro.Reference
	Catalog       *yoga.Catalog
	Params        ScoringParams
	Cancellations map[chart.Planet]CancellationResult

	// Derived indexes, whole-sign houses throughout.
	facts      map[chart.Planet]chart.PlanetFact
	positions  map[chart.Planet]chart.Sign
	houses     map[chart.Planet]int
	occupants  [13][]chart.Planet
	houseSigns [13]chart.Sign
	houseLords [13]chart.Planet

	yogas   []resolvedYoga
	karakas []chart.KarakaFact

	moonSign  chart.Sign
	moonHouse int
	moonNak   int
	hasMoon   bool

	sunLon   float64
	sunSign  chart.Sign
	hasSun   bool
	dayBirth bool
}

// resolvedYoga pairs a reported combination with its catalog definition,
// the strength multiplier already folded into points.
type resolvedYoga struct {
	fact   chart.YogaFact
	exact  bool
	points float64
	houses []int
}

// newInput derives the per-chart indexes. Malformed planet entries are
// skipped with a debug log and never abort the evaluation; houses and
// nakshatras missing from the upstream facts are rederived.
func (c *Calculator) newInput(ctx context.Context, f *chart.Facts, params ScoringParams) *Input {
	in := &Input{
		Facts:     f,
		Ref:       c.ref,
		Catalog:   c.catalog,
		Params:    params,
		facts:     make(map[chart.Planet]chart.PlanetFact, len(f.Planets)),
		positions: make(map[chart.Planet]chart.Sign, len(f.Planets)),
		houses:    make(map[chart.Planet]int, len(f.Planets)),
	}

	for _, pf := range f.Planets {
		if err := c.validate.Struct(pf); err != nil {
			c.logger.DebugContext(ctx, "skipping malformed planet entry",
				"planet", string(pf.Name), "error", err)
			continue
		}
		if !pf.Name.IsValid() || !pf.Sign.IsValid() {
			c.logger.DebugContext(ctx, "skipping unrecognized planet entry",
				"planet", string(pf.Name), "sign", int(pf.Sign))
			continue
		}
		if _, dup := in.facts[pf.Name]; dup {
			c.logger.DebugContext(ctx, "skipping duplicate planet entry",
				"planet", string(pf.Name))
			continue
		}

		if pf.House < 1 || pf.House > 12 {
			pf.House = chart.HouseFrom(f.Ascendant, pf.Sign)
		}
		if pf.Nakshatra < 1 || pf.Nakshatra > 27 {
			pf.Nakshatra = c.ref.NakshatraOf(pf.AbsoluteLongitude())
		}
		if !pf.Dignity.IsValid() {
			pf.Dignity = c.ref.DignityAt(pf.Name, pf.Sign, pf.Degree)
		}

		in.facts[pf.Name] = pf
		in.positions[pf.Name] = pf.Sign
		in.houses[pf.Name] = pf.House
	}

	// Occupants in canonical planet order keeps reason lists stable.
	for _, p := range chart.AllPlanets() {
		if h, ok := in.houses[p]; ok {
			in.occupants[h] = append(in.occupants[h], p)
		}
	}

	// House signs and lords come from the ascendant, not the informational
	// house facts, so a stale upstream list cannot skew the scoring.
	for h := 1; h <= 12; h++ {
		sign := chart.Sign((int(f.Ascendant)+h-2)%12 + 1)
		in.houseSigns[h] = sign
		if lord, ok := c.ref.SignLord(sign); ok {
			in.houseLords[h] = lord
		}
	}

	if mf, ok := in.facts[chart.PlanetMoon]; ok {
		in.hasMoon = true
		in.moonSign = mf.Sign
		in.moonHouse = mf.House
		in.moonNak = mf.Nakshatra
	}
	if sf, ok := in.facts[chart.PlanetSun]; ok {
		in.hasSun = true
		in.sunLon = sf.AbsoluteLongitude()
		in.sunSign = sf.Sign
		in.dayBirth = sf.House >= 7 && sf.House <= 12
	}

	in.yogas = c.resolveYogas(ctx, f.Yogas)
	in.karakas = c.resolveKarakas(ctx, in, f)

	return in
}

// resolveYogas matches each reported combination against the catalog. A
// name the catalog does not carry falls back to its category default with
// a debug log; reported house lists win over catalog house lists.
func (c *Calculator) resolveYogas(ctx context.Context, facts []chart.YogaFact) []resolvedYoga {
	if len(facts) == 0 {
		return nil
	}
	resolved := make([]resolvedYoga, 0, len(facts))
	for _, yf := range facts {
		if yf.Name == "" {
			c.logger.DebugContext(ctx, "skipping unnamed combination")
			continue
		}
		def, exact := c.catalog.Lookup(yf.Name, yf.Category)
		if !exact {
			c.logger.DebugContext(ctx, "combination not in catalog, using category default",
				"name", yf.Name, "category", string(yf.Category))
		}
		houses := def.Houses
		if len(yf.Houses) > 0 {
			houses = yf.Houses
		}
		resolved = append(resolved, resolvedYoga{
			fact:   yf,
			exact:  exact,
			points: def.Points * yoga.StrengthMultiplier(yf.Strength),
			houses: houses,
		})
	}
	return resolved
}

// resolveKarakas keeps the first valid assignment per karaka code, in rank
// order, dropping entries whose planet is absent from the chart.
func (c *Calculator) resolveKarakas(ctx context.Context, in *Input, f *chart.Facts) []chart.KarakaFact {
	if len(f.Karakas) == 0 {
		return nil
	}
	resolved := make([]chart.KarakaFact, 0, len(f.Karakas))
	for _, code := range chart.AllKarakas() {
		kf, ok := f.Karaka(code)
		if !ok {
			continue
		}
		if _, placed := in.facts[kf.Planet]; !placed {
			c.logger.DebugContext(ctx, "skipping karaka for unplaced planet",
				"code", string(kf.Code), "planet", string(kf.Planet))
			continue
		}
		resolved = append(resolved, kf)
	}
	return resolved
}

// fact returns the D1 placement of a planet.
func (in *Input) fact(p chart.Planet) (chart.PlanetFact, bool) {
	pf, ok := in.facts[p]
	return pf, ok
}

// houseOf returns the whole-sign house a planet occupies.
func (in *Input) houseOf(p chart.Planet) (int, bool) {
	h, ok := in.houses[p]
	return h, ok
}

// signOf returns the sign on a house cusp.
func (in *Input) signOf(house int) chart.Sign {
	if house < 1 || house > 12 {
		return 0
	}
	return in.houseSigns[house]
}

// lordOf returns the lord of a house.
func (in *Input) lordOf(house int) (chart.Planet, bool) {
	if house < 1 || house > 12 {
		return "", false
	}
	lord := in.houseLords[house]
	return lord, lord.IsValid()
}

// occupantsOf returns the planets occupying a house, canonical order.
func (in *Input) occupantsOf(house int) []chart.Planet {
	if house < 1 || house > 12 {
		return nil
	}
	return in.occupants[house]
}

// cancellation returns the analyzer verdict for a debilitated planet.
func (in *Input) cancellation(p chart.Planet) (CancellationResult, bool) {
	cr, ok := in.Cancellations[p]
	return cr, ok
}
