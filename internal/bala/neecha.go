package bala

import (
	"context"

	"grahabala/pkg/contracts/chart"
)

// Cancellation rule identifiers, in checklist order. The strings appear in
// CancellationResult.RulesSatisfied and in dignity-layer reasons.
const (
	RuleDispositorKendra       = "dispositor_kendra"
	RuleExaltLordKendra        = "exalt_lord_kendra"
	RuleDispositorConjunct     = "dispositor_conjunct"
	RuleDispositorAspect       = "dispositor_aspect"
	RuleBeneficSupport         = "benefic_support"
	RuleRetrograde             = "retrograde"
	RuleVargottama             = "vargottama"
	RuleMutualKendraLords      = "mutual_kendra_lords"
	RuleExaltCounterpartAspect = "exalt_counterpart_aspect"
	RulePlanetKendra           = "planet_kendra"
	RuleStrongDispositor       = "strong_dispositor"
	RuleExaltedCompanion       = "exalted_companion"
)

// rajaYogaThreshold is the satisfied-rule count at which a cancelled
// debilitation is upgraded to a Neecha-Bhanga Raja-Yoga.
const rajaYogaThreshold = 3

// neechaSubject is one debilitated planet under analysis.
type neechaSubject struct {
	planet     chart.Planet
	fact       chart.PlanetFact
	dispositor chart.Planet // lord of the debilitation sign
	exaltLord  chart.Planet // lord of the subject's exaltation sign
}

// cancellationRule pairs a rule identifier with its predicate. Rules are
// independent; each sees only the immutable input.
type cancellationRule struct {
	id    string
	check func(*Input, neechaSubject) bool
}

func cancellationRules() []cancellationRule {
	return []cancellationRule{
		{RuleDispositorKendra, func(in *Input, s neechaSubject) bool {
			return inKendraFromAscOrMoon(in, s.dispositor)
		}},
		{RuleExaltLordKendra, func(in *Input, s neechaSubject) bool {
			return inKendraFromAscOrMoon(in, s.exaltLord)
		}},
		{RuleDispositorConjunct, func(in *Input, s neechaSubject) bool {
			dh, ok := in.houseOf(s.dispositor)
			return ok && dh == s.fact.House
		}},
		{RuleDispositorAspect, func(in *Input, s neechaSubject) bool {
			dh, ok := in.houseOf(s.dispositor)
			return ok && in.Ref.Aspects(s.dispositor, dh, s.fact.House)
		}},
		{RuleBeneficSupport, func(in *Input, s neechaSubject) bool {
			for _, q := range chart.AllPlanets() {
				if q == s.planet || !in.Ref.IsBenefic(q) {
					continue
				}
				qh, ok := in.houseOf(q)
				if !ok {
					continue
				}
				if qh == s.fact.House || in.Ref.Aspects(q, qh, s.fact.House) {
					return true
				}
			}
			return false
		}},
		{RuleRetrograde, func(in *Input, s neechaSubject) bool {
			return s.fact.Retrograde
		}},
		{RuleVargottama, func(in *Input, s neechaSubject) bool {
			d9, ok := in.Facts.Varga(chart.VargaD9)
			if !ok {
				return false
			}
			nf, ok := d9.Planet(s.planet)
			return ok && nf.Sign == s.fact.Sign
		}},
		{RuleMutualKendraLords, func(in *Input, s neechaSubject) bool {
			if s.dispositor == s.exaltLord {
				return false
			}
			ds, dok := in.positions[s.dispositor]
			es, eok := in.positions[s.exaltLord]
			if !dok || !eok {
				return false
			}
			// Kendra separations are symmetric, one direction suffices.
			return in.Ref.IsKendra(chart.HouseFrom(ds, es))
		}},
		{RuleExaltCounterpartAspect, func(in *Input, s neechaSubject) bool {
			for _, q := range chart.AllPlanets() {
				if q == s.planet {
					continue
				}
				exSign, _, ok := in.Ref.ExaltationPoint(q)
				if !ok || exSign != s.fact.Sign {
					continue
				}
				qh, placed := in.houseOf(q)
				if placed && in.Ref.Aspects(q, qh, s.fact.House) {
					return true
				}
			}
			return false
		}},
		{RulePlanetKendra, func(in *Input, s neechaSubject) bool {
			return inKendraFromAscOrMoon(in, s.planet)
		}},
		{RuleStrongDispositor, func(in *Input, s neechaSubject) bool {
			df, ok := in.fact(s.dispositor)
			if !ok {
				return false
			}
			switch df.Dignity {
			case chart.DignityExalted, chart.DignityMoolatrikona, chart.DignityOwn:
				return true
			}
			return false
		}},
		{RuleExaltedCompanion, func(in *Input, s neechaSubject) bool {
			for _, q := range in.occupantsOf(s.fact.House) {
				if q == s.planet {
					continue
				}
				if in.facts[q].Dignity == chart.DignityExalted {
					return true
				}
			}
			return false
		}},
	}
}

// inKendraFromAscOrMoon reports whether a planet occupies a kendra counted
// from the ascendant or from the Moon. The Moon itself is only measured
// from the ascendant; its own position is a degenerate reference.
func inKendraFromAscOrMoon(in *Input, p chart.Planet) bool {
	pf, ok := in.fact(p)
	if !ok {
		return false
	}
	if in.Ref.IsKendra(pf.House) {
		return true
	}
	if !in.hasMoon || p == chart.PlanetMoon {
		return false
	}
	return in.Ref.IsKendra(chart.HouseFrom(in.moonSign, pf.Sign))
}

// analyzeCancellations evaluates the twelve-rule checklist for every planet
// occupying its classical debilitation sign. Planets not debilitated are
// absent from the result. The analyzer never fails; a missing navamsha only
// disables the vargottama rule.
func analyzeCancellations(in *Input) map[chart.Planet]CancellationResult {
	rules := cancellationRules()
	out := make(map[chart.Planet]CancellationResult)

	for _, p := range chart.AllPlanets() {
		pf, ok := in.fact(p)
		if !ok || !in.Ref.IsDebilitated(p, pf.Sign) {
			continue
		}

		subject := neechaSubject{planet: p, fact: pf}
		if lord, ok := in.Ref.SignLord(pf.Sign); ok {
			subject.dispositor = lord
		}
		if exSign, _, ok := in.Ref.ExaltationPoint(p); ok {
			if lord, ok := in.Ref.SignLord(exSign); ok {
				subject.exaltLord = lord
			}
		}

		var satisfied []string
		for _, rule := range rules {
			if rule.check(in, subject) {
				satisfied = append(satisfied, rule.id)
			}
		}

		count := len(satisfied)
		out[p] = CancellationResult{
			Planet:           p,
			DebilitationSign: pf.Sign,
			House:            pf.House,
			RulesSatisfied:   satisfied,
			Count:            count,
			RajaYoga:         count >= rajaYogaThreshold,
			Modifier:         cancellationModifier(count),
		}
	}
	return out
}

// cancellationModifier maps a satisfied-rule count onto the dignity
// adjustment: the full penalty stands with no support, one rule neutralizes
// it, and from two rules up the debilitation turns into a gain.
func cancellationModifier(count int) float64 {
	switch {
	case count <= 0:
		return -3
	case count == 1:
		return 0
	case count == 2:
		return 2
	case count == 3:
		return 3
	default:
		return 4
	}
}

// AnalyzeCancellations exposes the debilitation-cancellation verdicts for a
// chart without running the full scoring pipeline.
func (c *Calculator) AnalyzeCancellations(ctx context.Context, facts *chart.Facts) (map[chart.Planet]CancellationResult, error) {
	if err := c.checkInput(facts); err != nil {
		return nil, err
	}
	return analyzeCancellations(c.newInput(ctx, facts, c.params)), nil
}
