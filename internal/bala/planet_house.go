package bala

import "grahabala/pkg/contracts/chart"

// evalPlanetHouse scores residence and lordship relative to the ascendant:
// house-group base points, directional strength, and the functional nature
// the planet's lordships give it for this lagna.
func evalPlanetHouse(in *Input) *PlanetLayerResult {
	res := newPlanetResult(LayerPlanetHouse)

	for _, p := range chart.AllPlanets() {
		h, ok := in.houseOf(p)
		if !ok {
			continue
		}

		// The lagna bonus subsumes the kendra bonus; the other groups
		// stack.
		switch {
		case h == 1:
			res.Add(p, 6, "occupies the lagna")
		case in.Ref.IsKendra(h):
			res.Add(p, 4, "in a kendra")
		}
		if in.Ref.IsTrikona(h) {
			res.Add(p, 5, "in a trikona")
		}
		if in.Ref.IsUpachaya(h) {
			res.Add(p, 2, "")
		}
		if in.Ref.IsDusthana(h) {
			res.Add(p, -5, "in a dusthana")
		}

		if db, ok := in.Ref.DigBalaHouse(p); ok && db == h {
			res.Add(p, 3, "dig bala")
		} else if opp, ok := in.Ref.DigBalaOppositeHouse(p); ok && opp == h {
			res.Add(p, -2, "")
		}

		owned := in.lordships(p)
		ownsTrikona := false
		ownsGrowthTriad := false
		for _, oh := range owned {
			if in.Ref.IsTrikona(oh) {
				ownsTrikona = true
			}
			if oh == 3 || oh == 6 || oh == 11 {
				ownsGrowthTriad = true
			}
		}
		switch {
		case isYogakaraka(in, owned):
			res.Add(p, 4, "yogakaraka for the lagna")
		case ownsTrikona:
			res.Add(p, 2, "functional benefic")
		case ownsGrowthTriad:
			res.Add(p, -3, "functional malefic lordship")
		}

		if h == in.Ref.BadhakaHouse(in.Facts.Ascendant) {
			res.Add(p, -2, "occupies the badhaka house")
		}
	}
	return res
}

// lordships returns the houses a planet owns for the chart's ascendant.
// Empty for the nodes.
func (in *Input) lordships(p chart.Planet) []int {
	var owned []int
	for h := 1; h <= 12; h++ {
		if in.houseLords[h] == p {
			owned = append(owned, h)
		}
	}
	return owned
}

// isYogakaraka reports whether the owned houses include a kendra and a
// distinct trikona. The lagna alone does not qualify even though it belongs
// to both groups.
func isYogakaraka(in *Input, owned []int) bool {
	for _, k := range owned {
		if !in.Ref.IsKendra(k) {
			continue
		}
		for _, t := range owned {
			if t != k && in.Ref.IsTrikona(t) {
				return true
			}
		}
	}
	return false
}
