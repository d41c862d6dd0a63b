package bala

import (
	"fmt"

	"grahabala/internal/astro"
	"grahabala/pkg/contracts/chart"
)

// evalPlanetAshtakavarga scores the point-count support behind each planet:
// its own-table bindu at the occupied sign, the sarvashtakavarga band of
// that sign, and the ruler of the occupied kakshya segment. The nodes keep
// no table of their own but still read the sign total and the kakshya.
func evalPlanetAshtakavarga(in *Input) *PlanetLayerResult {
	res := newPlanetResult(LayerPlanetAshtakavarga)

	for _, p := range chart.AllPlanets() {
		pf, ok := in.fact(p)
		if !ok {
			continue
		}

		if n, ok := in.Ref.BinduCount(p, pf.Sign, in.positions, in.Facts.Ascendant); ok {
			res.Add(p, binduPoints(n), binduReason(n))
		}

		res.Add(p, savBandPoints(in.Ref.SarvaBindu(pf.Sign, in.positions, in.Facts.Ascendant)), "")

		ruler, isLagna := in.Ref.KakshyaRuler(pf.Degree)
		switch {
		case isLagna:
			res.Add(p, 1, "")
		case ruler == p:
			res.Add(p, 2, "own kakshya")
		default:
			switch in.Ref.Relation(p, ruler) {
			case astro.RelationFriend:
				res.Add(p, 1.5, "")
			case astro.RelationEnemy:
				res.Add(p, -1.5, "")
			}
		}
	}
	return res
}

// binduPoints grades a planet's own-table bindu count at its sign.
func binduPoints(n int) float64 {
	switch {
	case n >= 6:
		return 7
	case n == 5:
		return 4
	case n == 4:
		return 1
	case n == 3:
		return -2
	default:
		return -6
	}
}

// binduReason labels only the decisive counts.
func binduReason(n int) string {
	switch {
	case n >= 6:
		return fmt.Sprintf("strong bindu support (%d)", n)
	case n <= 2:
		return fmt.Sprintf("scant bindu support (%d)", n)
	default:
		return ""
	}
}
