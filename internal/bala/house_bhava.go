package bala

import (
	"fmt"
	"math"

	"grahabala/pkg/contracts/chart"
)

// Component caps inside the bhava bala aggregate.
const (
	bhavaDigBalaCap  = 2.0
	bhavaAspectCap   = 3.0
	bhavaMadhyaCap   = 1.5
	bhavaNeighborCap = 2.0
	bhavaYogaCap     = 1.5
)

// evalHouseBhavaBala aggregates seven classical house-strength components:
// lord dignity, occupant directional strength, the aspect balance, midpoint
// proximity, neighbour support, the sign's point-count total, and
// combination support.
func evalHouseBhavaBala(in *Input) *HouseLayerResult {
	res := newHouseResult(LayerHouseBhavaBala)

	for h := 1; h <= 12; h++ {
		res.Add(h, bhavaLordDignity(in, h, res), "")
		res.Add(h, bhavaDigBala(in, h), "")
		res.Add(h, bhavaAspectBalance(in, h, res), "")
		res.Add(h, bhavaMadhya(in, h, res), "")
		res.Add(h, bhavaNeighbors(in, h), "")

		sav := in.Ref.SarvaBindu(in.signOf(h), in.positions, in.Facts.Ascendant)
		pts := savBandPoints(sav)
		switch {
		case pts >= 2:
			res.Add(h, pts, fmt.Sprintf("strong sarvashtakavarga (%d bindus)", sav))
		case pts <= -2:
			res.Add(h, pts, fmt.Sprintf("weak sarvashtakavarga (%d bindus)", sav))
		default:
			res.Add(h, pts, "")
		}

		res.Add(h, bhavaYogaSupport(in, h), "")
	}
	return res
}

func bhavaLordDignity(in *Input, h int, res *HouseLayerResult) float64 {
	lord, ok := in.lordOf(h)
	if !ok {
		return 0
	}
	lf, ok := in.fact(lord)
	if !ok {
		return 0
	}
	switch lf.Dignity {
	case chart.DignityExalted:
		res.Add(h, 0, fmt.Sprintf("lord %s exalted", lord))
		return 3
	case chart.DignityMoolatrikona:
		return 2.5
	case chart.DignityOwn:
		return 2
	case chart.DignityFriend:
		return 1
	case chart.DignityEnemy:
		return -1.5
	case chart.DignityDebilitated:
		res.Add(h, 0, fmt.Sprintf("lord %s debilitated", lord))
		return -3
	}
	return 0
}

func bhavaDigBala(in *Input, h int) float64 {
	total := 0.0
	for _, p := range in.occupantsOf(h) {
		if db, ok := in.Ref.DigBalaHouse(p); ok && db == h {
			total++
		}
		if op, ok := in.Ref.DigBalaOppositeHouse(p); ok && op == h {
			total -= 0.75
		}
	}
	return clamp(total, -bhavaDigBalaCap, bhavaDigBalaCap)
}

func bhavaAspectBalance(in *Input, h int, res *HouseLayerResult) float64 {
	balance := 0.0
	for _, q := range chart.AllPlanets() {
		qh, ok := in.houseOf(q)
		if !ok || !in.Ref.Aspects(q, qh, h) {
			continue
		}
		switch {
		case q == chart.PlanetJupiter:
			balance++
		case q == chart.PlanetSaturn:
			balance--
		case in.Ref.IsBenefic(q):
			balance += 0.75
		case in.Ref.IsMalefic(q):
			balance -= 0.75
		}
	}
	balance = clamp(balance, -bhavaAspectCap, bhavaAspectCap)
	if balance >= 2 {
		res.Add(h, 0, "benefic aspect support")
	} else if balance <= -2 {
		res.Add(h, 0, "malefic aspect pressure")
	}
	return balance
}

func bhavaMadhya(in *Input, h int, res *HouseLayerResult) float64 {
	total := 0.0
	for _, p := range in.occupantsOf(h) {
		if math.Abs(in.facts[p].Degree-15) <= 5 {
			total += 0.5
		}
	}
	if total > 0 {
		res.Add(h, 0, "occupant near bhava madhya")
	}
	return math.Min(total, bhavaMadhyaCap)
}

func bhavaNeighbors(in *Input, h int) float64 {
	prev := h - 1
	if prev < 1 {
		prev = 12
	}
	next := h + 1
	if next > 12 {
		next = 1
	}

	total := 0.0
	for _, hh := range []int{prev, next} {
		for _, p := range in.occupantsOf(hh) {
			if in.Ref.IsBenefic(p) {
				total += 0.5
			} else if in.Ref.IsMalefic(p) {
				total -= 0.5
			}
		}
	}
	return clamp(total, -bhavaNeighborCap, bhavaNeighborCap)
}

func bhavaYogaSupport(in *Input, h int) float64 {
	total := 0.0
	for _, ry := range in.yogas {
		for _, yh := range ry.houses {
			if yh != h {
				continue
			}
			if ry.points > 0 {
				total += 0.5
			} else if ry.points < 0 {
				total -= 0.5
			}
		}
	}
	return clamp(total, -bhavaYogaCap, bhavaYogaCap)
}

// savBandPoints maps a sign's sarvashtakavarga total onto agreement points.
// The all-sign average is about 28 bindus.
func savBandPoints(total int) float64 {
	switch {
	case total >= 33:
		return 2
	case total >= 29:
		return 1
	case total >= 25:
		return 0
	case total >= 21:
		return -1
	default:
		return -2
	}
}
