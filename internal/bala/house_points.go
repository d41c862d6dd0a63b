package bala

import (
	"fmt"

	"grahabala/pkg/contracts/chart"
)

// Shadow-point arcs in degrees.
const (
	dhumaArc   = 133.0 + 20.0/60.0
	upaketuArc = 16.0 + 40.0/60.0
)

// upagraha is one derived shadow point.
type upagraha struct {
	name string
	lon  float64
}

// upagrahaPositions derives the five shadow points from the Sun's absolute
// longitude. The chain folds back through three reflections; Upaketu always
// lands exactly thirty degrees behind the Sun.
func upagrahaPositions(sunLon float64) [5]upagraha {
	dhuma := chart.NormalizeLongitude(sunLon + dhumaArc)
	vyatipata := chart.NormalizeLongitude(360 - dhuma)
	parivesha := chart.NormalizeLongitude(vyatipata + 180)
	indrachapa := chart.NormalizeLongitude(360 - parivesha)
	upaketu := chart.NormalizeLongitude(indrachapa + upaketuArc)
	return [5]upagraha{
		{"dhuma", dhuma},
		{"vyatipata", vyatipata},
		{"parivesha", parivesha},
		{"indrachapa", indrachapa},
		{"upaketu", upaketu},
	}
}

// evalHouseUpagraha places the five shadow points whole-sign. They burden
// whichever house they fall in, except a dusthana, where their presence is
// welcome. Neutral when the Sun is absent.
func evalHouseUpagraha(in *Input) *HouseLayerResult {
	res := newHouseResult(LayerHouseUpagraha)
	if !in.hasSun {
		return res
	}

	for _, u := range upagrahaPositions(in.sunLon) {
		h := chart.HouseFrom(in.Facts.Ascendant, chart.SignOfLongitude(u.lon))
		switch {
		case in.Ref.IsDusthana(h):
			res.Add(h, 0.5, u.name+" contained in dusthana")
		case in.Ref.IsKendra(h) || in.Ref.IsTrikona(h):
			res.Add(h, -0.6, u.name+" affliction")
		default:
			res.Add(h, -0.2, "")
		}
	}
	return res
}

// saham is one sensitive-point recipe: longitude = ascendant + a - b.
type saham struct {
	name       string
	a, b       chart.Planet
	themeHouse int
}

// sahamTable lists the seven scored sahamas and their theme houses.
func sahamTable() [7]saham {
	return [7]saham{
		{"punya", chart.PlanetMoon, chart.PlanetSun, 9},
		{"vidya", chart.PlanetMercury, chart.PlanetMoon, 5},
		{"yasas", chart.PlanetJupiter, chart.PlanetSun, 10},
		{"mitra", chart.PlanetVenus, chart.PlanetMercury, 11},
		{"artha", chart.PlanetJupiter, chart.PlanetMoon, 2},
		{"roga", chart.PlanetSaturn, chart.PlanetMoon, 6},
		{"vivaha", chart.PlanetVenus, chart.PlanetSaturn, 7},
	}
}

// evalHouseSahama locates the seven sensitive points and rewards the lucky
// placements: a saham in its own theme house, or in a kendra or trikona. A
// saham in a dusthana weakens the house, except Roga, whose proper seat is
// the difficult houses. Points whose source planets are missing are
// skipped.
func evalHouseSahama(in *Input) *HouseLayerResult {
	res := newHouseResult(LayerHouseSahama)
	ascLon := float64(in.Facts.Ascendant-1)*30 + in.Facts.AscendantDegree

	for _, s := range sahamTable() {
		af, ok := in.fact(s.a)
		if !ok {
			continue
		}
		bf, ok := in.fact(s.b)
		if !ok {
			continue
		}

		lon := chart.NormalizeLongitude(ascLon + af.AbsoluteLongitude() - bf.AbsoluteLongitude())
		h := chart.HouseFrom(in.Facts.Ascendant, chart.SignOfLongitude(lon))

		switch {
		case h == s.themeHouse:
			res.Add(h, 0.75, fmt.Sprintf("%s saham in its theme house", s.name))
		case in.Ref.IsKendra(h) || in.Ref.IsTrikona(h):
			res.Add(h, 0.3, "")
		case in.Ref.IsDusthana(h):
			if s.name == "roga" {
				res.Add(h, 0.4, "roga saham contained")
			} else {
				res.Add(h, -0.4, fmt.Sprintf("%s saham afflicted", s.name))
			}
		}
	}
	return res
}
