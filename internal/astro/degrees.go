package astro

import "grahabala/pkg/contracts/chart"

// Combustion orbs in degrees of angular separation from the Sun. The nodes
// are never combust.
var combustionOrbs = map[chart.Planet]float64{
	chart.PlanetMoon:    12,
	chart.PlanetMars:    17,
	chart.PlanetMercury: 13,
	chart.PlanetJupiter: 11,
	chart.PlanetVenus:   9,
	chart.PlanetSaturn:  15,
}

// CombustionOrb returns the combustion orb for a planet.
func (r *Reference) CombustionOrb(p chart.Planet) (float64, bool) {
	orb, ok := combustionOrbs[p]
	return orb, ok
}

// AngularDistance returns the smallest angle between two longitudes, 0..180.
func AngularDistance(a, b float64) float64 {
	d := chart.NormalizeLongitude(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Gandanta zone half-width: 3 degrees 20 minutes either side of each
// water-to-fire sign boundary.
const gandantaOrb = 10.0 / 3.0

// gandantaBoundaries are the absolute longitudes of the water-to-fire
// junctions: Pisces-Aries (0), Cancer-Leo (120), Scorpio-Sagittarius (240).
var gandantaBoundaries = []float64{0, 120, 240}

// InGandanta reports whether a longitude falls inside a junction zone.
func (r *Reference) InGandanta(longitude float64) bool {
	l := chart.NormalizeLongitude(longitude)
	for _, b := range gandantaBoundaries {
		if AngularDistance(l, b) <= gandantaOrb {
			return true
		}
	}
	return false
}

// pushkaraBhagas lists the auspicious exact degree per sign, Aries first.
var pushkaraBhagas = [...]float64{21, 14, 18, 8, 19, 9, 24, 11, 23, 14, 19, 9}

// PushkaraBhaga returns the auspicious degree of a sign.
func (r *Reference) PushkaraBhaga(s chart.Sign) (float64, bool) {
	if !s.IsValid() {
		return 0, false
	}
	return pushkaraBhagas[s-1], true
}

// IsPushkaraBhaga reports whether a degree within a sign is inside the
// given orb of the sign's auspicious degree.
func (r *Reference) IsPushkaraBhaga(s chart.Sign, degreeInSign, orb float64) bool {
	d, ok := r.PushkaraBhaga(s)
	if !ok {
		return false
	}
	diff := degreeInSign - d
	if diff < 0 {
		diff = -diff
	}
	return diff <= orb
}

// pushkaraNavamshas maps a sign element to its two auspicious navamsha
// segments (1..9 within the sign).
var pushkaraNavamshas = map[Element][2]int{
	ElementFire:  {7, 9},
	ElementEarth: {3, 5},
	ElementAir:   {6, 8},
	ElementWater: {1, 3},
}

// NavamshaIndex returns the navamsha segment (1..9) of a degree within a
// sign. Each segment spans 3 degrees 20 minutes.
func (r *Reference) NavamshaIndex(degreeInSign float64) int {
	idx := int(degreeInSign/(10.0/3.0)) + 1
	if idx < 1 {
		idx = 1
	}
	if idx > 9 {
		idx = 9
	}
	return idx
}

// IsPushkaraNavamsha reports whether a degree within a sign falls in one of
// the sign's auspicious navamsha segments.
func (r *Reference) IsPushkaraNavamsha(s chart.Sign, degreeInSign float64) bool {
	pair, ok := pushkaraNavamshas[r.ElementOf(s)]
	if !ok {
		return false
	}
	idx := r.NavamshaIndex(degreeInSign)
	return idx == pair[0] || idx == pair[1]
}
