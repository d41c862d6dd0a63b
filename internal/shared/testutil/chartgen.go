package testutil

import (
	"math/rand"

	"grahabala/internal/astro"
	"grahabala/pkg/contracts/chart"
)

// ChartOption mutates a chart fixture before its houses are rebuilt.
type ChartOption func(*chart.Facts)

// NewChart returns the baseline fixture with options applied and houses
// rederived from the final placements.
func NewChart(opts ...ChartOption) *chart.Facts {
	f := BaselineChart()
	for _, opt := range opts {
		opt(f)
	}
	RebuildHouses(f)
	return f
}

// BaselineChart returns a fixed, fully populated chart used across the
// scoring tests: an Aries lagna with mostly dignified placements, two
// divisional charts, three combinations, and a complete karaka set.
func BaselineChart() *chart.Facts {
	f := &chart.Facts{
		Ascendant:       chart.SignAries,
		AscendantDegree: 15,
		Planets: []chart.PlanetFact{
			planetFact(chart.PlanetSun, chart.SignLeo, 10, false),
			planetFact(chart.PlanetMoon, chart.SignTaurus, 20, false),
			planetFact(chart.PlanetMars, chart.SignCapricorn, 5, false),
			planetFact(chart.PlanetMercury, chart.SignVirgo, 10, false),
			planetFact(chart.PlanetJupiter, chart.SignSagittarius, 15, false),
			planetFact(chart.PlanetVenus, chart.SignLibra, 8, false),
			planetFact(chart.PlanetSaturn, chart.SignAquarius, 25, false),
			planetFact(chart.PlanetRahu, chart.SignGemini, 12, true),
			planetFact(chart.PlanetKetu, chart.SignSagittarius, 12, true),
		},
		Vargas: map[chart.VargaCode]chart.VargaChart{
			// Jupiter repeats its rashi sign in the navamsha.
			chart.VargaD9: vargaChart(chart.VargaD9, chart.SignLeo, map[chart.Planet]chart.Sign{
				chart.PlanetSun:     chart.SignAries,
				chart.PlanetMoon:    chart.SignCancer,
				chart.PlanetMars:    chart.SignScorpio,
				chart.PlanetMercury: chart.SignGemini,
				chart.PlanetJupiter: chart.SignSagittarius,
				chart.PlanetVenus:   chart.SignPisces,
				chart.PlanetSaturn:  chart.SignCapricorn,
				chart.PlanetRahu:    chart.SignVirgo,
				chart.PlanetKetu:    chart.SignPisces,
			}),
			chart.VargaD10: vargaChart(chart.VargaD10, chart.SignCapricorn, map[chart.Planet]chart.Sign{
				chart.PlanetSun:     chart.SignCapricorn,
				chart.PlanetMoon:    chart.SignTaurus,
				chart.PlanetMars:    chart.SignAries,
				chart.PlanetMercury: chart.SignVirgo,
				chart.PlanetJupiter: chart.SignPisces,
				chart.PlanetVenus:   chart.SignLibra,
				chart.PlanetSaturn:  chart.SignAquarius,
				chart.PlanetRahu:    chart.SignGemini,
				chart.PlanetKetu:    chart.SignSagittarius,
			}),
		},
		Yogas: []chart.YogaFact{
			{
				Name:         "Gaja Kesari",
				Category:     chart.YogaCategoryRaja,
				Participants: []chart.Planet{chart.PlanetJupiter, chart.PlanetMoon},
				Strength:     chart.YogaStrengthStrong,
			},
			{
				Name:         "Budha Aditya",
				Category:     chart.YogaCategoryVidya,
				Participants: []chart.Planet{chart.PlanetSun, chart.PlanetMercury},
				Strength:     chart.YogaStrengthModerate,
			},
			{
				Name:         "Kuja Dosha",
				Category:     chart.YogaCategoryAffliction,
				Participants: []chart.Planet{chart.PlanetMars},
				Strength:     chart.YogaStrengthWeak,
			},
		},
		// Rank order follows descending degree of the seven visible grahas.
		Karakas: []chart.KarakaFact{
			{Code: chart.KarakaAtma, Planet: chart.PlanetSaturn, Strength: 25.0 / 30},
			{Code: chart.KarakaAmatya, Planet: chart.PlanetMoon, Strength: 20.0 / 30},
			{Code: chart.KarakaBhratri, Planet: chart.PlanetJupiter, Strength: 15.0 / 30},
			{Code: chart.KarakaMatri, Planet: chart.PlanetSun, Strength: 10.0 / 30},
			{Code: chart.KarakaPutra, Planet: chart.PlanetMercury, Strength: 10.0 / 30},
			{Code: chart.KarakaGnati, Planet: chart.PlanetVenus, Strength: 8.0 / 30},
			{Code: chart.KarakaDara, Planet: chart.PlanetMars, Strength: 5.0 / 30},
		},
	}
	RebuildHouses(f)
	return f
}

// MinimalChart returns a bare D1 chart: the baseline placements with no
// divisional charts, combinations, or karakas.
func MinimalChart() *chart.Facts {
	f := BaselineChart()
	f.Vargas = nil
	f.Yogas = nil
	f.Karakas = nil
	RebuildHouses(f)
	return f
}

// WithAscendant moves the lagna; house numbers shift accordingly.
func WithAscendant(sign chart.Sign, degree float64) ChartOption {
	return func(f *chart.Facts) {
		f.Ascendant = sign
		f.AscendantDegree = degree
	}
}

// WithPlanet replaces the named planet's rashi placement. Dignity,
// longitude, and nakshatra are rederived.
func WithPlanet(name chart.Planet, sign chart.Sign, degree float64, retrograde bool) ChartOption {
	return WithPlanetFact(planetFact(name, sign, degree, retrograde))
}

// WithPlanetFact replaces the named planet's placement verbatim, letting a
// test supply inconsistent or adversarial fields.
func WithPlanetFact(pf chart.PlanetFact) ChartOption {
	return func(f *chart.Facts) {
		for i := range f.Planets {
			if f.Planets[i].Name == pf.Name {
				f.Planets[i] = pf
				return
			}
		}
		f.Planets = append(f.Planets, pf)
	}
}

// WithVarga sets or replaces one divisional chart.
func WithVarga(v chart.VargaChart) ChartOption {
	return func(f *chart.Facts) {
		if f.Vargas == nil {
			f.Vargas = make(map[chart.VargaCode]chart.VargaChart)
		}
		f.Vargas[v.Code] = v
	}
}

// WithoutVargas drops every divisional chart.
func WithoutVargas() ChartOption {
	return func(f *chart.Facts) { f.Vargas = nil }
}

// WithYogas replaces the combination list.
func WithYogas(yogas ...chart.YogaFact) ChartOption {
	return func(f *chart.Facts) { f.Yogas = yogas }
}

// WithKarakas replaces the karaka assignments.
func WithKarakas(karakas ...chart.KarakaFact) ChartOption {
	return func(f *chart.Facts) { f.Karakas = karakas }
}

// Varga builds a divisional chart from a sign placement map, walking the
// canonical planet order so the fixture is deterministic.
func Varga(code chart.VargaCode, ascendant chart.Sign, placements map[chart.Planet]chart.Sign) chart.VargaChart {
	return vargaChart(code, ascendant, placements)
}

// RebuildHouses rederives planet house numbers and the informational house
// facts from the current ascendant and placements.
func RebuildHouses(f *chart.Facts) {
	ref := astro.Std()

	for i := range f.Planets {
		f.Planets[i].House = chart.HouseFrom(f.Ascendant, f.Planets[i].Sign)
	}

	houses := make([]chart.HouseFact, 0, 12)
	for n := 1; n <= 12; n++ {
		sign := chart.Sign((int(f.Ascendant)+n-2)%12 + 1)
		lord, _ := ref.SignLord(sign)
		h := chart.HouseFact{Number: n, Sign: sign, Lord: lord}
		for _, p := range f.Planets {
			if p.House == n {
				h.Occupants = append(h.Occupants, p.Name)
			}
		}
		for _, p := range f.Planets {
			for _, target := range ref.HousesAspectedBy(p.Name, p.House) {
				if target == n {
					h.AspectedBy = append(h.AspectedBy, p.Name)
					break
				}
			}
		}
		houses = append(houses, h)
	}
	f.Houses = houses
}

// RandomChart builds a structurally valid chart from a seed. The same seed
// always yields the same chart, which the bounds and determinism tests
// rely on.
func RandomChart(seed int64) *chart.Facts {
	rng := rand.New(rand.NewSource(seed))

	f := &chart.Facts{
		Ascendant:       chart.Sign(rng.Intn(12) + 1),
		AscendantDegree: rng.Float64() * 30,
	}

	var rahuSign chart.Sign
	for _, name := range chart.AllPlanets() {
		var sign chart.Sign
		switch name {
		case chart.PlanetRahu:
			sign = chart.Sign(rng.Intn(12) + 1)
			rahuSign = sign
		case chart.PlanetKetu:
			// Nodes always sit in opposite signs.
			sign = chart.Sign((int(rahuSign)+5)%12 + 1)
		default:
			sign = chart.Sign(rng.Intn(12) + 1)
		}

		degree := rng.Float64() * 30
		retro := name.IsNode() ||
			(name != chart.PlanetSun && name != chart.PlanetMoon && rng.Float64() < 0.2)
		f.Planets = append(f.Planets, planetFact(name, sign, degree, retro))
	}

	f.Vargas = map[chart.VargaCode]chart.VargaChart{
		chart.VargaD9: randomVarga(rng, chart.VargaD9),
	}
	for _, code := range chart.DivisionalVargas() {
		if code == chart.VargaD9 {
			continue
		}
		if rng.Float64() < 0.5 {
			f.Vargas[code] = randomVarga(rng, code)
		}
	}

	pool := []chart.YogaFact{
		{Name: "Gaja Kesari", Category: chart.YogaCategoryRaja, Participants: []chart.Planet{chart.PlanetJupiter, chart.PlanetMoon}, Strength: chart.YogaStrengthStrong},
		{Name: "Dhana", Category: chart.YogaCategoryDhana, Participants: []chart.Planet{chart.PlanetVenus}, Strength: chart.YogaStrengthModerate},
		{Name: "Kemadruma", Category: chart.YogaCategoryAffliction, Participants: []chart.Planet{chart.PlanetMoon}, Strength: chart.YogaStrengthWeak},
		{Name: "Hamsa", Category: chart.YogaCategoryMahapurusha, Participants: []chart.Planet{chart.PlanetJupiter}, Strength: chart.YogaStrengthStrong},
		{Name: "Sunapha", Category: chart.YogaCategoryLunar, Participants: []chart.Planet{chart.PlanetMars}, Strength: chart.YogaStrengthModerate},
		{Name: "Vesi", Category: chart.YogaCategorySolar, Participants: []chart.Planet{chart.PlanetMercury}, Strength: chart.YogaStrengthWeak},
	}
	perm := rng.Perm(len(pool))
	for i, n := 0, rng.Intn(4); i < n; i++ {
		f.Yogas = append(f.Yogas, pool[perm[i]])
	}

	assignees := chart.AllPlanets()
	for i, idx := range rng.Perm(len(assignees))[:len(chart.AllKarakas())] {
		f.Karakas = append(f.Karakas, chart.KarakaFact{
			Code:     chart.AllKarakas()[i],
			Planet:   assignees[idx],
			Strength: 0.3 + rng.Float64()*0.7,
		})
	}

	RebuildHouses(f)
	return f
}

// planetFact builds a consistent rashi placement: longitude, dignity, and
// nakshatra all derived from sign and degree. House is filled in by
// RebuildHouses.
func planetFact(name chart.Planet, sign chart.Sign, degree float64, retrograde bool) chart.PlanetFact {
	ref := astro.Std()
	lon := float64(sign-1)*30 + degree
	return chart.PlanetFact{
		Name:       name,
		Sign:       sign,
		Degree:     degree,
		Longitude:  lon,
		Dignity:    ref.DignityAt(name, sign, degree),
		Retrograde: retrograde,
		Nakshatra:  ref.NakshatraOf(lon),
	}
}

func vargaChart(code chart.VargaCode, ascendant chart.Sign, placements map[chart.Planet]chart.Sign) chart.VargaChart {
	ref := astro.Std()
	v := chart.VargaChart{Code: code, Ascendant: ascendant}
	for _, name := range chart.AllPlanets() {
		sign, ok := placements[name]
		if !ok {
			continue
		}
		v.Planets = append(v.Planets, chart.PlanetFact{
			Name:      name,
			Sign:      sign,
			House:     chart.HouseFrom(ascendant, sign),
			Degree:    15,
			Longitude: float64(sign-1)*30 + 15,
			Dignity:   ref.DignityAt(name, sign, 15),
		})
	}
	return v
}

func randomVarga(rng *rand.Rand, code chart.VargaCode) chart.VargaChart {
	placements := make(map[chart.Planet]chart.Sign, len(chart.AllPlanets()))
	for _, name := range chart.AllPlanets() {
		placements[name] = chart.Sign(rng.Intn(12) + 1)
	}
	return vargaChart(code, chart.Sign(rng.Intn(12)+1), placements)
}
