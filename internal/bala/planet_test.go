package bala

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grahabala/internal/shared/testutil"
	"grahabala/pkg/contracts/chart"
)

// assertPlanetRaws checks one layer's raw output for all nine planets.
// Planets missing from want are expected at zero.
func assertPlanetRaws(t *testing.T, res *PlanetLayerResult, want map[chart.Planet]float64) {
	t.Helper()
	for _, p := range chart.AllPlanets() {
		assert.InDelta(t, want[p], res.Raw(p), 0.001, "planet %s", p)
	}
}

func planetReasons(res *PlanetLayerResult, p chart.Planet) string {
	return strings.Join(res.Reasons(p), "; ")
}

func TestEvalPlanetDignity(t *testing.T) {
	in := scoringInput(t, testutil.BaselineChart())
	res := evalPlanetDignity(in)

	assertPlanetRaws(t, res, map[chart.Planet]float64{
		chart.PlanetSun:     10,
		chart.PlanetMoon:    15,
		chart.PlanetMars:    15,
		chart.PlanetMercury: 18,
		chart.PlanetJupiter: 8,
		chart.PlanetVenus:   10,
		chart.PlanetSaturn:  8,
		chart.PlanetRahu:    4,
		chart.PlanetKetu:    0,
	})

	assert.Contains(t, planetReasons(res, chart.PlanetSun), "in moolatrikona")
	assert.Contains(t, planetReasons(res, chart.PlanetMoon), "exalted in Taurus")
	assert.Contains(t, planetReasons(res, chart.PlanetJupiter), "own sign Sagittarius")
	assert.Empty(t, res.Reasons(chart.PlanetRahu), "friendly sign carries no reason")
	assert.Empty(t, res.Reasons(chart.PlanetKetu))
}

func TestEvalPlanetDignityDeepExaltation(t *testing.T) {
	f := testutil.NewChart(testutil.WithPlanet(chart.PlanetMars, chart.SignCapricorn, 28, true))
	in := scoringInput(t, f)
	res := evalPlanetDignity(in)

	// Exalted 15, on the exact degree +5, retrograde +2.
	assert.InDelta(t, 22, res.Raw(chart.PlanetMars), 0.001)
	assert.Contains(t, planetReasons(res, chart.PlanetMars), "exalted in Capricorn")
	assert.Contains(t, planetReasons(res, chart.PlanetMars), "retrograde")
}

func TestEvalPlanetDignityCancelledDebilitation(t *testing.T) {
	f := testutil.NewChart(testutil.WithPlanet(chart.PlanetVenus, chart.SignVirgo, 26, false))
	in := scoringInput(t, f)
	res := evalPlanetDignity(in)

	// Debilitated -12, near the deep degree -5, five rules satisfied +4.
	assert.InDelta(t, -13, res.Raw(chart.PlanetVenus), 0.001)
	assert.Contains(t, planetReasons(res, chart.PlanetVenus), "debilitated in Virgo")
	assert.Contains(t, planetReasons(res, chart.PlanetVenus), "5 cancellation rules satisfied")
	assert.Contains(t, planetReasons(res, chart.PlanetVenus), "neecha bhanga raja yoga")
}

func TestEvalPlanetHouse(t *testing.T) {
	in := scoringInput(t, testutil.BaselineChart())
	res := evalPlanetHouse(in)

	assertPlanetRaws(t, res, map[chart.Planet]float64{
		chart.PlanetSun:     7,
		chart.PlanetMoon:    0,
		chart.PlanetMars:    11,
		chart.PlanetMercury: -6,
		chart.PlanetJupiter: 7,
		chart.PlanetVenus:   4,
		chart.PlanetSaturn:  -3,
		chart.PlanetRahu:    2,
		chart.PlanetKetu:    5,
	})

	assert.Contains(t, planetReasons(res, chart.PlanetSun), "in a trikona")
	assert.Contains(t, planetReasons(res, chart.PlanetMars), "in a kendra")
	assert.Contains(t, planetReasons(res, chart.PlanetMars), "dig bala")
	assert.Contains(t, planetReasons(res, chart.PlanetMars), "functional benefic")
	assert.Contains(t, planetReasons(res, chart.PlanetMercury), "in a dusthana")
	assert.Contains(t, planetReasons(res, chart.PlanetMercury), "functional malefic lordship")
	assert.Contains(t, planetReasons(res, chart.PlanetSaturn), "occupies the badhaka house")
	assert.Empty(t, res.Reasons(chart.PlanetMoon))
	assert.Empty(t, res.Reasons(chart.PlanetRahu), "upachaya carries no reason")
}

func TestEvalPlanetHouseLagnaAndYogakaraka(t *testing.T) {
	t.Run("lagna", func(t *testing.T) {
		f := testutil.NewChart(testutil.WithPlanet(chart.PlanetSun, chart.SignAries, 10, false))
		in := scoringInput(t, f)
		res := evalPlanetHouse(in)

		// Lagna 6, trikona 5, trikona lordship 2.
		assert.InDelta(t, 13, res.Raw(chart.PlanetSun), 0.001)
		assert.Contains(t, planetReasons(res, chart.PlanetSun), "occupies the lagna")
	})

	t.Run("yogakaraka", func(t *testing.T) {
		// For a Taurus lagna Saturn owns the ninth and the tenth.
		f := testutil.NewChart(testutil.WithAscendant(chart.SignTaurus, 15))
		in := scoringInput(t, f)
		res := evalPlanetHouse(in)

		// Kendra 4, upachaya 2, yogakaraka 4.
		assert.InDelta(t, 10, res.Raw(chart.PlanetSaturn), 0.001)
		assert.Contains(t, planetReasons(res, chart.PlanetSaturn), "yogakaraka for the lagna")
	})
}

func TestEvalPlanetAspect(t *testing.T) {
	in := scoringInput(t, testutil.BaselineChart())
	res := evalPlanetAspect(in)

	assertPlanetRaws(t, res, map[chart.Planet]float64{
		chart.PlanetSun:     -6.5,
		chart.PlanetMoon:    0,
		chart.PlanetMars:    -3,
		chart.PlanetMercury: 0,
		chart.PlanetJupiter: -3,
		chart.PlanetVenus:   -1.5,
		chart.PlanetSaturn:  -3.5,
		chart.PlanetRahu:    1.5,
		chart.PlanetKetu:    0,
	})

	assert.Contains(t, planetReasons(res, chart.PlanetSun), "malefic aspect from Saturn")
	assert.Contains(t, planetReasons(res, chart.PlanetSun), "malefic aspect from Mars")
	assert.Contains(t, planetReasons(res, chart.PlanetSun), "node affliction from Ketu")
	assert.Contains(t, planetReasons(res, chart.PlanetMars), "hemmed by malefics (papa kartari)")
	assert.Contains(t, planetReasons(res, chart.PlanetJupiter), "conjunct malefic Ketu")
	assert.Contains(t, planetReasons(res, chart.PlanetKetu), "conjunct benefic Jupiter")
	assert.Contains(t, planetReasons(res, chart.PlanetRahu), "benefic aspect from Jupiter")
	assert.Empty(t, res.Reasons(chart.PlanetMoon))
}

func TestEvalPlanetShadbala(t *testing.T) {
	in := scoringInput(t, testutil.BaselineChart())
	res := evalPlanetShadbala(in)

	// Night birth: the Sun sits in the fifth house.
	assertPlanetRaws(t, res, map[chart.Planet]float64{
		chart.PlanetSun:     7.5,
		chart.PlanetMoon:    10.1,
		chart.PlanetMars:    8.4,
		chart.PlanetMercury: 8.8,
		chart.PlanetJupiter: 5.7,
		chart.PlanetVenus:   6.6,
		chart.PlanetSaturn:  6.9,
		chart.PlanetRahu:    4.85,
		chart.PlanetKetu:    3.85,
	})

	for _, p := range chart.AllPlanets() {
		assert.Empty(t, res.Reasons(p), "shadbala is reported without reasons")
	}
}

func TestEvalPlanetShadbalaDayBirth(t *testing.T) {
	f := testutil.NewChart(testutil.WithPlanet(chart.PlanetSun, chart.SignAquarius, 10, false))
	in := scoringInput(t, f)
	res := evalPlanetShadbala(in)

	assert.InDelta(t, 6.5, res.Raw(chart.PlanetSun), 0.001, "Sun gains the day bonus in an enemy sign")
	assert.InDelta(t, 7.6, res.Raw(chart.PlanetMoon), 0.001, "Moon loses the night bonus")
	assert.InDelta(t, 4.4, res.Raw(chart.PlanetSaturn), 0.001)
	assert.InDelta(t, 8.8, res.Raw(chart.PlanetMercury), 0.001, "Mercury is strong at all hours")
}

func TestEvalPlanetNavamsha(t *testing.T) {
	in := scoringInput(t, testutil.BaselineChart())
	res := evalPlanetNavamsha(in)

	assertPlanetRaws(t, res, map[chart.Planet]float64{
		chart.PlanetSun:     6,
		chart.PlanetMoon:    4,
		chart.PlanetMars:    4,
		chart.PlanetMercury: 5,
		chart.PlanetJupiter: 9,
		chart.PlanetVenus:   6,
		chart.PlanetSaturn:  6,
		chart.PlanetRahu:    2,
		chart.PlanetKetu:    0,
	})

	assert.Contains(t, planetReasons(res, chart.PlanetSun), "exalted in navamsha")
	assert.Contains(t, planetReasons(res, chart.PlanetJupiter), "vargottama")
	assert.Contains(t, planetReasons(res, chart.PlanetJupiter), "own navamsha")
	assert.Contains(t, planetReasons(res, chart.PlanetMercury), "pushkara bhaga")
	assert.Contains(t, planetReasons(res, chart.PlanetSaturn), "pushkara navamsha")
}

func TestEvalPlanetNavamshaMissingChart(t *testing.T) {
	f := testutil.NewChart(testutil.WithoutVargas())
	in := scoringInput(t, f)
	res := evalPlanetNavamsha(in)

	assertPlanetRaws(t, res, map[chart.Planet]float64{})
	for _, p := range chart.AllPlanets() {
		assert.Empty(t, res.Reasons(p))
	}
}

func TestEvalPlanetVarga(t *testing.T) {
	in := scoringInput(t, testutil.BaselineChart())
	res := evalPlanetVarga(in)

	assertPlanetRaws(t, res, map[chart.Planet]float64{
		chart.PlanetSun:     2.0,
		chart.PlanetMoon:    4.4,
		chart.PlanetMars:    4.0,
		chart.PlanetMercury: 4.4,
		chart.PlanetJupiter: 4.0,
		chart.PlanetVenus:   4.6,
		chart.PlanetSaturn:  4.0,
		chart.PlanetRahu:    2.0,
		chart.PlanetKetu:    0,
	})

	assert.Contains(t, planetReasons(res, chart.PlanetSun), "exalted in D9")
	assert.Contains(t, planetReasons(res, chart.PlanetSaturn), "own sign in D9")
	assert.Contains(t, planetReasons(res, chart.PlanetSaturn), "own sign in D10")
}

func TestEvalPlanetYoga(t *testing.T) {
	in := scoringInput(t, testutil.BaselineChart())
	res := evalPlanetYoga(in)

	assertPlanetRaws(t, res, map[chart.Planet]float64{
		chart.PlanetSun:     1.625,
		chart.PlanetMoon:    4.0,
		chart.PlanetMars:    -0.875,
		chart.PlanetMercury: 1.625,
		chart.PlanetJupiter: 4.0,
	})

	assert.Contains(t, planetReasons(res, chart.PlanetMoon), "Gaja Kesari (+4.0)")
	assert.Contains(t, planetReasons(res, chart.PlanetMars), "Kuja Dosha (-0.9)")
}

func TestEvalPlanetYogaRajaBonus(t *testing.T) {
	f := testutil.NewChart(testutil.WithPlanet(chart.PlanetVenus, chart.SignVirgo, 26, false))
	in := scoringInput(t, f)
	res := evalPlanetYoga(in)

	assert.InDelta(t, 2.0, res.Raw(chart.PlanetVenus), 0.001)
	assert.Contains(t, planetReasons(res, chart.PlanetVenus), "neecha bhanga raja yoga")
}

func TestEvalPlanetSpecial(t *testing.T) {
	in := scoringInput(t, testutil.BaselineChart())
	res := evalPlanetSpecial(in)

	assertPlanetRaws(t, res, map[chart.Planet]float64{
		chart.PlanetMoon:    2,
		chart.PlanetMercury: 3,
		chart.PlanetSaturn:  2,
		chart.PlanetRahu:    2,
		chart.PlanetKetu:    2,
	})

	assert.Contains(t, planetReasons(res, chart.PlanetMoon), "own nakshatra")
	assert.Contains(t, planetReasons(res, chart.PlanetMercury), "pushkara bhaga")
	assert.Contains(t, planetReasons(res, chart.PlanetSaturn), "pushkara navamsha")
	assert.Contains(t, planetReasons(res, chart.PlanetRahu), "own nakshatra")
	assert.Contains(t, planetReasons(res, chart.PlanetKetu), "own nakshatra")
}

func TestEvalPlanetSpecialCombustion(t *testing.T) {
	t.Run("deep", func(t *testing.T) {
		f := testutil.NewChart(testutil.WithPlanet(chart.PlanetMercury, chart.SignLeo, 12, false))
		in := scoringInput(t, f)
		res := evalPlanetSpecial(in)

		assert.InDelta(t, -7, res.Raw(chart.PlanetMercury), 0.001)
		assert.Contains(t, planetReasons(res, chart.PlanetMercury), "deeply combust")
	})

	t.Run("within orb", func(t *testing.T) {
		f := testutil.NewChart(testutil.WithPlanet(chart.PlanetMercury, chart.SignLeo, 17, false))
		in := scoringInput(t, f)
		res := evalPlanetSpecial(in)

		assert.InDelta(t, -5, res.Raw(chart.PlanetMercury), 0.001)
		assert.Contains(t, planetReasons(res, chart.PlanetMercury), "combust")
	})
}

func TestEvalPlanetSpecialGrahaYuddha(t *testing.T) {
	f := testutil.NewChart(
		testutil.WithPlanet(chart.PlanetVenus, chart.SignLibra, 10, false),
		testutil.WithPlanet(chart.PlanetMercury, chart.SignLibra, 10.5, false),
	)
	in := scoringInput(t, f)
	res := evalPlanetSpecial(in)

	assert.InDelta(t, 2, res.Raw(chart.PlanetVenus), 0.001, "the brighter planet wins")
	assert.InDelta(t, -4, res.Raw(chart.PlanetMercury), 0.001)
	assert.Contains(t, planetReasons(res, chart.PlanetVenus), "wins graha yuddha")
	assert.Contains(t, planetReasons(res, chart.PlanetMercury), "loses planetary war to Venus")
}

func TestEvalPlanetAshtakavarga(t *testing.T) {
	in := scoringInput(t, testutil.BaselineChart())
	res := evalPlanetAshtakavarga(in)

	assertPlanetRaws(t, res, map[chart.Planet]float64{
		chart.PlanetSun:     5.5,
		chart.PlanetMoon:    0.5,
		chart.PlanetMars:    2.5,
		chart.PlanetMercury: 2.0,
		chart.PlanetJupiter: -4.5,
		chart.PlanetVenus:   -1.0,
		chart.PlanetSaturn:  -1.5,
		chart.PlanetRahu:    0.5,
		chart.PlanetKetu:    -2.5,
	})

	// Mid-range bindu counts and friendly kakshya rulers leave no reasons.
	assert.Empty(t, res.Reasons(chart.PlanetSun))
	assert.Empty(t, res.Reasons(chart.PlanetSaturn))
}

func TestEvalPlanetAshtakavargaKakshya(t *testing.T) {
	t.Run("own segment", func(t *testing.T) {
		f := testutil.NewChart(testutil.WithPlanet(chart.PlanetSaturn, chart.SignAquarius, 1, false))
		in := scoringInput(t, f)
		res := evalPlanetAshtakavarga(in)

		assert.InDelta(t, 2.0, res.Raw(chart.PlanetSaturn), 0.001)
		assert.Contains(t, planetReasons(res, chart.PlanetSaturn), "own kakshya")
	})

	t.Run("lagna segment", func(t *testing.T) {
		f := testutil.NewChart(testutil.WithPlanet(chart.PlanetSaturn, chart.SignAquarius, 28, false))
		in := scoringInput(t, f)
		res := evalPlanetAshtakavarga(in)

		assert.InDelta(t, 1.0, res.Raw(chart.PlanetSaturn), 0.001)
	})
}

func TestEvalPlanetKaraka(t *testing.T) {
	in := scoringInput(t, testutil.BaselineChart())
	res := evalPlanetKaraka(in)

	assertPlanetRaws(t, res, map[chart.Planet]float64{
		chart.PlanetSun:     1.166667,
		chart.PlanetMoon:    2.333333,
		chart.PlanetMars:    -1.416667,
		chart.PlanetMercury: 1.0,
		chart.PlanetJupiter: 1.25,
		chart.PlanetVenus:   -0.733333,
		chart.PlanetSaturn:  4.833333,
		chart.PlanetRahu:    -0.5,
		chart.PlanetKetu:    0,
	})

	assert.Contains(t, planetReasons(res, chart.PlanetSaturn), "AK chara karaka")
	assert.Contains(t, planetReasons(res, chart.PlanetMoon), "AmK chara karaka")
}

func TestEvalPlanetKarakaCompany(t *testing.T) {
	f := testutil.NewChart(testutil.WithKarakas(
		chart.KarakaFact{Code: chart.KarakaAtma, Planet: chart.PlanetJupiter, Strength: 1},
	))
	in := scoringInput(t, f)
	res := evalPlanetKaraka(in)

	assert.InDelta(t, 4.0, res.Raw(chart.PlanetJupiter), 0.001)
	assert.InDelta(t, 2.0, res.Raw(chart.PlanetKetu), 0.001, "shares the ninth with the atma karaka")
	assert.Contains(t, planetReasons(res, chart.PlanetKetu), "conjunct AK Jupiter")
}

// TestPlanetLayersStayInBounds runs the full registry over generated charts
// and checks the driver's clamping contract plus the calibrated score range.
func TestPlanetLayersStayInBounds(t *testing.T) {
	cal := newTestCalculator(t)
	registry := planetLayers()

	for seed := int64(1); seed <= 10; seed++ {
		facts := testutil.RandomChart(seed)
		in := cal.newInput(context.Background(), facts, cal.params)
		in.Cancellations = analyzeCancellations(in)

		results := evalPlanetLayers(in)
		require.Len(t, results, len(registry))
		for i, res := range results {
			b := registry[i].spec(cal.params.Planets).Bounds
			for _, p := range chart.AllPlanets() {
				raw := res.Raw(p)
				assert.GreaterOrEqual(t, raw, b.Min, "seed %d layer %s planet %s", seed, res.Layer, p)
				assert.LessOrEqual(t, raw, b.Max, "seed %d layer %s planet %s", seed, res.Layer, p)
			}
		}

		cards := combinePlanets(in, results)
		for name, card := range cards {
			assert.GreaterOrEqual(t, card.Score, cal.params.PlanetClamp.Min, "seed %d planet %s", seed, name)
			assert.LessOrEqual(t, card.Score, cal.params.PlanetClamp.Max, "seed %d planet %s", seed, name)
		}
	}
}
