package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grahabala/pkg/contracts/chart"
)

func TestSignLordCoverage(t *testing.T) {
	ref := NewReference()
	for s := chart.SignAries; s <= chart.SignPisces; s++ {
		lord, ok := ref.SignLord(s)
		require.True(t, ok, "sign %s must have a lord", s)
		assert.True(t, lord.IsValid())
		assert.False(t, lord.IsNode(), "nodes rule no sign")
	}
	_, ok := ref.SignLord(chart.Sign(0))
	assert.False(t, ok)
}

func TestElementAndModalityCycles(t *testing.T) {
	ref := Std()
	assert.Equal(t, ElementFire, ref.ElementOf(chart.SignAries))
	assert.Equal(t, ElementEarth, ref.ElementOf(chart.SignTaurus))
	assert.Equal(t, ElementAir, ref.ElementOf(chart.SignGemini))
	assert.Equal(t, ElementWater, ref.ElementOf(chart.SignCancer))
	assert.Equal(t, ElementFire, ref.ElementOf(chart.SignLeo))
	assert.Equal(t, ElementWater, ref.ElementOf(chart.SignPisces))

	assert.Equal(t, ModalityMovable, ref.ModalityOf(chart.SignAries))
	assert.Equal(t, ModalityFixed, ref.ModalityOf(chart.SignTaurus))
	assert.Equal(t, ModalityDual, ref.ModalityOf(chart.SignGemini))
	assert.Equal(t, ModalityMovable, ref.ModalityOf(chart.SignCapricorn))
}

func TestDignityAt(t *testing.T) {
	ref := Std()
	tests := []struct {
		name   string
		planet chart.Planet
		sign   chart.Sign
		degree float64
		want   chart.Dignity
	}{
		{"Sun exalted in Aries", chart.PlanetSun, chart.SignAries, 10, chart.DignityExalted},
		{"Sun debilitated in Libra", chart.PlanetSun, chart.SignLibra, 10, chart.DignityDebilitated},
		{"Sun moolatrikona in early Leo", chart.PlanetSun, chart.SignLeo, 5, chart.DignityMoolatrikona},
		{"Sun own sign in late Leo", chart.PlanetSun, chart.SignLeo, 25, chart.DignityOwn},
		{"Moon friend in Gemini", chart.PlanetMoon, chart.SignGemini, 10, chart.DignityFriend},
		{"Saturn enemy in Scorpio", chart.PlanetSaturn, chart.SignScorpio, 10, chart.DignityEnemy},
		{"Jupiter debilitated in Capricorn", chart.PlanetJupiter, chart.SignCapricorn, 5, chart.DignityDebilitated},
		{"Mars moolatrikona in early Aries", chart.PlanetMars, chart.SignAries, 5, chart.DignityMoolatrikona},
		{"Mars own in late Aries", chart.PlanetMars, chart.SignAries, 20, chart.DignityOwn},
		{"Rahu exalted in Taurus", chart.PlanetRahu, chart.SignTaurus, 15, chart.DignityExalted},
		{"Ketu debilitated in Taurus", chart.PlanetKetu, chart.SignTaurus, 15, chart.DignityDebilitated},
		{"Mercury neutral in Aries", chart.PlanetMercury, chart.SignAries, 10, chart.DignityNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ref.DignityAt(tt.planet, tt.sign, tt.degree))
		})
	}
}

func TestDignityAtInvalidInputs(t *testing.T) {
	ref := Std()
	assert.Equal(t, chart.DignityNeutral, ref.DignityAt(chart.Planet("Pluto"), chart.SignAries, 0))
	assert.Equal(t, chart.DignityNeutral, ref.DignityAt(chart.PlanetSun, chart.Sign(0), 0))
}

func TestRelationSymmetryKnownCases(t *testing.T) {
	ref := Std()
	// The classical matrix is not symmetric: Moon counts nobody an enemy,
	// yet Mercury counts the Moon one.
	assert.Equal(t, RelationFriend, ref.Relation(chart.PlanetMoon, chart.PlanetMercury))
	assert.Equal(t, RelationEnemy, ref.Relation(chart.PlanetMercury, chart.PlanetMoon))
	assert.Equal(t, RelationFriend, ref.Relation(chart.PlanetSun, chart.PlanetJupiter))
	assert.Equal(t, RelationEnemy, ref.Relation(chart.PlanetSaturn, chart.PlanetMars))
	assert.Equal(t, RelationNeutral, ref.Relation(chart.PlanetSun, chart.PlanetMercury))
}

func TestBeneficMaleficPartition(t *testing.T) {
	ref := Std()
	benefics, malefics := 0, 0
	for _, p := range chart.AllPlanets() {
		if ref.IsBenefic(p) {
			benefics++
		}
		if ref.IsMalefic(p) {
			malefics++
		}
		assert.False(t, ref.IsBenefic(p) && ref.IsMalefic(p), "%s cannot be both", p)
	}
	assert.Equal(t, 4, benefics)
	assert.Equal(t, 5, malefics)
}

func TestAspects(t *testing.T) {
	ref := Std()
	// Every planet casts the 7th.
	for _, p := range chart.AllPlanets() {
		assert.True(t, ref.Aspects(p, 1, 7), "%s must aspect the 7th", p)
	}
	// Special patterns.
	assert.True(t, ref.Aspects(chart.PlanetMars, 1, 4))
	assert.True(t, ref.Aspects(chart.PlanetMars, 1, 8))
	assert.False(t, ref.Aspects(chart.PlanetMars, 1, 5))
	assert.True(t, ref.Aspects(chart.PlanetJupiter, 1, 5))
	assert.True(t, ref.Aspects(chart.PlanetJupiter, 1, 9))
	assert.True(t, ref.Aspects(chart.PlanetSaturn, 1, 3))
	assert.True(t, ref.Aspects(chart.PlanetSaturn, 1, 10))
	assert.False(t, ref.Aspects(chart.PlanetSun, 1, 5))
	// Wrap-around: Saturn in 11 casts its 3rd onto house 1.
	assert.True(t, ref.Aspects(chart.PlanetSaturn, 11, 1))
	// Node pattern.
	assert.True(t, ref.Aspects(chart.PlanetRahu, 2, 6))
	assert.True(t, ref.Aspects(chart.PlanetRahu, 2, 10))
	// Bounds.
	assert.False(t, ref.Aspects(chart.PlanetSun, 0, 7))
	assert.False(t, ref.Aspects(chart.PlanetSun, 1, 13))
}

func TestHousesAspectedBy(t *testing.T) {
	ref := Std()
	houses := ref.HousesAspectedBy(chart.PlanetJupiter, 1)
	assert.ElementsMatch(t, []int{5, 7, 9}, houses)
	houses = ref.HousesAspectedBy(chart.PlanetSaturn, 12)
	assert.ElementsMatch(t, []int{2, 6, 9}, houses)
	assert.Nil(t, ref.HousesAspectedBy(chart.PlanetSun, 0))
}

func TestHouseGroups(t *testing.T) {
	ref := Std()
	assert.True(t, ref.IsKendra(1))
	assert.True(t, ref.IsTrikona(1))
	assert.True(t, ref.IsKendra(10))
	assert.True(t, ref.IsTrikona(9))
	assert.True(t, ref.IsDusthana(8))
	assert.True(t, ref.IsUpachaya(11))
	assert.True(t, ref.IsDusthana(6))
	assert.True(t, ref.IsUpachaya(6), "house 6 is both dusthana and upachaya")
	assert.False(t, ref.IsKendra(2))
	assert.Len(t, ref.KendraHouses(), 4)
}

func TestBadhakaHouse(t *testing.T) {
	ref := Std()
	assert.Equal(t, 11, ref.BadhakaHouse(chart.SignAries), "movable ascendant")
	assert.Equal(t, 9, ref.BadhakaHouse(chart.SignTaurus), "fixed ascendant")
	assert.Equal(t, 7, ref.BadhakaHouse(chart.SignGemini), "dual ascendant")
	assert.Equal(t, 0, ref.BadhakaHouse(chart.Sign(0)))
}

func TestDigBala(t *testing.T) {
	ref := Std()
	tests := []struct {
		planet   chart.Planet
		house    int
		opposite int
	}{
		{chart.PlanetJupiter, 1, 7},
		{chart.PlanetMercury, 1, 7},
		{chart.PlanetMoon, 4, 10},
		{chart.PlanetVenus, 4, 10},
		{chart.PlanetSaturn, 7, 1},
		{chart.PlanetSun, 10, 4},
		{chart.PlanetMars, 10, 4},
	}
	for _, tt := range tests {
		h, ok := ref.DigBalaHouse(tt.planet)
		require.True(t, ok)
		assert.Equal(t, tt.house, h, "%s dig bala house", tt.planet)
		o, ok := ref.DigBalaOppositeHouse(tt.planet)
		require.True(t, ok)
		assert.Equal(t, tt.opposite, o, "%s weakest house", tt.planet)
	}
	_, ok := ref.DigBalaHouse(chart.PlanetRahu)
	assert.False(t, ok)
}

func TestNakshatra(t *testing.T) {
	ref := Std()
	assert.Equal(t, 1, ref.NakshatraOf(0))
	assert.Equal(t, 1, ref.NakshatraOf(13.2))
	assert.Equal(t, 2, ref.NakshatraOf(13.4))
	assert.Equal(t, 27, ref.NakshatraOf(359.9))
	assert.Equal(t, "Ashwini", ref.NakshatraName(1))
	assert.Equal(t, "Revati", ref.NakshatraName(27))
	assert.Equal(t, "Unknown", ref.NakshatraName(0))

	// Vimshottari cycle: Ketu rules 1, 10, 19; Mercury rules 9, 18, 27.
	for _, n := range []int{1, 10, 19} {
		lord, ok := ref.NakshatraLord(n)
		require.True(t, ok)
		assert.Equal(t, chart.PlanetKetu, lord)
	}
	for _, n := range []int{9, 18, 27} {
		lord, ok := ref.NakshatraLord(n)
		require.True(t, ok)
		assert.Equal(t, chart.PlanetMercury, lord)
	}
	_, ok := ref.NakshatraLord(28)
	assert.False(t, ok)
}

func TestTaraCycle(t *testing.T) {
	ref := Std()
	tara, ok := ref.TaraOf(5, 5)
	require.True(t, ok)
	assert.Equal(t, TaraJanma, tara)

	tara, _ = ref.TaraOf(5, 6)
	assert.Equal(t, TaraSampat, tara)

	tara, _ = ref.TaraOf(5, 11)
	assert.Equal(t, TaraNaidhana, tara)

	// The cycle repeats every nine mansions.
	tara, _ = ref.TaraOf(5, 14)
	assert.Equal(t, TaraJanma, tara)

	// Wrap-around counting.
	tara, _ = ref.TaraOf(27, 1)
	assert.Equal(t, TaraSampat, tara)

	_, ok = ref.TaraOf(0, 5)
	assert.False(t, ok)
}

func TestCombustionOrbs(t *testing.T) {
	ref := Std()
	orb, ok := ref.CombustionOrb(chart.PlanetVenus)
	require.True(t, ok)
	assert.InDelta(t, 9.0, orb, 1e-9)
	_, ok = ref.CombustionOrb(chart.PlanetRahu)
	assert.False(t, ok, "nodes are never combust")
	_, ok = ref.CombustionOrb(chart.PlanetSun)
	assert.False(t, ok, "the Sun cannot combust itself")
}

func TestAngularDistance(t *testing.T) {
	assert.InDelta(t, 10.0, AngularDistance(5, 355), 1e-9)
	assert.InDelta(t, 180.0, AngularDistance(0, 180), 1e-9)
	assert.InDelta(t, 0.0, AngularDistance(90, 90), 1e-9)
}

func TestGandanta(t *testing.T) {
	ref := Std()
	assert.True(t, ref.InGandanta(359), "late Pisces")
	assert.True(t, ref.InGandanta(1), "early Aries")
	assert.True(t, ref.InGandanta(118), "late Cancer")
	assert.True(t, ref.InGandanta(241), "early Sagittarius")
	assert.False(t, ref.InGandanta(45))
	assert.False(t, ref.InGandanta(125))
}

func TestPushkara(t *testing.T) {
	ref := Std()
	d, ok := ref.PushkaraBhaga(chart.SignAries)
	require.True(t, ok)
	assert.InDelta(t, 21.0, d, 1e-9)
	assert.True(t, ref.IsPushkaraBhaga(chart.SignAries, 21.5, 1))
	assert.False(t, ref.IsPushkaraBhaga(chart.SignAries, 25, 1))

	// Aries is fire: navamshas 7 and 9 are auspicious.
	assert.Equal(t, 7, ref.NavamshaIndex(21.0))
	assert.True(t, ref.IsPushkaraNavamsha(chart.SignAries, 21.0))
	assert.False(t, ref.IsPushkaraNavamsha(chart.SignAries, 1.0))
	// Cancer is water: navamsha 1 qualifies.
	assert.True(t, ref.IsPushkaraNavamsha(chart.SignCancer, 1.0))
}

func TestSignificators(t *testing.T) {
	ref := Std()
	for h := 1; h <= 12; h++ {
		p, ok := ref.NaturalSignificator(h)
		require.True(t, ok, "house %d needs a significator", h)
		assert.True(t, p.IsValid())
	}
	p, _ := ref.NaturalSignificator(10)
	assert.Equal(t, chart.PlanetSun, p)

	for _, code := range chart.AllKarakas() {
		h, ok := ref.KarakaThemeHouse(code)
		require.True(t, ok)
		assert.GreaterOrEqual(t, h, 1)
		assert.LessOrEqual(t, h, 12)
	}
	h, _ := ref.KarakaThemeHouse(chart.KarakaAmatya)
	assert.Equal(t, 10, h)
}

func TestVargaImportanceSumsToOne(t *testing.T) {
	ref := Std()
	total := 0.0
	for _, code := range chart.DivisionalVargas() {
		w := ref.VargaImportance(code)
		assert.Greater(t, w, 0.0, "importance of %s", code)
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Zero(t, ref.VargaImportance(chart.VargaD1), "the base chart has no multi-chart weight")
}
