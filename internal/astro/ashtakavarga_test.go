package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grahabala/pkg/contracts/chart"
)

// Classical row totals for the seven bhinnashtakavarga tables.
var ashtakavargaRowTotals = map[chart.Planet]int{
	chart.PlanetSun:     48,
	chart.PlanetMoon:    49,
	chart.PlanetMars:    39,
	chart.PlanetMercury: 54,
	chart.PlanetJupiter: 56,
	chart.PlanetVenus:   52,
	chart.PlanetSaturn:  39,
}

func TestAshtakavargaTableIntegrity(t *testing.T) {
	ref := Std()
	grand := 0
	for _, p := range ref.AshtakavargaPlanets() {
		table, ok := ashtakavargaTables[p]
		require.True(t, ok, "missing table for %s", p)

		total := len(table.FromLagna)
		require.Len(t, table.FromPlanet, 7, "%s must have seven planet contributors", p)
		for contributor, offsets := range table.FromPlanet {
			assert.False(t, contributor.IsNode(), "nodes contribute to no table")
			for _, o := range offsets {
				assert.GreaterOrEqual(t, o, 1)
				assert.LessOrEqual(t, o, 12)
			}
			total += len(offsets)
		}
		for _, o := range table.FromLagna {
			assert.GreaterOrEqual(t, o, 1)
			assert.LessOrEqual(t, o, 12)
		}
		assert.Equal(t, ashtakavargaRowTotals[p], total, "row total for %s", p)
		grand += total
	}
	assert.Equal(t, 337, grand, "classical grand total")
}

func TestBinduCount(t *testing.T) {
	ref := Std()

	// All seven contributors plus the ascendant in Aries: the Sun's table
	// contributes a bindu for every row containing offset 1 (Sun, Mars,
	// Saturn) and none from the ascendant (1 not in its lagna row).
	positions := map[chart.Planet]chart.Sign{}
	for _, p := range ref.AshtakavargaPlanets() {
		positions[p] = chart.SignAries
	}
	n, ok := ref.BinduCount(chart.PlanetSun, chart.SignAries, positions, chart.SignAries)
	require.True(t, ok)
	assert.Equal(t, 3, n)

	// Offset 3 from everything in Aries is Gemini: rows containing 3 are
	// Moon and Mercury, and the lagna row contains 3 as well.
	n, _ = ref.BinduCount(chart.PlanetSun, chart.SignGemini, positions, chart.SignAries)
	assert.Equal(t, 3, n)

	// Nodes own no table.
	_, ok = ref.BinduCount(chart.PlanetRahu, chart.SignAries, positions, chart.SignAries)
	assert.False(t, ok)

	// Missing contributors simply add nothing.
	n, ok = ref.BinduCount(chart.PlanetSun, chart.SignAries, map[chart.Planet]chart.Sign{}, chart.Sign(0))
	require.True(t, ok)
	assert.Zero(t, n)
}

func TestBinduCountBounds(t *testing.T) {
	ref := Std()
	positions := map[chart.Planet]chart.Sign{}
	for _, p := range ref.AshtakavargaPlanets() {
		positions[p] = chart.SignLeo
	}
	for _, p := range ref.AshtakavargaPlanets() {
		for s := chart.SignAries; s <= chart.SignPisces; s++ {
			n, ok := ref.BinduCount(p, s, positions, chart.SignLeo)
			require.True(t, ok)
			assert.GreaterOrEqual(t, n, 0)
			assert.LessOrEqual(t, n, 8)
		}
	}
}

func TestSarvaBinduTotal(t *testing.T) {
	ref := Std()
	positions := map[chart.Planet]chart.Sign{}
	for _, p := range ref.AshtakavargaPlanets() {
		positions[p] = chart.SignCapricorn
	}
	// Summing sarva bindu across all twelve signs must reproduce the grand
	// total: every table offset lands in exactly one sign.
	total := 0
	for s := chart.SignAries; s <= chart.SignPisces; s++ {
		total += ref.SarvaBindu(s, positions, chart.SignCapricorn)
	}
	assert.Equal(t, 337, total)
}

func TestKakshyaRuler(t *testing.T) {
	ref := Std()
	ruler, isLagna := ref.KakshyaRuler(0)
	assert.False(t, isLagna)
	assert.Equal(t, chart.PlanetSaturn, ruler)

	ruler, isLagna = ref.KakshyaRuler(3.75)
	assert.False(t, isLagna)
	assert.Equal(t, chart.PlanetJupiter, ruler)

	ruler, isLagna = ref.KakshyaRuler(25.0)
	assert.False(t, isLagna)
	assert.Equal(t, chart.PlanetMoon, ruler)

	_, isLagna = ref.KakshyaRuler(27.0)
	assert.True(t, isLagna, "eighth segment belongs to the ascendant")

	// Degrees outside [0,30) clamp to the boundary segments.
	ruler, _ = ref.KakshyaRuler(-1)
	assert.Equal(t, chart.PlanetSaturn, ruler)
	_, isLagna = ref.KakshyaRuler(31)
	assert.True(t, isLagna)
}
