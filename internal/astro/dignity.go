package astro

import "grahabala/pkg/contracts/chart"

// degreePoint is a sign plus the exact degree of deepest effect.
type degreePoint struct {
	Sign   chart.Sign
	Degree float64
}

// degreeZone is a degree range [Lo,Hi) within one sign.
type degreeZone struct {
	Sign chart.Sign
	Lo   float64
	Hi   float64
}

// Exaltation and debilitation positions. Node degrees are zero: the nodes
// have sign-level dignity only, so degree-proximity rules skip them.
var (
	exaltations = map[chart.Planet]degreePoint{
		chart.PlanetSun:     {chart.SignAries, 10},
		chart.PlanetMoon:    {chart.SignTaurus, 3},
		chart.PlanetMars:    {chart.SignCapricorn, 28},
		chart.PlanetMercury: {chart.SignVirgo, 15},
		chart.PlanetJupiter: {chart.SignCancer, 5},
		chart.PlanetVenus:   {chart.SignPisces, 27},
		chart.PlanetSaturn:  {chart.SignLibra, 20},
		chart.PlanetRahu:    {chart.SignTaurus, 0},
		chart.PlanetKetu:    {chart.SignScorpio, 0},
	}

	debilitations = map[chart.Planet]degreePoint{
		chart.PlanetSun:     {chart.SignLibra, 10},
		chart.PlanetMoon:    {chart.SignScorpio, 3},
		chart.PlanetMars:    {chart.SignCancer, 28},
		chart.PlanetMercury: {chart.SignPisces, 15},
		chart.PlanetJupiter: {chart.SignCapricorn, 5},
		chart.PlanetVenus:   {chart.SignVirgo, 27},
		chart.PlanetSaturn:  {chart.SignAries, 20},
		chart.PlanetRahu:    {chart.SignScorpio, 0},
		chart.PlanetKetu:    {chart.SignTaurus, 0},
	}

	moolatrikonas = map[chart.Planet]degreeZone{
		chart.PlanetSun:     {chart.SignLeo, 0, 20},
		chart.PlanetMoon:    {chart.SignTaurus, 3, 30},
		chart.PlanetMars:    {chart.SignAries, 0, 12},
		chart.PlanetMercury: {chart.SignVirgo, 15, 20},
		chart.PlanetJupiter: {chart.SignSagittarius, 0, 10},
		chart.PlanetVenus:   {chart.SignLibra, 0, 15},
		chart.PlanetSaturn:  {chart.SignAquarius, 0, 20},
	}

	ownSigns = map[chart.Planet][]chart.Sign{
		chart.PlanetSun:     {chart.SignLeo},
		chart.PlanetMoon:    {chart.SignCancer},
		chart.PlanetMars:    {chart.SignAries, chart.SignScorpio},
		chart.PlanetMercury: {chart.SignGemini, chart.SignVirgo},
		chart.PlanetJupiter: {chart.SignSagittarius, chart.SignPisces},
		chart.PlanetVenus:   {chart.SignTaurus, chart.SignLibra},
		chart.PlanetSaturn:  {chart.SignCapricorn, chart.SignAquarius},
	}
)

// Relation is the naisargika relationship between two planets.
type Relation string

const (
	RelationFriend  Relation = "friend"
	RelationNeutral Relation = "neutral"
	RelationEnemy   Relation = "enemy"
)

type relationRow struct {
	Friends []chart.Planet
	Enemies []chart.Planet
}

// Naisargika friendships per classical doctrine; node rows follow the
// common simplified scheme.
var relations = map[chart.Planet]relationRow{
	chart.PlanetSun: {
		Friends: []chart.Planet{chart.PlanetMoon, chart.PlanetMars, chart.PlanetJupiter},
		Enemies: []chart.Planet{chart.PlanetVenus, chart.PlanetSaturn},
	},
	chart.PlanetMoon: {
		Friends: []chart.Planet{chart.PlanetSun, chart.PlanetMercury},
	},
	chart.PlanetMars: {
		Friends: []chart.Planet{chart.PlanetSun, chart.PlanetMoon, chart.PlanetJupiter},
		Enemies: []chart.Planet{chart.PlanetMercury},
	},
	chart.PlanetMercury: {
		Friends: []chart.Planet{chart.PlanetSun, chart.PlanetVenus},
		Enemies: []chart.Planet{chart.PlanetMoon},
	},
	chart.PlanetJupiter: {
		Friends: []chart.Planet{chart.PlanetSun, chart.PlanetMoon, chart.PlanetMars},
		Enemies: []chart.Planet{chart.PlanetMercury, chart.PlanetVenus},
	},
	chart.PlanetVenus: {
		Friends: []chart.Planet{chart.PlanetMercury, chart.PlanetSaturn},
		Enemies: []chart.Planet{chart.PlanetSun, chart.PlanetMoon},
	},
	chart.PlanetSaturn: {
		Friends: []chart.Planet{chart.PlanetMercury, chart.PlanetVenus},
		Enemies: []chart.Planet{chart.PlanetSun, chart.PlanetMoon, chart.PlanetMars},
	},
	chart.PlanetRahu: {
		Friends: []chart.Planet{chart.PlanetMercury, chart.PlanetVenus, chart.PlanetSaturn},
		Enemies: []chart.Planet{chart.PlanetSun, chart.PlanetMoon, chart.PlanetMars},
	},
	chart.PlanetKetu: {
		Friends: []chart.Planet{chart.PlanetMars, chart.PlanetVenus, chart.PlanetSaturn},
		Enemies: []chart.Planet{chart.PlanetSun, chart.PlanetMoon},
	},
}

var (
	naturalBenefics = []chart.Planet{
		chart.PlanetJupiter, chart.PlanetVenus, chart.PlanetMercury, chart.PlanetMoon,
	}
	naturalMalefics = []chart.Planet{
		chart.PlanetSun, chart.PlanetMars, chart.PlanetSaturn, chart.PlanetRahu, chart.PlanetKetu,
	}
)

// ExaltationPoint returns the exaltation sign and deep degree of a planet.
func (r *Reference) ExaltationPoint(p chart.Planet) (chart.Sign, float64, bool) {
	pt, ok := exaltations[p]
	return pt.Sign, pt.Degree, ok
}

// DebilitationPoint returns the debilitation sign and deep degree.
func (r *Reference) DebilitationPoint(p chart.Planet) (chart.Sign, float64, bool) {
	pt, ok := debilitations[p]
	return pt.Sign, pt.Degree, ok
}

// IsDebilitated reports whether the planet occupies its debilitation sign.
func (r *Reference) IsDebilitated(p chart.Planet, s chart.Sign) bool {
	pt, ok := debilitations[p]
	return ok && pt.Sign == s
}

// IsExalted reports whether the planet occupies its exaltation sign.
func (r *Reference) IsExalted(p chart.Planet, s chart.Sign) bool {
	pt, ok := exaltations[p]
	return ok && pt.Sign == s
}

// IsOwnSign reports whether the planet rules the sign.
func (r *Reference) IsOwnSign(p chart.Planet, s chart.Sign) bool {
	for _, own := range ownSigns[p] {
		if own == s {
			return true
		}
	}
	return false
}

// Relation returns the naisargika relation of p toward other.
func (r *Reference) Relation(p, other chart.Planet) Relation {
	row, ok := relations[p]
	if !ok {
		return RelationNeutral
	}
	for _, f := range row.Friends {
		if f == other {
			return RelationFriend
		}
	}
	for _, e := range row.Enemies {
		if e == other {
			return RelationEnemy
		}
	}
	return RelationNeutral
}

// IsBenefic reports whether the planet is a natural benefic.
func (r *Reference) IsBenefic(p chart.Planet) bool {
	for _, b := range naturalBenefics {
		if b == p {
			return true
		}
	}
	return false
}

// IsMalefic reports whether the planet is a natural malefic.
func (r *Reference) IsMalefic(p chart.Planet) bool {
	for _, m := range naturalMalefics {
		if m == p {
			return true
		}
	}
	return false
}

// DignityAt resolves the dignity of a planet at a degree within a sign.
// Precedence: debilitation, exaltation, moolatrikona zone, own sign, then
// the relation toward the sign lord.
func (r *Reference) DignityAt(p chart.Planet, s chart.Sign, degree float64) chart.Dignity {
	if !p.IsValid() || !s.IsValid() {
		return chart.DignityNeutral
	}
	if r.IsDebilitated(p, s) {
		return chart.DignityDebilitated
	}
	if r.IsExalted(p, s) {
		return chart.DignityExalted
	}
	if mt, ok := moolatrikonas[p]; ok && mt.Sign == s && degree >= mt.Lo && degree < mt.Hi {
		return chart.DignityMoolatrikona
	}
	if r.IsOwnSign(p, s) {
		return chart.DignityOwn
	}
	lord, ok := signLords[s]
	if !ok {
		return chart.DignityNeutral
	}
	switch r.Relation(p, lord) {
	case RelationFriend:
		return chart.DignityFriend
	case RelationEnemy:
		return chart.DignityEnemy
	default:
		return chart.DignityNeutral
	}
}
