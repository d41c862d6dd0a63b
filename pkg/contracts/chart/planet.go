package chart

// Planet identifies one of the nine grahas used throughout the engine.
type Planet string

const (
	PlanetSun     Planet = "Sun"
	PlanetMoon    Planet = "Moon"
	PlanetMars    Planet = "Mars"
	PlanetMercury Planet = "Mercury"
	PlanetJupiter Planet = "Jupiter"
	PlanetVenus   Planet = "Venus"
	PlanetSaturn  Planet = "Saturn"
	PlanetRahu    Planet = "Rahu"
	PlanetKetu    Planet = "Ketu"
)

// AllPlanets returns the nine grahas in canonical order. The order is
// load-bearing: result maps and reason lists are assembled by walking it.
func AllPlanets() []Planet {
	return []Planet{
		PlanetSun, PlanetMoon, PlanetMars, PlanetMercury, PlanetJupiter,
		PlanetVenus, PlanetSaturn, PlanetRahu, PlanetKetu,
	}
}

// IsValid reports whether the planet is one of the nine grahas.
func (p Planet) IsValid() bool {
	switch p {
	case PlanetSun, PlanetMoon, PlanetMars, PlanetMercury, PlanetJupiter,
		PlanetVenus, PlanetSaturn, PlanetRahu, PlanetKetu:
		return true
	}
	return false
}

// IsNode reports whether the planet is a lunar node (Rahu or Ketu).
func (p Planet) IsNode() bool {
	return p == PlanetRahu || p == PlanetKetu
}

// String returns the planet name.
func (p Planet) String() string {
	return string(p)
}

// Dignity classifies a planet's strength in the sign it occupies.
type Dignity string

const (
	DignityExalted      Dignity = "exalted"
	DignityMoolatrikona Dignity = "moolatrikona"
	DignityOwn          Dignity = "own"
	DignityFriend       Dignity = "friend"
	DignityNeutral      Dignity = "neutral"
	DignityEnemy        Dignity = "enemy"
	DignityDebilitated  Dignity = "debilitated"
)

// IsValid reports whether the dignity is one of the seven classical tiers.
func (d Dignity) IsValid() bool {
	switch d {
	case DignityExalted, DignityMoolatrikona, DignityOwn, DignityFriend,
		DignityNeutral, DignityEnemy, DignityDebilitated:
		return true
	}
	return false
}

// PlanetFact represents one planet's placement in a chart. Facts are
// immutable once parsed; the engine never writes to them.
type PlanetFact struct {
	Name       Planet  `json:"name" validate:"required"`
	Sign       Sign    `json:"sign" validate:"required,min=1,max=12"`
	House      int     `json:"house" validate:"min=0,max=12"`
	Degree     float64 `json:"degree" validate:"gte=0,lt=30"`
	Longitude  float64 `json:"longitude" validate:"gte=0,lt=360"`
	Dignity    Dignity `json:"dignity,omitempty"`
	Retrograde bool    `json:"retrograde"`
	Nakshatra  int     `json:"nakshatra,omitempty" validate:"min=0,max=27"`
}

// AbsoluteLongitude returns the planet's ecliptic longitude, reconstructing
// it from sign and degree when the upstream provider left it zero.
func (f PlanetFact) AbsoluteLongitude() float64 {
	if f.Longitude != 0 {
		return f.Longitude
	}
	if !f.Sign.IsValid() {
		return 0
	}
	return float64(f.Sign-1)*30 + f.Degree
}
