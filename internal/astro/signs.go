package astro

import "grahabala/pkg/contracts/chart"

// Element is the classical element of a sign.
type Element string

const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementWater Element = "water"
)

// Modality is the classical modality of a sign.
type Modality string

const (
	ModalityMovable Modality = "movable"
	ModalityFixed   Modality = "fixed"
	ModalityDual    Modality = "dual"
)

// signLords maps each sign to its ruling planet. The lunar nodes rule no
// sign; lordship-based rules always resolve to one of the seven classical
// planets.
var signLords = map[chart.Sign]chart.Planet{
	chart.SignAries:       chart.PlanetMars,
	chart.SignTaurus:      chart.PlanetVenus,
	chart.SignGemini:      chart.PlanetMercury,
	chart.SignCancer:      chart.PlanetMoon,
	chart.SignLeo:         chart.PlanetSun,
	chart.SignVirgo:       chart.PlanetMercury,
	chart.SignLibra:       chart.PlanetVenus,
	chart.SignScorpio:     chart.PlanetMars,
	chart.SignSagittarius: chart.PlanetJupiter,
	chart.SignCapricorn:   chart.PlanetSaturn,
	chart.SignAquarius:    chart.PlanetSaturn,
	chart.SignPisces:      chart.PlanetJupiter,
}

// SignLord returns the ruling planet of a sign.
func (r *Reference) SignLord(s chart.Sign) (chart.Planet, bool) {
	lord, ok := signLords[s]
	return lord, ok
}

// ElementOf returns the element of a sign. Elements repeat in the fixed
// fire-earth-air-water cycle starting at Aries.
func (r *Reference) ElementOf(s chart.Sign) Element {
	if !s.IsValid() {
		return ""
	}
	switch (int(s) - 1) % 4 {
	case 0:
		return ElementFire
	case 1:
		return ElementEarth
	case 2:
		return ElementAir
	default:
		return ElementWater
	}
}

// ModalityOf returns the modality of a sign, repeating in the
// movable-fixed-dual cycle starting at Aries.
func (r *Reference) ModalityOf(s chart.Sign) Modality {
	if !s.IsValid() {
		return ""
	}
	switch (int(s) - 1) % 3 {
	case 0:
		return ModalityMovable
	case 1:
		return ModalityFixed
	default:
		return ModalityDual
	}
}
