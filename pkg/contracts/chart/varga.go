package chart

// VargaCode names a divisional chart. D1 is the base chart and is always
// required; every other chart is optional input.
type VargaCode string

const (
	VargaD1  VargaCode = "D1"
	VargaD2  VargaCode = "D2"
	VargaD3  VargaCode = "D3"
	VargaD9  VargaCode = "D9"
	VargaD10 VargaCode = "D10"
	VargaD12 VargaCode = "D12"
	VargaD30 VargaCode = "D30"
	VargaD60 VargaCode = "D60"
)

// DivisionalVargas returns the optional divisional charts in canonical
// order, D1 excluded. Multi-chart layers walk this order so that results
// stay deterministic regardless of map iteration.
func DivisionalVargas() []VargaCode {
	return []VargaCode{
		VargaD2, VargaD3, VargaD9, VargaD10, VargaD12, VargaD30, VargaD60,
	}
}

// IsValid reports whether the code names a known divisional chart.
func (c VargaCode) IsValid() bool {
	switch c {
	case VargaD1, VargaD2, VargaD3, VargaD9, VargaD10, VargaD12, VargaD30, VargaD60:
		return true
	}
	return false
}

// VargaChart represents one divisional chart: its ascendant sign and the
// planet placements recomputed for that division.
type VargaChart struct {
	Code      VargaCode    `json:"code" validate:"required"`
	Ascendant Sign         `json:"ascendant" validate:"required,min=1,max=12"`
	Planets   []PlanetFact `json:"planets" validate:"dive"`
}

// Planet returns the placement of the named planet in this chart.
func (v VargaChart) Planet(name Planet) (PlanetFact, bool) {
	for _, p := range v.Planets {
		if p.Name == name {
			return p, true
		}
	}
	return PlanetFact{}, false
}
