package chart

// HouseFact represents one house of the chart. Lord and AspectedBy are
// optional hints from the upstream provider; the engine derives both from
// its own reference tables and treats the supplied values as informational.
type HouseFact struct {
	Number     int      `json:"number" validate:"required,min=1,max=12"`
	Sign       Sign     `json:"sign" validate:"required,min=1,max=12"`
	Lord       Planet   `json:"lord,omitempty"`
	Occupants  []Planet `json:"occupants,omitempty"`
	AspectedBy []Planet `json:"aspected_by,omitempty"`
}

// HouseFrom counts the whole-sign house that target occupies when counted
// from a reference sign, 1..12.
func HouseFrom(reference, target Sign) int {
	if !reference.IsValid() || !target.IsValid() {
		return 0
	}
	return (int(target)-int(reference)+12)%12 + 1
}
