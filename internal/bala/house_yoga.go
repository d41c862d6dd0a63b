package bala

import "fmt"

// evalHouseYoga folds detected combinations onto the houses they affect.
// Affected houses come from the report or the catalog, never from name
// parsing; points carry the reported strength multiplier.
func evalHouseYoga(in *Input) *HouseLayerResult {
	res := newHouseResult(LayerHouseYoga)
	for _, ry := range in.yogas {
		reason := fmt.Sprintf("%s (%+.1f)", ry.fact.Name, ry.points)
		for _, h := range ry.houses {
			res.Add(h, ry.points, reason)
		}
	}
	return res
}
