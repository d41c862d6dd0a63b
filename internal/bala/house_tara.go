package bala

import (
	"fmt"

	"grahabala/internal/astro"
)

// taraPoints grades the nine-fold cycle. Sampat and Sadhana carry the house,
// Naidhana and Vipat drag it down, Janma is mildly taxing.
var taraPoints = map[astro.Tara]float64{
	astro.TaraJanma:       -1,
	astro.TaraSampat:      3,
	astro.TaraVipat:       -2.5,
	astro.TaraKshema:      2,
	astro.TaraPratyak:     -2,
	astro.TaraSadhana:     2.5,
	astro.TaraNaidhana:    -3,
	astro.TaraMitra:       2,
	astro.TaraParamaMitra: 1.5,
}

// evalHouseTaraBala rates each house by the tara of its lord's nakshatra
// counted from the birth Moon's nakshatra. Neutral without a Moon position
// or when a lord has no mansion of its own.
func evalHouseTaraBala(in *Input) *HouseLayerResult {
	res := newHouseResult(LayerHouseTaraBala)
	if !in.hasMoon || in.moonNak < 1 {
		return res
	}

	for h := 1; h <= 12; h++ {
		lord, ok := in.lordOf(h)
		if !ok {
			continue
		}
		lf, ok := in.fact(lord)
		if !ok || lf.Nakshatra < 1 {
			continue
		}
		tara, ok := in.Ref.TaraOf(in.moonNak, lf.Nakshatra)
		if !ok {
			continue
		}
		pts := taraPoints[tara]
		reason := ""
		if pts >= 2 {
			reason = fmt.Sprintf("lord in %s tara", tara)
		} else if pts <= -2 {
			reason = fmt.Sprintf("lord afflicted by %s tara", tara)
		}
		res.Add(h, pts, reason)
	}
	return res
}
