package bala

import (
	"fmt"
	"math"

	"grahabala/internal/config"
)

// Layer keys, stable identifiers carried into scorecard contributions.
const (
	LayerHouseD1Base     = "house_d1_base"
	LayerHouseNavamsha   = "house_navamsha"
	LayerHouseVarga      = "house_varga"
	LayerHouseYoga       = "house_yoga"
	LayerHouseKaraka     = "house_karaka"
	LayerHouseBhavaBala  = "house_bhava_bala"
	LayerHouseSudarshana = "house_sudarshana"
	LayerHouseUpagraha   = "house_upagraha"
	LayerHouseSahama     = "house_sahama"
	LayerHouseTaraBala   = "house_tara_bala"

	LayerPlanetDignity      = "planet_dignity"
	LayerPlanetHouse        = "planet_house"
	LayerPlanetAspect       = "planet_aspect"
	LayerPlanetShadbala     = "planet_shadbala"
	LayerPlanetNavamsha     = "planet_navamsha"
	LayerPlanetVarga        = "planet_varga"
	LayerPlanetYoga         = "planet_yoga"
	LayerPlanetSpecial      = "planet_special"
	LayerPlanetAshtakavarga = "planet_ashtakavarga"
	LayerPlanetKaraka       = "planet_karaka"
)

// LayerSpec pairs a layer's combination weight with its declared raw range.
type LayerSpec struct {
	Weight float64 `json:"weight"`
	Bounds Bounds  `json:"bounds"`
}

// HouseWeights fixes weight and bounds per house layer. The five primary
// layers carry config-tunable weights summing to 1.0; the five secondary
// layers carry fixed weights inside the same aggregate.
type HouseWeights struct {
	D1Base     LayerSpec `json:"d1_base"`
	Navamsha   LayerSpec `json:"navamsha"`
	Varga      LayerSpec `json:"varga"`
	Yoga       LayerSpec `json:"yoga"`
	Karaka     LayerSpec `json:"karaka"`
	BhavaBala  LayerSpec `json:"bhava_bala"`
	Sudarshana LayerSpec `json:"sudarshana"`
	Upagraha   LayerSpec `json:"upagraha"`
	Sahama     LayerSpec `json:"sahama"`
	TaraBala   LayerSpec `json:"tara_bala"`
}

// PlanetWeights fixes weight and bounds per planet layer. The weights sum
// to 1.22 rather than 1.0; the combiner's scale is nominal and the
// calibration curve absorbs the excess.
type PlanetWeights struct {
	Dignity      LayerSpec `json:"dignity"`
	House        LayerSpec `json:"house"`
	Aspect       LayerSpec `json:"aspect"`
	Shadbala     LayerSpec `json:"shadbala"`
	Navamsha     LayerSpec `json:"navamsha"`
	Varga        LayerSpec `json:"varga"`
	Yoga         LayerSpec `json:"yoga"`
	Special      LayerSpec `json:"special"`
	Ashtakavarga LayerSpec `json:"ashtakavarga"`
	Karaka       LayerSpec `json:"karaka"`
}

// CalibrationAnchor maps a raw weighted aggregate to a calibrated display
// score.
type CalibrationAnchor struct {
	Raw   float64 `json:"raw"`
	Score float64 `json:"score"`
}

// ScoringParams carries every tunable the layers and combiners read. The
// struct is copied into each evaluation, so a fitted parameter set can be
// swapped without racing in-flight scores.
type ScoringParams struct {
	// HouseBase and HouseScale map a raw weighted house total onto 0-100.
	HouseBase  float64 `json:"house_base"`
	HouseScale float64 `json:"house_scale"`

	Houses  HouseWeights  `json:"houses"`
	Planets PlanetWeights `json:"planets"`

	// Anchors of the planet calibration curve, strictly increasing in both
	// raw and score. Outside the anchor span the curve extrapolates along
	// the slope of the adjacent segment.
	Anchors [3]CalibrationAnchor `json:"anchors"`

	// PlanetClamp soft-clamps calibrated planet scores so consumers can
	// rely on headroom at both ends of the scale.
	PlanetClamp Bounds `json:"planet_clamp"`

	// BatchConcurrency bounds parallel chart evaluations in ScoreBatch.
	BatchConcurrency int `json:"batch_concurrency"`
}

// DefaultScoringParams returns the fitted reference parameters.
func DefaultScoringParams() ScoringParams {
	return ScoringParams{
		HouseBase:  50,  // average house lands near midscale
		HouseScale: 2.6, // fitted against the reference charts

		Houses: HouseWeights{
			D1Base:     LayerSpec{Weight: 0.40, Bounds: Bounds{-10, 15}},
			Navamsha:   LayerSpec{Weight: 0.20, Bounds: Bounds{-6, 8}},
			Varga:      LayerSpec{Weight: 0.15, Bounds: Bounds{-6, 10}},
			Yoga:       LayerSpec{Weight: 0.15, Bounds: Bounds{-8, 12}},
			Karaka:     LayerSpec{Weight: 0.10, Bounds: Bounds{0, 10}},
			BhavaBala:  LayerSpec{Weight: 0.30, Bounds: Bounds{-15, 15}},
			Sudarshana: LayerSpec{Weight: 0.20, Bounds: Bounds{-5, 5}},
			Upagraha:   LayerSpec{Weight: 0.10, Bounds: Bounds{-3, 3}},
			Sahama:     LayerSpec{Weight: 0.10, Bounds: Bounds{-3, 3}},
			TaraBala:   LayerSpec{Weight: 0.10, Bounds: Bounds{-3, 3}},
		},

		Planets: PlanetWeights{
			Dignity:      LayerSpec{Weight: 0.20, Bounds: Bounds{-20, 20}},
			House:        LayerSpec{Weight: 0.10, Bounds: Bounds{-10, 15}},
			Aspect:       LayerSpec{Weight: 0.10, Bounds: Bounds{-10, 10}},
			Shadbala:     LayerSpec{Weight: 0.15, Bounds: Bounds{0, 15}},
			Navamsha:     LayerSpec{Weight: 0.10, Bounds: Bounds{-4, 14}},
			Varga:        LayerSpec{Weight: 0.10, Bounds: Bounds{-10, 10}},
			Yoga:         LayerSpec{Weight: 0.15, Bounds: Bounds{-18, 18}},
			Special:      LayerSpec{Weight: 0.10, Bounds: Bounds{-10, 10}},
			Ashtakavarga: LayerSpec{Weight: 0.12, Bounds: Bounds{-12, 12}},
			Karaka:       LayerSpec{Weight: 0.10, Bounds: Bounds{-10, 10}},
		},

		Anchors: [3]CalibrationAnchor{
			{Raw: 15, Score: 25},
			{Raw: 35, Score: 50},
			{Raw: 55, Score: 90},
		},

		PlanetClamp: Bounds{Min: 5, Max: 98},

		BatchConcurrency: 4,
	}
}

// ParamsFromConfig overlays the config-tunable fields onto the default
// parameter set. Layer bounds and secondary weights are model constants
// and stay fixed.
func ParamsFromConfig(sc config.ScoringConfig) ScoringParams {
	p := DefaultScoringParams()

	p.HouseBase = sc.HouseBase
	p.HouseScale = sc.HouseScale

	p.Houses.D1Base.Weight = sc.WeightD1
	p.Houses.Navamsha.Weight = sc.WeightNavamsha
	p.Houses.Varga.Weight = sc.WeightVarga
	p.Houses.Yoga.Weight = sc.WeightYoga
	p.Houses.Karaka.Weight = sc.WeightKaraka

	p.Anchors = [3]CalibrationAnchor{
		{Raw: sc.AnchorLowRaw, Score: sc.AnchorLowScore},
		{Raw: sc.AnchorMidRaw, Score: sc.AnchorMidScore},
		{Raw: sc.AnchorHighRaw, Score: sc.AnchorHighScore},
	}

	p.PlanetClamp = Bounds{Min: sc.ClampMin, Max: sc.ClampMax}

	if sc.BatchConcurrency > 0 {
		p.BatchConcurrency = sc.BatchConcurrency
	}

	return p
}

// Validate checks the structural rules the combiners rely on.
func (p ScoringParams) Validate() error {
	if p.HouseBase < 0 || p.HouseBase > 100 {
		return &ValidationError{
			Field:   "house_base",
			Message: fmt.Sprintf("house base must lie in [0, 100], got %v", p.HouseBase),
			Value:   p.HouseBase,
		}
	}
	if p.HouseScale <= 0 {
		return &ValidationError{
			Field:   "house_scale",
			Message: fmt.Sprintf("house scale must be positive, got %v", p.HouseScale),
			Value:   p.HouseScale,
		}
	}

	primary := 0.0
	for _, spec := range []LayerSpec{
		p.Houses.D1Base, p.Houses.Navamsha, p.Houses.Varga,
		p.Houses.Yoga, p.Houses.Karaka,
	} {
		if spec.Weight <= 0 {
			return &ValidationError{
				Field:   "house_weights",
				Message: fmt.Sprintf("primary house weights must be positive, got %v", spec.Weight),
				Value:   spec.Weight,
			}
		}
		primary += spec.Weight
	}
	if math.Abs(primary-1.0) > 0.001 {
		return &ValidationError{
			Field:   "house_weights",
			Message: fmt.Sprintf("primary house weights must sum to 1.0, got %v", primary),
			Value:   primary,
		}
	}

	for _, l := range houseLayers() {
		spec := l.spec(p.Houses)
		if spec.Weight <= 0 {
			return &ValidationError{
				Field:   l.key,
				Message: fmt.Sprintf("layer %s weight must be positive, got %v", l.key, spec.Weight),
				Value:   spec.Weight,
			}
		}
		if !spec.Bounds.IsValid() {
			return &ValidationError{
				Field:   l.key,
				Message: fmt.Sprintf("layer %s bounds must be ordered, got [%v, %v]", l.key, spec.Bounds.Min, spec.Bounds.Max),
			}
		}
	}
	for _, l := range planetLayers() {
		spec := l.spec(p.Planets)
		if spec.Weight <= 0 {
			return &ValidationError{
				Field:   l.key,
				Message: fmt.Sprintf("layer %s weight must be positive, got %v", l.key, spec.Weight),
				Value:   spec.Weight,
			}
		}
		if !spec.Bounds.IsValid() {
			return &ValidationError{
				Field:   l.key,
				Message: fmt.Sprintf("layer %s bounds must be ordered, got [%v, %v]", l.key, spec.Bounds.Min, spec.Bounds.Max),
			}
		}
	}

	for i := 1; i < len(p.Anchors); i++ {
		if p.Anchors[i].Raw <= p.Anchors[i-1].Raw {
			return &ValidationError{
				Field:   "anchors",
				Message: fmt.Sprintf("anchor raws must be strictly increasing: %v then %v", p.Anchors[i-1].Raw, p.Anchors[i].Raw),
			}
		}
		if p.Anchors[i].Score <= p.Anchors[i-1].Score {
			return &ValidationError{
				Field:   "anchors",
				Message: fmt.Sprintf("anchor scores must be strictly increasing: %v then %v", p.Anchors[i-1].Score, p.Anchors[i].Score),
			}
		}
	}

	if !p.PlanetClamp.IsValid() {
		return &ValidationError{
			Field:   "planet_clamp",
			Message: fmt.Sprintf("planet clamp bounds must be ordered, got [%v, %v]", p.PlanetClamp.Min, p.PlanetClamp.Max),
		}
	}
	if p.PlanetClamp.Min < 0 || p.PlanetClamp.Max > 100 {
		return &ValidationError{
			Field:   "planet_clamp",
			Message: fmt.Sprintf("planet clamp bounds must lie in [0, 100], got [%v, %v]", p.PlanetClamp.Min, p.PlanetClamp.Max),
		}
	}

	if p.BatchConcurrency < 1 {
		return &ValidationError{
			Field:   "batch_concurrency",
			Message: fmt.Sprintf("batch concurrency must be at least 1, got %d", p.BatchConcurrency),
			Value:   p.BatchConcurrency,
		}
	}

	return nil
}
