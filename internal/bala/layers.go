package bala

// houseLayer binds a layer key to its evaluator and its weight/bounds
// accessor. Registry order is the evaluation and reporting order.
type houseLayer struct {
	key  string
	spec func(HouseWeights) LayerSpec
	eval func(*Input) *HouseLayerResult
}

func houseLayers() []houseLayer {
	return []houseLayer{
		{LayerHouseD1Base, func(w HouseWeights) LayerSpec { return w.D1Base }, evalHouseD1Base},
		{LayerHouseNavamsha, func(w HouseWeights) LayerSpec { return w.Navamsha }, evalHouseNavamsha},
		{LayerHouseVarga, func(w HouseWeights) LayerSpec { return w.Varga }, evalHouseVarga},
		{LayerHouseYoga, func(w HouseWeights) LayerSpec { return w.Yoga }, evalHouseYoga},
		{LayerHouseKaraka, func(w HouseWeights) LayerSpec { return w.Karaka }, evalHouseKaraka},
		{LayerHouseBhavaBala, func(w HouseWeights) LayerSpec { return w.BhavaBala }, evalHouseBhavaBala},
		{LayerHouseSudarshana, func(w HouseWeights) LayerSpec { return w.Sudarshana }, evalHouseSudarshana},
		{LayerHouseUpagraha, func(w HouseWeights) LayerSpec { return w.Upagraha }, evalHouseUpagraha},
		{LayerHouseSahama, func(w HouseWeights) LayerSpec { return w.Sahama }, evalHouseSahama},
		{LayerHouseTaraBala, func(w HouseWeights) LayerSpec { return w.TaraBala }, evalHouseTaraBala},
	}
}

// planetLayer is the planet-side counterpart of houseLayer.
type planetLayer struct {
	key  string
	spec func(PlanetWeights) LayerSpec
	eval func(*Input) *PlanetLayerResult
}

func planetLayers() []planetLayer {
	return []planetLayer{
		{LayerPlanetDignity, func(w PlanetWeights) LayerSpec { return w.Dignity }, evalPlanetDignity},
		{LayerPlanetHouse, func(w PlanetWeights) LayerSpec { return w.House }, evalPlanetHouse},
		{LayerPlanetAspect, func(w PlanetWeights) LayerSpec { return w.Aspect }, evalPlanetAspect},
		{LayerPlanetShadbala, func(w PlanetWeights) LayerSpec { return w.Shadbala }, evalPlanetShadbala},
		{LayerPlanetNavamsha, func(w PlanetWeights) LayerSpec { return w.Navamsha }, evalPlanetNavamsha},
		{LayerPlanetVarga, func(w PlanetWeights) LayerSpec { return w.Varga }, evalPlanetVarga},
		{LayerPlanetYoga, func(w PlanetWeights) LayerSpec { return w.Yoga }, evalPlanetYoga},
		{LayerPlanetSpecial, func(w PlanetWeights) LayerSpec { return w.Special }, evalPlanetSpecial},
		{LayerPlanetAshtakavarga, func(w PlanetWeights) LayerSpec { return w.Ashtakavarga }, evalPlanetAshtakavarga},
		{LayerPlanetKaraka, func(w PlanetWeights) LayerSpec { return w.Karaka }, evalPlanetKaraka},
	}
}
