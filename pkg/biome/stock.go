package biome

// Default returns a registry populated with the stock biomes.
func Default() *Registry {
	r := NewRegistry()
	for _, b := range stock {
		r.MustRegister(b)
	}
	return r
}

func base(id int, name string, cat Category, temp float64, p Precipitation, color string) Biome {
	return Biome{ID: id, Name: name, Category: cat, Temperature: temp, Precipitation: p, Parent: NoParent, Color: color}
}

func mutated(id, parent int, name string, cat Category, temp float64, p Precipitation, color string) Biome {
	return Biome{ID: id, Name: name, Category: cat, Temperature: temp, Precipitation: p, Parent: parent, Color: color}
}

var stock = []Biome{
	base(Ocean, "ocean", CategoryOcean, 0.5, PrecipitationRain, "#000070"),
	base(Plains, "plains", CategoryPlains, 0.8, PrecipitationRain, "#8db360"),
	base(Desert, "desert", CategoryDesert, 2.0, PrecipitationNone, "#fa9418"),
	base(Mountains, "mountains", CategoryExtremeHills, 0.2, PrecipitationRain, "#606060"),
	base(Forest, "forest", CategoryForest, 0.7, PrecipitationRain, "#056621"),
	base(Taiga, "taiga", CategoryTaiga, 0.25, PrecipitationRain, "#0b6659"),
	base(Swamp, "swamp", CategorySwamp, 0.8, PrecipitationRain, "#07f9b2"),
	base(River, "river", CategoryRiver, 0.5, PrecipitationRain, "#0000ff"),
	base(Nether, "nether", CategoryNether, 2.0, PrecipitationNone, "#ff0000"),
	base(TheEnd, "the_end", CategoryTheEnd, 0.5, PrecipitationNone, "#8080ff"),
	base(FrozenOcean, "frozen_ocean", CategoryOcean, 0.0, PrecipitationSnow, "#7070d6"),
	base(FrozenRiver, "frozen_river", CategoryRiver, 0.0, PrecipitationSnow, "#a0a0ff"),
	base(SnowyTundra, "snowy_tundra", CategoryIcy, 0.0, PrecipitationSnow, "#ffffff"),
	base(SnowyMountains, "snowy_mountains", CategoryIcy, 0.0, PrecipitationSnow, "#a0a0a0"),
	base(MushroomFields, "mushroom_fields", CategoryMushroom, 0.9, PrecipitationRain, "#ff00ff"),
	base(MushroomFieldShore, "mushroom_field_shore", CategoryMushroom, 0.9, PrecipitationRain, "#a000ff"),
	base(Beach, "beach", CategoryBeach, 0.8, PrecipitationRain, "#fade55"),
	base(DesertHills, "desert_hills", CategoryDesert, 2.0, PrecipitationNone, "#d25f12"),
	base(WoodedHills, "wooded_hills", CategoryForest, 0.7, PrecipitationRain, "#22551c"),
	base(TaigaHills, "taiga_hills", CategoryTaiga, 0.25, PrecipitationRain, "#163933"),
	base(MountainEdge, "mountain_edge", CategoryExtremeHills, 0.2, PrecipitationRain, "#72789a"),
	base(Jungle, "jungle", CategoryJungle, 0.95, PrecipitationRain, "#537b09"),
	base(JungleHills, "jungle_hills", CategoryJungle, 0.95, PrecipitationRain, "#2c4205"),
	base(JungleEdge, "jungle_edge", CategoryJungle, 0.95, PrecipitationRain, "#628b17"),
	base(DeepOcean, "deep_ocean", CategoryOcean, 0.5, PrecipitationRain, "#000030"),
	base(StoneShore, "stone_shore", CategoryNone, 0.2, PrecipitationRain, "#a2a284"),
	base(SnowyBeach, "snowy_beach", CategoryBeach, 0.05, PrecipitationSnow, "#faf0c0"),
	base(BirchForest, "birch_forest", CategoryForest, 0.6, PrecipitationRain, "#307444"),
	base(BirchForestHills, "birch_forest_hills", CategoryForest, 0.6, PrecipitationRain, "#1f5f32"),
	base(DarkForest, "dark_forest", CategoryForest, 0.7, PrecipitationRain, "#40511a"),
	base(SnowyTaiga, "snowy_taiga", CategoryTaiga, -0.5, PrecipitationSnow, "#31554a"),
	base(SnowyTaigaHills, "snowy_taiga_hills", CategoryTaiga, -0.5, PrecipitationSnow, "#243f36"),
	base(GiantTreeTaiga, "giant_tree_taiga", CategoryTaiga, 0.3, PrecipitationRain, "#596651"),
	base(GiantTreeTaigaHills, "giant_tree_taiga_hills", CategoryTaiga, 0.3, PrecipitationRain, "#454f3e"),
	base(WoodedMountains, "wooded_mountains", CategoryExtremeHills, 0.2, PrecipitationRain, "#507050"),
	base(Savanna, "savanna", CategorySavanna, 1.2, PrecipitationNone, "#bdb25f"),
	base(SavannaPlateau, "savanna_plateau", CategorySavanna, 1.0, PrecipitationNone, "#a79d64"),
	base(Badlands, "badlands", CategoryMesa, 2.0, PrecipitationNone, "#d94515"),
	base(WoodedBadlandsPlateau, "wooded_badlands_plateau", CategoryMesa, 2.0, PrecipitationNone, "#b09765"),
	base(BadlandsPlateau, "badlands_plateau", CategoryMesa, 2.0, PrecipitationNone, "#ca8c65"),
	base(SmallEndIslands, "small_end_islands", CategoryTheEnd, 0.5, PrecipitationNone, "#8080ff"),
	base(EndMidlands, "end_midlands", CategoryTheEnd, 0.5, PrecipitationNone, "#8080ff"),
	base(EndHighlands, "end_highlands", CategoryTheEnd, 0.5, PrecipitationNone, "#8080ff"),
	base(EndBarrens, "end_barrens", CategoryTheEnd, 0.5, PrecipitationNone, "#8080ff"),
	base(WarmOcean, "warm_ocean", CategoryOcean, 0.5, PrecipitationRain, "#0000ac"),
	base(LukewarmOcean, "lukewarm_ocean", CategoryOcean, 0.5, PrecipitationRain, "#000090"),
	base(ColdOcean, "cold_ocean", CategoryOcean, 0.5, PrecipitationRain, "#202070"),
	base(DeepWarmOcean, "deep_warm_ocean", CategoryOcean, 0.5, PrecipitationRain, "#000050"),
	base(DeepLukewarmOcean, "deep_lukewarm_ocean", CategoryOcean, 0.5, PrecipitationRain, "#000040"),
	base(DeepColdOcean, "deep_cold_ocean", CategoryOcean, 0.5, PrecipitationRain, "#202038"),
	base(DeepFrozenOcean, "deep_frozen_ocean", CategoryOcean, 0.5, PrecipitationRain, "#404090"),
	base(TheVoid, "the_void", CategoryNone, 0.5, PrecipitationNone, "#000000"),

	mutated(SunflowerPlains, Plains, "sunflower_plains", CategoryPlains, 0.8, PrecipitationRain, "#b5db88"),
	mutated(DesertLakes, Desert, "desert_lakes", CategoryDesert, 2.0, PrecipitationNone, "#ffbc40"),
	mutated(GravellyMountains, Mountains, "gravelly_mountains", CategoryExtremeHills, 0.2, PrecipitationRain, "#888888"),
	mutated(FlowerForest, Forest, "flower_forest", CategoryForest, 0.7, PrecipitationRain, "#2d8e49"),
	mutated(TaigaMountains, Taiga, "taiga_mountains", CategoryTaiga, 0.25, PrecipitationRain, "#338e81"),
	mutated(SwampHills, Swamp, "swamp_hills", CategorySwamp, 0.8, PrecipitationRain, "#2fffda"),
	mutated(IceSpikes, SnowyTundra, "ice_spikes", CategoryIcy, 0.0, PrecipitationSnow, "#b4dcdc"),
	mutated(ModifiedJungle, Jungle, "modified_jungle", CategoryJungle, 0.95, PrecipitationRain, "#7ba331"),
	mutated(ModifiedJungleEdge, JungleEdge, "modified_jungle_edge", CategoryJungle, 0.95, PrecipitationRain, "#8ab33f"),
	mutated(TallBirchForest, BirchForest, "tall_birch_forest", CategoryForest, 0.7, PrecipitationRain, "#589c6c"),
	mutated(TallBirchHills, BirchForestHills, "tall_birch_hills", CategoryForest, 0.7, PrecipitationRain, "#47875a"),
	mutated(DarkForestHills, DarkForest, "dark_forest_hills", CategoryForest, 0.7, PrecipitationRain, "#687942"),
	mutated(SnowyTaigaMountains, SnowyTaiga, "snowy_taiga_mountains", CategoryTaiga, -0.5, PrecipitationSnow, "#597d72"),
	mutated(GiantSpruceTaiga, GiantTreeTaiga, "giant_spruce_taiga", CategoryTaiga, 0.25, PrecipitationRain, "#818e79"),
	mutated(GiantSpruceTaigaHills, GiantTreeTaigaHills, "giant_spruce_taiga_hills", CategoryTaiga, 0.25, PrecipitationRain, "#6d7766"),
	mutated(ModifiedGravellyMountains, WoodedMountains, "modified_gravelly_mountains", CategoryExtremeHills, 0.2, PrecipitationRain, "#789878"),
	mutated(ShatteredSavanna, Savanna, "shattered_savanna", CategorySavanna, 1.1, PrecipitationNone, "#e5da87"),
	mutated(ShatteredSavannaPlateau, SavannaPlateau, "shattered_savanna_plateau", CategorySavanna, 1.0, PrecipitationNone, "#cfc58c"),
	mutated(ErodedBadlands, Badlands, "eroded_badlands", CategoryMesa, 2.0, PrecipitationNone, "#ff6d3d"),
	mutated(ModifiedWoodedBadlandsPlateau, WoodedBadlandsPlateau, "modified_wooded_badlands_plateau", CategoryMesa, 2.0, PrecipitationNone, "#d8bf8d"),
	mutated(ModifiedBadlandsPlateau, BadlandsPlateau, "modified_badlands_plateau", CategoryMesa, 2.0, PrecipitationNone, "#f2b48d"),
}
