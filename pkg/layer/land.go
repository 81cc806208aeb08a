package layer

import (
	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/rng"
)

// Climate codes used by the land/sea chain before biomes are assigned.
const (
	ClimateOcean     = 0
	ClimateWarm      = 1
	ClimateTemperate = 2
	ClimateCold      = 3
	ClimateFreezing  = 4
)

// SpecialMask selects the special-variant bits of a climate code.
const SpecialMask = 0xF00

var shallow = biome.IsShallowOcean

// Island seeds the world: the origin is always land, everything else is
// land one time in ten.
var Island = Source("island", func(s *rng.Stream, x, z int) int {
	if x == 0 && z == 0 {
		return ClimateWarm
	}
	if s.Next(10) == 0 {
		return ClimateWarm
	}
	return ClimateOcean
})

// AddIsland fractalizes coastlines. Land touching ocean erodes one time in
// five; ocean touching land grows a copy of a randomly chosen neighbouring
// land cell one time in three.
var AddIsland = Bishop("add_island", func(s *rng.Stream, sw, se, ne, nw, c int) int {
	if !shallow(c) || all4(shallow, sw, se, ne, nw) {
		if !shallow(c) && any4(shallow, sw, nw, se, ne) && s.Next(5) == 0 {
			for _, n := range [...]int{nw, sw, ne, se} {
				if shallow(n) {
					if c == ClimateFreezing {
						return ClimateFreezing
					}
					return n
				}
			}
		}
		return c
	}

	// Reservoir pick among land neighbours: the k-th candidate wins with 1/k.
	bound, pick := 1, 1
	for _, n := range [...]int{nw, ne, sw, se} {
		if !shallow(n) {
			if s.Next(bound) == 0 {
				pick = n
			}
			bound++
		}
	}
	if s.Next(3) == 0 {
		return pick
	}
	if pick == ClimateFreezing {
		return ClimateFreezing
	}
	return c
})

// RemoveTooMuchOcean turns an ocean cell enclosed by ocean on all four sides
// into land half of the time, breaking up large empty seas.
var RemoveTooMuchOcean = Castle("remove_too_much_ocean", func(s *rng.Stream, n, e, so, w, c int) int {
	if shallow(c) && all4(shallow, n, e, so, w) && s.Next(2) == 0 {
		return ClimateWarm
	}
	return c
})

// AddMushroomIsland places a mushroom island in open ocean one time in a
// hundred.
var AddMushroomIsland = Bishop("add_mushroom_island", func(s *rng.Stream, sw, se, ne, nw, c int) int {
	if shallow(c) && all4(shallow, nw, sw, ne, se) && s.Next(100) == 0 {
		return biome.MushroomFields
	}
	return c
})

// DeepOcean deepens shallow ocean whose four neighbours are all ocean.
var DeepOcean = Castle("deep_ocean", func(s *rng.Stream, n, e, so, w, c int) int {
	if !shallow(c) {
		return c
	}
	count := 0
	for _, v := range [...]int{n, e, w, so} {
		if shallow(v) {
			count++
		}
	}
	if count <= 3 {
		return c
	}
	return deepVariant(c)
})

func deepVariant(id int) int {
	switch id {
	case biome.WarmOcean:
		return biome.DeepWarmOcean
	case biome.LukewarmOcean:
		return biome.DeepLukewarmOcean
	case biome.ColdOcean:
		return biome.DeepColdOcean
	case biome.FrozenOcean:
		return biome.DeepFrozenOcean
	default:
		return biome.DeepOcean
	}
}
