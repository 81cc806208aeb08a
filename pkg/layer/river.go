package layer

import (
	"github.com/matzehuels/genlayer/pkg/area"
	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/rng"
)

// NoRiver marks cells of the river chain that carry no river.
const NoRiver = -1

// RiverInit seeds the river and sub-biome fork: every land cell gets a random
// value in [2, 300000], ocean is kept. One draw per land cell.
var RiverInit = Pixel("river_init", func(s *rng.Stream, v int) int {
	if shallow(v) {
		return v
	}
	return s.Next(299999) + 2
})

// River marks a river wherever the parity of a cell's river-init value
// differs from any orthogonal neighbour. Other cells become NoRiver.
var River = Castle("river", func(s *rng.Stream, n, e, so, w, c int) int {
	f := riverFilter(c)
	if f == riverFilter(w) && f == riverFilter(n) && f == riverFilter(e) && f == riverFilter(so) {
		return NoRiver
	}
	return biome.River
})

func riverFilter(v int) int {
	if v >= 2 {
		return 2 + v&1
	}
	return v
}

// Smooth removes single-cell noise: a cell flanked by equal values on
// opposite sides takes that value. When both axes qualify one is chosen at
// random, which is the only case that draws.
var Smooth = Castle("smooth", func(s *rng.Stream, n, e, so, w, c int) int {
	horizontal := e == w
	vertical := n == so
	switch {
	case horizontal && vertical:
		return s.Choose2(w, n)
	case horizontal:
		return w
	case vertical:
		return n
	}
	return c
})

// RiverMix overlays the river chain (input 1) onto the biome chain
// (input 0). Oceans are never overwritten; snowy tundra freezes the river
// and mushroom land turns it into mushroom shore. No stream draws.
var RiverMix Layer = riverMixLayer{}

type riverMixLayer struct{}

func (riverMixLayer) Name() string { return "river_mix" }
func (riverMixLayer) Arity() int   { return 2 }

func (l riverMixLayer) Apply(ctx rng.Context, in ...area.Sampler) area.Func {
	mustArity(l, in)
	biomes, rivers := in[0], in[1]
	return func(x, z int) int {
		i := biomes.Sample(x, z)
		j := rivers.Sample(x, z)
		switch {
		case biome.IsOcean(i):
			return i
		case j != biome.River:
			return i
		case i == biome.SnowyTundra:
			return biome.FrozenRiver
		case i == biome.MushroomFields || i == biome.MushroomFieldShore:
			return biome.MushroomFieldShore
		}
		return j & 0xFF
	}
}
