package layer

import (
	"github.com/aquilax/go-perlin"

	"github.com/matzehuels/genlayer/pkg/area"
	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/rng"
)

// Perlin parameters for the ocean temperature field.
const (
	oceanAlpha   = 2
	oceanBeta    = 2
	oceanOctaves = 3
	oceanScale   = 8

	// oceanPeriod is the period of the temperature field in blocks. The
	// Perlin lattice repeats every 256 units at every octave.
	oceanPeriod = oceanScale * 256
)

// Ocean is the source of the ocean-temperature chain. It classifies every
// cell by a Perlin field seeded from the world seed, sampled at 1/8 scale.
// The field repeats every oceanPeriod blocks. Cells on the 8-block lattice
// are always plain ocean. It consumes no stream draws.
var Ocean Layer = oceanLayer{}

type oceanLayer struct{}

func (oceanLayer) Name() string { return "ocean_temperature" }
func (oceanLayer) Arity() int   { return 0 }

func (l oceanLayer) Apply(ctx rng.Context, in ...area.Sampler) area.Func {
	mustArity(l, in)
	noise := perlin.NewPerlin(oceanAlpha, oceanBeta, oceanOctaves, ctx.WorldSeed)
	return func(x, z int) int {
		return oceanFor(noise.Noise2D(oceanCoord(x), oceanCoord(z)))
	}
}

// oceanCoord folds a block coordinate into one period of the field and
// scales it to lattice units. Folding keeps the noise input small, so the
// lattice lookup never converts an out-of-range float to int32.
func oceanCoord(v int) float64 {
	v %= oceanPeriod
	if v < 0 {
		v += oceanPeriod
	}
	return float64(v) / oceanScale
}

func oceanFor(v float64) int {
	switch {
	case v > 0.4:
		return biome.WarmOcean
	case v > 0.2:
		return biome.LukewarmOcean
	case v < -0.4:
		return biome.FrozenOcean
	case v < -0.2:
		return biome.ColdOcean
	}
	return biome.Ocean
}

// MixOceans replaces ocean cells of the biome chain (input 0) with the ocean
// temperature chain (input 1). Warm and frozen water within 8 cells of land
// (sampled every 4 cells) softens to lukewarm and cold, and deep ocean keeps
// its depth. No stream draws.
var MixOceans Layer = mixOceansLayer{}

type mixOceansLayer struct{}

func (mixOceansLayer) Name() string { return "mix_oceans" }
func (mixOceansLayer) Arity() int   { return 2 }

func (l mixOceansLayer) Apply(ctx rng.Context, in ...area.Sampler) area.Func {
	mustArity(l, in)
	land, ocean := in[0], in[1]
	return func(x, z int) int {
		i := land.Sample(x, z)
		j := ocean.Sample(x, z)
		if !biome.IsOcean(i) {
			return i
		}

		for dx := -8; dx <= 8; dx += 4 {
			for dz := -8; dz <= 8; dz += 4 {
				if biome.IsOcean(land.Sample(x+dx, z+dz)) {
					continue
				}
				if j == biome.WarmOcean {
					return biome.LukewarmOcean
				}
				if j == biome.FrozenOcean {
					return biome.ColdOcean
				}
			}
		}

		if i == biome.DeepOcean {
			switch j {
			case biome.LukewarmOcean:
				return biome.DeepLukewarmOcean
			case biome.Ocean:
				return biome.DeepOcean
			case biome.ColdOcean:
				return biome.DeepColdOcean
			case biome.FrozenOcean:
				return biome.DeepFrozenOcean
			}
		}
		return j
	}
}
