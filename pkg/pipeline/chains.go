package pipeline

import (
	"slices"

	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/layer"
)

// Chains are the outputs of one pipeline build.
type Chains struct {
	// Biomes is the coarse biome chain, one cell per 4x4 blocks.
	Biomes *Node
	// Zoomed is the Voronoi-zoomed chain at block resolution.
	Zoomed *Node
	// Legacy is the coarse chain again, for consumers that look up biomes
	// at coarse resolution. It is the same node as Biomes.
	Legacy *Node
	// Branches holds the named intermediate chains.
	Branches map[string]*Node
	// Graph is the full layer arena.
	Graph *Graph
}

// Chain returns the node for a chain or branch name.
func (c *Chains) Chain(name string) (*Node, error) {
	switch name {
	case "", ChainZoomed:
		return c.Zoomed, nil
	case ChainBiomes:
		return c.Biomes, nil
	case ChainLegacy:
		return c.Legacy, nil
	}
	if n, ok := c.Branches[name]; ok {
		return n, nil
	}
	return nil, errors.New(errors.ErrCodeUnknownChain, "unknown chain %q (known: %v)", name, c.Names())
}

// Names lists every chain and branch name.
func (c *Chains) Names() []string {
	names := []string{ChainBiomes, ChainZoomed, ChainLegacy}
	branches := make([]string, 0, len(c.Branches))
	for name := range c.Branches {
		branches = append(branches, name)
	}
	slices.Sort(branches)
	return append(names, branches...)
}

// BuildChains validates s and constructs the full layer pipeline for seed.
// Construction order, and with it every layer's construction index, is
// fixed; reordering any step changes every world.
func BuildChains(seed int64, s Settings, opts Options) (*Chains, error) {
	opts.SetDefaults()
	if err := s.Validate(opts); err != nil {
		return nil, err
	}
	wt, _ := opts.WorldTypes.Get(s.WorldType)
	biomeSize := wt.BiomeSize(s.BiomeSize)
	if err := errors.ValidateSize("biome size", biomeSize); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "world type %s", wt.Name())
	}
	b := NewBuilder(seed, opts)

	landSea := buildLandSea(b)

	oceans := b.Apply(layer.Ocean, 2)
	oceans = b.Repeat(2001, layer.Zoom, oceans, 6)

	subBiomes := b.Apply(layer.RiverInit, 100, landSea)
	subBiomes = b.Repeat(1000, layer.Zoom, subBiomes, 2)

	biomes := wt.AssignBiomes(b, landSea, s)
	if b.Err() == nil && biomes == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "world type %s assigned no biome layer", wt.Name())
	}
	biomes = b.Apply(layer.Hills(b.Registry()), 1000, biomes, subBiomes)

	rivers := b.Repeat(1000, layer.Zoom, subBiomes, s.RiverSize)
	rivers = b.Apply(layer.River, 1, rivers)
	rivers = b.Apply(layer.Smooth, 1000, rivers)

	biomes = b.Apply(layer.RareBiome, 1001, biomes)
	for i := range biomeSize {
		biomes = b.Apply(layer.Zoom, int64(1000+i), biomes)
		if i == 0 {
			biomes = b.Apply(layer.AddIsland, 3, biomes)
		}
		if i == 1 || biomeSize == 1 {
			biomes = b.Apply(layer.Shore(b.Registry()), 1000, biomes)
		}
	}
	biomes = b.Apply(layer.Smooth, 1000, biomes)
	base := biomes

	biomes = b.Apply(layer.RiverMix, 100, biomes, rivers)
	biomes = b.Apply(layer.MixOceans, 100, biomes, oceans)
	zoomed := b.Apply(layer.VoronoiZoom, 10, biomes)

	if err := b.Err(); err != nil {
		return nil, err
	}
	return &Chains{
		Biomes: biomes,
		Zoomed: zoomed,
		Legacy: biomes,
		Branches: map[string]*Node{
			BranchLandSea:   landSea,
			BranchOceans:    oceans,
			BranchSubBiomes: subBiomes,
			BranchRivers:    rivers,
			BranchBiomeBase: base,
		},
		Graph: b.Graph(),
	}, nil
}

// buildLandSea applies the land/sea chain. The modifiers and their order
// are part of the world format.
func buildLandSea(b *Builder) *Node {
	n := b.Apply(layer.Island, 1)
	n = b.Apply(layer.FuzzyZoom, 2000, n)
	n = b.Apply(layer.AddIsland, 1, n)
	n = b.Apply(layer.Zoom, 2001, n)
	n = b.Apply(layer.AddIsland, 2, n)
	n = b.Apply(layer.AddIsland, 50, n)
	n = b.Apply(layer.AddIsland, 70, n)
	n = b.Apply(layer.RemoveTooMuchOcean, 2, n)
	n = b.Apply(layer.AddSnow, 2, n)
	n = b.Apply(layer.AddIsland, 3, n)
	n = b.Apply(layer.CoolWarmEdge, 2, n)
	n = b.Apply(layer.HeatIceEdge, 2, n)
	n = b.Apply(layer.SpecialEdge, 3, n)
	n = b.Apply(layer.Zoom, 2002, n)
	n = b.Apply(layer.Zoom, 2003, n)
	n = b.Apply(layer.AddIsland, 4, n)
	n = b.Apply(layer.AddMushroomIsland, 5, n)
	return b.Apply(layer.DeepOcean, 4, n)
}
