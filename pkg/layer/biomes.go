package layer

import (
	"fmt"

	"github.com/matzehuels/genlayer/pkg/area"
	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/rng"
)

// NoFixedBiome disables the single-biome override of the Biome layer.
const NoFixedBiome = -1

// BiomeTable lists the candidate biomes per climate. A candidate listed n
// times is n times as likely.
type BiomeTable struct {
	Warm      []int `json:"warm"`
	Temperate []int `json:"temperate"`
	Cold      []int `json:"cold"`
	Freezing  []int `json:"freezing"`
}

// DefaultBiomeTable is the stock climate table.
var DefaultBiomeTable = BiomeTable{
	Warm:      []int{biome.Desert, biome.Desert, biome.Desert, biome.Savanna, biome.Savanna, biome.Plains},
	Temperate: []int{biome.Forest, biome.DarkForest, biome.Mountains, biome.Plains, biome.BirchForest, biome.Swamp},
	Cold:      []int{biome.Forest, biome.Mountains, biome.Taiga, biome.Plains},
	Freezing:  []int{biome.SnowyTundra, biome.SnowyTundra, biome.SnowyTundra, biome.SnowyTaiga},
}

// ClassicBiomeTable is the stock table with the older, flatter warm list.
var ClassicBiomeTable = BiomeTable{
	Warm:      []int{biome.Desert, biome.Forest, biome.Mountains, biome.Swamp, biome.Plains, biome.Taiga},
	Temperate: DefaultBiomeTable.Temperate,
	Cold:      DefaultBiomeTable.Cold,
	Freezing:  DefaultBiomeTable.Freezing,
}

// Validate checks that every list is non-empty and registered in reg.
func (t BiomeTable) Validate(reg *biome.Registry) error {
	lists := []struct {
		name string
		ids  []int
	}{
		{"warm", t.Warm},
		{"temperate", t.Temperate},
		{"cold", t.Cold},
		{"freezing", t.Freezing},
	}
	for _, l := range lists {
		if len(l.ids) == 0 {
			return fmt.Errorf("biome table: %s list is empty", l.name)
		}
		for _, id := range l.ids {
			if _, ok := reg.Get(id); !ok {
				return fmt.Errorf("biome table: %s list has unregistered biome %d", l.name, id)
			}
		}
	}
	return nil
}

// Biome turns climate codes into biomes. Special-flagged warm land becomes a
// badlands plateau, temperate becomes jungle and cold becomes giant tree
// taiga. Ocean and mushroom cells pass through. A fixed biome other than
// NoFixedBiome replaces every cell and consumes no draws.
func Biome(t BiomeTable, fixed int) Layer {
	return Pixel("biome", func(s *rng.Stream, v int) int {
		if fixed != NoFixedBiome {
			return fixed
		}
		special := (v & SpecialMask) >> 8
		v &^= SpecialMask
		if biome.IsOcean(v) || v == biome.MushroomFields {
			return v
		}
		switch v {
		case ClimateWarm:
			if special > 0 {
				if s.Next(3) == 0 {
					return biome.BadlandsPlateau
				}
				return biome.WoodedBadlandsPlateau
			}
			return t.Warm[s.Next(len(t.Warm))]
		case ClimateTemperate:
			if special > 0 {
				return biome.Jungle
			}
			return t.Temperate[s.Next(len(t.Temperate))]
		case ClimateCold:
			if special > 0 {
				return biome.GiantTreeTaiga
			}
			return t.Cold[s.Next(len(t.Cold))]
		case ClimateFreezing:
			return t.Freezing[s.Next(len(t.Freezing))]
		}
		return biome.MushroomFields
	})
}

// BiomeEdge smooths borders between incompatible biomes. Mountains next to an
// incompatible climate become mountain edge. Badlands plateaus and giant tree
// taiga get a rim of their plain variant. Desert next to snowy tundra becomes
// wooded mountains, and swamps avoid cold and desert neighbours. No stream
// draws.
func BiomeEdge(reg *biome.Registry) Layer {
	canNeighbour := func(a, b int) bool {
		if reg.Similar(a, b) {
			return true
		}
		if _, ok := reg.Get(a); !ok {
			return false
		}
		if _, ok := reg.Get(b); !ok {
			return false
		}
		ta, tb := reg.TempCategory(a), reg.TempCategory(b)
		return ta == tb || ta == biome.TempMedium || tb == biome.TempMedium
	}

	return Castle("biome_edge", func(s *rng.Stream, n, e, so, w, c int) int {
		if reg.Similar(c, biome.Mountains) {
			compatible := func(v int) bool { return canNeighbour(v, biome.Mountains) }
			if all4(compatible, n, e, w, so) {
				return c
			}
			return biome.MountainEdge
		}

		for _, r := range [...]struct{ target, replacement int }{
			{biome.BadlandsPlateau, biome.Badlands},
			{biome.WoodedBadlandsPlateau, biome.Badlands},
			{biome.GiantTreeTaiga, biome.Taiga},
		} {
			if c != r.target {
				continue
			}
			similar := func(v int) bool { return reg.Similar(v, r.target) }
			if all4(similar, n, e, w, so) {
				return c
			}
			return r.replacement
		}

		if c == biome.Desert && oneOf(biome.SnowyTundra, n, e, w, so) {
			return biome.WoodedMountains
		}
		if c == biome.Swamp {
			cold := func(v int) bool { return oneOf(v, biome.Desert, biome.SnowyTaiga, biome.SnowyTundra) }
			if any4(cold, n, e, w, so) {
				return biome.Plains
			}
			if oneOf(biome.Jungle, n, so, e, w) {
				return biome.JungleEdge
			}
		}
		return c
	})
}

// hillVariants maps a biome to its hilly counterpart.
var hillVariants = map[int]int{
	biome.Desert:         biome.DesertHills,
	biome.Forest:         biome.WoodedHills,
	biome.BirchForest:    biome.BirchForestHills,
	biome.DarkForest:     biome.Plains,
	biome.Taiga:          biome.TaigaHills,
	biome.GiantTreeTaiga: biome.GiantTreeTaigaHills,
	biome.SnowyTaiga:     biome.SnowyTaigaHills,
	biome.SnowyTundra:    biome.SnowyMountains,
	biome.Jungle:         biome.JungleHills,
	biome.Ocean:          biome.DeepOcean,
	biome.LukewarmOcean:  biome.DeepLukewarmOcean,
	biome.ColdOcean:      biome.DeepColdOcean,
	biome.FrozenOcean:    biome.DeepFrozenOcean,
	biome.Mountains:      biome.WoodedMountains,
	biome.Savanna:        biome.SavannaPlateau,
}

// Hills combines the biome chain (input 0) with the sub-biome noise fork
// (input 1). Noise values n with (n-2)%29 == 1 mutate the biome outright;
// otherwise, one time in three (always when (n-2)%29 == 0) the biome is
// swapped for its hill variant if at least three orthogonal neighbours are
// similar to it. Always draws once, plus extra draws for plains and deep
// ocean.
func Hills(reg *biome.Registry) Layer {
	return hillsLayer{reg: reg}
}

type hillsLayer struct {
	reg *biome.Registry
}

func (hillsLayer) Name() string { return "hills" }
func (hillsLayer) Arity() int   { return 2 }

func (l hillsLayer) Apply(ctx rng.Context, in ...area.Sampler) area.Func {
	mustArity(l, in)
	biomes, noise := in[0], in[1]
	reg := l.reg
	mutate := func(id, fallback int) int {
		if m, ok := reg.MutationOf(id); ok {
			return m
		}
		return fallback
	}

	return func(x, z int) int {
		i := biomes.Sample(x, z)
		j := noise.Sample(x, z)
		s := ctx.At(x, z)
		k := (j - 2) % 29

		if !shallow(i) && j >= 2 && k == 1 && !reg.IsMutation(i) {
			return mutate(i, i)
		}

		if s.Next(3) != 0 && k != 0 {
			return i
		}

		v := i
		if h, ok := hillVariants[i]; ok {
			v = h
		} else {
			switch {
			case i == biome.Plains:
				v = biome.Forest
				if s.Next(3) == 0 {
					v = biome.WoodedHills
				}
			case reg.Similar(i, biome.WoodedBadlandsPlateau):
				v = biome.Badlands
			case oneOf(i, biome.DeepOcean, biome.DeepLukewarmOcean, biome.DeepColdOcean, biome.DeepFrozenOcean):
				if s.Next(3) == 0 {
					v = biome.Forest
					if s.Next(2) == 0 {
						v = biome.Plains
					}
				}
			}
		}

		if k == 0 && v != i {
			v = mutate(v, i)
		}
		if v == i {
			return i
		}

		similar := 0
		for _, nb := range [...]int{
			biomes.Sample(x, z-1),
			biomes.Sample(x+1, z),
			biomes.Sample(x-1, z),
			biomes.Sample(x, z+1),
		} {
			if reg.Similar(nb, i) {
				similar++
			}
		}
		if similar >= 3 {
			return v
		}
		return i
	}
}

// RareBiome turns plains into sunflower plains one time in 57. The draw is
// made for every cell.
var RareBiome = Pixel("rare_biome", func(s *rng.Stream, v int) int {
	if s.Next(57) == 0 && v == biome.Plains {
		return biome.SunflowerPlains
	}
	return v
})

// Shore places beaches and other coastal biomes on land bordering ocean, and
// jungle edge where jungle meets an incompatible biome. No stream draws.
func Shore(reg *biome.Registry) Layer {
	ocean := biome.IsOcean
	jungleCompatible := func(id int) bool {
		if reg.Category(id) == biome.CategoryJungle {
			return true
		}
		return oneOf(id, biome.JungleEdge, biome.Jungle, biome.JungleHills, biome.Forest, biome.Taiga) || ocean(id)
	}
	mesa := func(id int) bool {
		return oneOf(id, biome.Badlands, biome.WoodedBadlandsPlateau, biome.BadlandsPlateau,
			biome.ErodedBadlands, biome.ModifiedWoodedBadlandsPlateau, biome.ModifiedBadlandsPlateau)
	}

	return Castle("shore", func(s *rng.Stream, n, e, so, w, c int) int {
		_, known := reg.Get(c)
		switch {
		case c == biome.MushroomFields:
			if any4(shallow, n, e, w, so) {
				return biome.MushroomFieldShore
			}
		case known && reg.Category(c) == biome.CategoryJungle:
			if !all4(jungleCompatible, n, e, w, so) {
				return biome.JungleEdge
			}
			if any4(ocean, n, e, w, so) {
				return biome.Beach
			}
		case oneOf(c, biome.Mountains, biome.WoodedMountains, biome.MountainEdge):
			if !ocean(c) && any4(ocean, n, e, w, so) {
				return biome.StoneShore
			}
		case known && reg.Precipitation(c) == biome.PrecipitationSnow:
			if !ocean(c) && any4(ocean, n, e, w, so) {
				return biome.SnowyBeach
			}
		case c == biome.Badlands || c == biome.WoodedBadlandsPlateau:
			if !any4(ocean, n, e, w, so) && !all4(mesa, n, e, w, so) {
				return biome.Desert
			}
		default:
			if !ocean(c) && c != biome.River && c != biome.Swamp && any4(ocean, n, e, w, so) {
				return biome.Beach
			}
		}
		return c
	})
}
