package biome

import (
	"fmt"
	"sort"
)

// Category groups related biomes. Two biomes of the same category (other
// than CategoryNone) are considered similar by the edge and hill rules.
type Category string

const (
	CategoryNone         Category = "none"
	CategoryTaiga        Category = "taiga"
	CategoryExtremeHills Category = "extreme_hills"
	CategoryJungle       Category = "jungle"
	CategoryMesa         Category = "mesa"
	CategoryPlains       Category = "plains"
	CategorySavanna      Category = "savanna"
	CategoryIcy          Category = "icy"
	CategoryTheEnd       Category = "the_end"
	CategoryBeach        Category = "beach"
	CategoryForest       Category = "forest"
	CategoryOcean        Category = "ocean"
	CategoryDesert       Category = "desert"
	CategoryRiver        Category = "river"
	CategorySwamp        Category = "swamp"
	CategoryMushroom     Category = "mushroom"
	CategoryNether       Category = "nether"
)

// Precipitation is the kind of weather a biome gets.
type Precipitation string

const (
	PrecipitationNone Precipitation = "none"
	PrecipitationRain Precipitation = "rain"
	PrecipitationSnow Precipitation = "snow"
)

// TempCategory is the coarse climate band derived from temperature.
type TempCategory int

const (
	TempOcean TempCategory = iota
	TempCold
	TempMedium
	TempWarm
)

func (t TempCategory) String() string {
	switch t {
	case TempOcean:
		return "ocean"
	case TempCold:
		return "cold"
	case TempMedium:
		return "medium"
	case TempWarm:
		return "warm"
	}
	return "unknown"
}

// NoParent marks a biome that is not a mutation.
const NoParent = -1

// Biome describes one registered biome.
type Biome struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Category      Category      `json:"category"`
	Temperature   float64       `json:"temperature"`
	Precipitation Precipitation `json:"precipitation"`
	Parent        int           `json:"parent"` // base biome for mutations, NoParent otherwise
	Color         string        `json:"color"`  // #rrggbb
}

// Registry holds biomes by ID and their mutation links.
type Registry struct {
	byID      map[int]Biome
	byName    map[string]int
	mutations map[int]int // base -> mutation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:      make(map[int]Biome),
		byName:    make(map[string]int),
		mutations: make(map[int]int),
	}
}

// Register adds b. Mutations (Parent != NoParent) must be registered after
// their parent.
func (r *Registry) Register(b Biome) error {
	if b.ID < 0 || b.ID > 255 {
		return fmt.Errorf("biome %q: id %d out of range [0, 255]", b.Name, b.ID)
	}
	if _, ok := r.byID[b.ID]; ok {
		return fmt.Errorf("biome %q: id %d already registered", b.Name, b.ID)
	}
	if _, ok := r.byName[b.Name]; ok {
		return fmt.Errorf("biome %q already registered", b.Name)
	}
	if b.Parent != NoParent {
		if _, ok := r.byID[b.Parent]; !ok {
			return fmt.Errorf("biome %q: parent %d not registered", b.Name, b.Parent)
		}
		r.mutations[b.Parent] = b.ID
	}
	r.byID[b.ID] = b
	r.byName[b.Name] = b.ID
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(b Biome) {
	if err := r.Register(b); err != nil {
		panic(err)
	}
}

// Get returns the biome with the given ID.
func (r *Registry) Get(id int) (Biome, bool) {
	b, ok := r.byID[id]
	return b, ok
}

// Lookup returns the biome with the given name.
func (r *Registry) Lookup(name string) (Biome, bool) {
	id, ok := r.byName[name]
	if !ok {
		return Biome{}, false
	}
	return r.byID[id], true
}

// Name returns the biome's name, or a placeholder for unknown IDs.
func (r *Registry) Name(id int) string {
	if b, ok := r.byID[id]; ok {
		return b.Name
	}
	return fmt.Sprintf("unknown(%d)", id)
}

// All returns every registered biome ordered by ID.
func (r *Registry) All() []Biome {
	out := make([]Biome, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered biomes.
func (r *Registry) Len() int { return len(r.byID) }

// Category returns the category of id, or CategoryNone if unknown.
func (r *Registry) Category(id int) Category {
	if b, ok := r.byID[id]; ok {
		return b.Category
	}
	return CategoryNone
}

// Precipitation returns the precipitation of id.
func (r *Registry) Precipitation(id int) Precipitation {
	if b, ok := r.byID[id]; ok {
		return b.Precipitation
	}
	return PrecipitationNone
}

// TempCategory classifies id into a climate band.
func (r *Registry) TempCategory(id int) TempCategory {
	b, ok := r.byID[id]
	if !ok {
		return TempMedium
	}
	switch {
	case b.Category == CategoryOcean:
		return TempOcean
	case b.Temperature < 0.2:
		return TempCold
	case b.Temperature < 1.0:
		return TempMedium
	default:
		return TempWarm
	}
}

// MutationOf returns the mutated variant of id, if one is registered.
func (r *Registry) MutationOf(id int) (int, bool) {
	m, ok := r.mutations[id]
	return m, ok
}

// IsMutation reports whether id is itself a mutated variant.
func (r *Registry) IsMutation(id int) bool {
	b, ok := r.byID[id]
	return ok && b.Parent != NoParent
}

// Similar reports whether two biomes blend into each other without an edge.
// The badlands plateaus are only similar to each other; everything else is
// similar within its category.
func (r *Registry) Similar(a, b int) bool {
	if a == b {
		return true
	}
	ba, okA := r.byID[a]
	bb, okB := r.byID[b]
	if !okA || !okB {
		return false
	}
	if a == WoodedBadlandsPlateau || a == BadlandsPlateau {
		return b == WoodedBadlandsPlateau || b == BadlandsPlateau
	}
	return ba.Category != CategoryNone && bb.Category != CategoryNone && ba.Category == bb.Category
}
