package pipeline

import (
	"fmt"
	"slices"
	"sync"

	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/layer"
)

// WorldType is the host plug-in that turns the land/sea chain into biomes.
type WorldType interface {
	// Name is the registry key.
	Name() string
	// BiomeSize returns the effective biome size for a configured size.
	BiomeSize(configured int) int
	// AssignBiomes applies the biome-assignment layers over landSea.
	AssignBiomes(b *Builder, landSea *Node, s Settings) *Node
}

// StandardWorldType assigns biomes from a climate table, zooms twice and
// smooths incompatible borders.
type StandardWorldType struct {
	TypeName string
	Table    layer.BiomeTable
	// Size, when positive, replaces the configured biome size.
	Size int
}

// Name implements WorldType.
func (w StandardWorldType) Name() string { return w.TypeName }

// BiomeSize implements WorldType.
func (w StandardWorldType) BiomeSize(configured int) int {
	if w.Size > 0 {
		return w.Size
	}
	return configured
}

// Validate checks the climate table against reg.
func (w StandardWorldType) Validate(reg *biome.Registry) error {
	return w.Table.Validate(reg)
}

// AssignBiomes implements WorldType.
func (w StandardWorldType) AssignBiomes(b *Builder, landSea *Node, s Settings) *Node {
	fixed, err := s.FixedBiomeID(b.Registry())
	if err != nil {
		b.err = err
		return nil
	}
	n := b.Apply(layer.Biome(w.Table, fixed), 200, landSea)
	n = b.Repeat(1000, layer.Zoom, n, 2)
	return b.Apply(layer.BiomeEdge(b.Registry()), 1000, n)
}

// WorldTypes is a registry of world types. It is safe for concurrent use.
type WorldTypes struct {
	mu    sync.RWMutex
	types map[string]WorldType
}

// NewWorldTypes creates an empty registry.
func NewWorldTypes() *WorldTypes {
	return &WorldTypes{types: make(map[string]WorldType)}
}

// DefaultWorldTypes returns a registry with the stock world types:
// "default", "large_biomes" (biome size 6) and "default_1_1" (classic warm
// biome list).
func DefaultWorldTypes() *WorldTypes {
	w := NewWorldTypes()
	for _, wt := range []WorldType{
		StandardWorldType{TypeName: "default", Table: layer.DefaultBiomeTable},
		StandardWorldType{TypeName: "large_biomes", Table: layer.DefaultBiomeTable, Size: 6},
		StandardWorldType{TypeName: "default_1_1", Table: layer.ClassicBiomeTable},
	} {
		if err := w.Register(wt); err != nil {
			panic(err)
		}
	}
	return w
}

// Register adds a world type. Names must be unique.
func (w *WorldTypes) Register(wt WorldType) error {
	if wt == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "world type is nil")
	}
	if err := errors.ValidateName("world type", wt.Name()); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, exists := w.types[wt.Name()]; exists {
		return errors.New(errors.ErrCodeInvalidConfig, "world type %q already registered", wt.Name())
	}
	w.types[wt.Name()] = wt
	return nil
}

// Get returns the world type registered under name.
func (w *WorldTypes) Get(name string) (WorldType, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	wt, ok := w.types[name]
	return wt, ok
}

// Names returns the registered names in sorted order.
func (w *WorldTypes) Names() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	names := make([]string, 0, len(w.types))
	for name := range w.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (w *WorldTypes) String() string {
	return fmt.Sprintf("WorldTypes%v", w.Names())
}
