// Package pipeline assembles generation layers into chains and answers
// coordinate queries against them.
//
// # Architecture
//
// A [Builder] is the explicit context factory: every layer application gets
// the next construction index, a random context derived from the world
// seed, that index and its seed modifier, and a cached [area.Area] sized
// from its inputs. Applications are recorded in an arena [Graph].
//
// [BuildChains] runs the fixed construction sequence:
//
//  1. Land/sea chain (island, zooms, coastline, climate, deep ocean)
//  2. Ocean-temperature chain, zoomed six times
//  3. River/sub-biome fork off the land/sea chain
//  4. World-type biome assignment, then hills
//  5. River branch, rare biomes, biome-size zoom rounds
//  6. Smoothing, river and ocean mixing, Voronoi zoom
//
// It returns [Chains] holding the coarse biome chain, the full-resolution
// zoomed chain, the legacy coarse handle and the named intermediate branches.
//
// # Usage
//
//	chains, err := pipeline.BuildChains(12345, pipeline.DefaultSettings(), pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id := chains.Zoomed.Sample(100, -40)
//
// Hosts usually go through a [Runner], which caches built sessions and
// encoded regions:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	region, err := runner.Region(ctx, pipeline.Request{Seed: 1, Width: 64, Height: 64})
package pipeline

import (
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/genlayer/pkg/area"
	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/layer"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultBiomeSize is the number of biome zoom rounds.
	DefaultBiomeSize = 4

	// DefaultRiverSize is the number of river zoom rounds.
	DefaultRiverSize = 4

	// DefaultWorldType is the world type used when none is configured.
	DefaultWorldType = "default"

	// DefaultCacheBase is the cache size of source layers.
	DefaultCacheBase = area.DefaultSize

	// DefaultCacheLimit caps the cache size of any single layer.
	DefaultCacheLimit = 1024

	// MinCacheBase and MinCacheLimit are the smallest accepted cache sizes.
	// Neighbourhood layers re-sample their parents, so below these bounds
	// the cost of one fresh sample grows exponentially with chain depth.
	MinCacheBase  = 16
	MinCacheLimit = 256

	// MaxDepth bounds the number of layers on any path through a pipeline,
	// and so the recursion depth of one sample.
	MaxDepth = 128
)

// Chain names accepted by [Chains.Chain].
const (
	ChainBiomes = "biomes"
	ChainZoomed = "zoomed"
	ChainLegacy = "legacy"

	BranchLandSea   = "land_sea"
	BranchOceans    = "oceans"
	BranchSubBiomes = "sub_biomes"
	BranchRivers    = "rivers"
	BranchBiomeBase = "biome_base"
)

// =============================================================================
// Settings - World Configuration
// =============================================================================

// Settings are the per-world generation parameters. Together with the seed
// they fully determine a world.
type Settings struct {
	WorldType  string `json:"world_type"`
	BiomeSize  int    `json:"biome_size"`
	RiverSize  int    `json:"river_size"`
	FixedBiome string `json:"fixed_biome,omitempty"` // biome name; empty disables the override
}

// DefaultSettings returns the stock world settings.
func DefaultSettings() Settings {
	return Settings{
		WorldType: DefaultWorldType,
		BiomeSize: DefaultBiomeSize,
		RiverSize: DefaultRiverSize,
	}
}

// OrDefault returns DefaultSettings when s is the zero value. Otherwise it
// returns s with an empty world type replaced by DefaultWorldType; sizes are
// never rewritten, so an explicit 0 still fails validation.
func (s Settings) OrDefault() Settings {
	if s == (Settings{}) {
		return DefaultSettings()
	}
	if s.WorldType == "" {
		s.WorldType = DefaultWorldType
	}
	return s
}

// Validate checks sizes, the world type and the fixed biome. It returns a
// coded configuration error and never modifies s.
func (s Settings) Validate(opts Options) error {
	opts.SetDefaults()
	if err := errors.ValidateSize("biome size", s.BiomeSize); err != nil {
		return err
	}
	if err := errors.ValidateSize("river size", s.RiverSize); err != nil {
		return err
	}
	wt, ok := opts.WorldTypes.Get(s.WorldType)
	if !ok {
		return errors.New(errors.ErrCodeUnknownWorldType, "unknown world type %q (known: %v)", s.WorldType, opts.WorldTypes.Names())
	}
	if v, ok := wt.(interface{ Validate(*biome.Registry) error }); ok {
		if err := v.Validate(opts.Registry); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "world type %s", s.WorldType)
		}
	}
	if _, err := s.FixedBiomeID(opts.Registry); err != nil {
		return err
	}
	return nil
}

// FixedBiomeID resolves FixedBiome against reg. It returns
// layer.NoFixedBiome when no fixed biome is configured.
func (s Settings) FixedBiomeID(reg *biome.Registry) (int, error) {
	if s.FixedBiome == "" {
		return layer.NoFixedBiome, nil
	}
	b, ok := reg.Lookup(s.FixedBiome)
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownBiome, "unknown fixed biome %q", s.FixedBiome)
	}
	return b.ID, nil
}

// =============================================================================
// Options - Runtime Configuration
// =============================================================================

// Options configure how a pipeline is built. Unlike Settings they do not
// change generated values, with the exception of LegacySeeding.
type Options struct {
	// CacheBase is the cache size of source layers. Raised to MinCacheBase.
	CacheBase int
	// CacheLimit caps the cache size of derived layers. Raised to
	// MinCacheLimit.
	CacheLimit int
	// Workers bounds region fan-out. Defaults to GOMAXPROCS.
	Workers int
	// LegacySeeding derives layer streams without the construction index,
	// reproducing the classic seeding where layers sharing a modifier share
	// a stream.
	LegacySeeding bool

	// Registry is the biome catalog. Defaults to biome.Default().
	Registry *biome.Registry
	// WorldTypes is the world-type registry. Defaults to DefaultWorldTypes().
	WorldTypes *WorldTypes
	// Logger receives debug output. Defaults to a discard logger.
	Logger *log.Logger
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.CacheBase <= 0 {
		o.CacheBase = DefaultCacheBase
	}
	o.CacheBase = max(o.CacheBase, MinCacheBase)
	if o.CacheLimit <= 0 {
		o.CacheLimit = DefaultCacheLimit
	}
	o.CacheLimit = max(o.CacheLimit, MinCacheLimit)
	if o.CacheLimit < o.CacheBase {
		o.CacheLimit = o.CacheBase
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Registry == nil {
		o.Registry = biome.Default()
	}
	if o.WorldTypes == nil {
		o.WorldTypes = DefaultWorldTypes()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
