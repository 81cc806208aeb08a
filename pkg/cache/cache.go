// Package cache stores encoded generation results (regions, layer
// topologies) so repeated queries against the same world skip the pipeline.
//
// Generation is deterministic, so entries never go stale for a given world
// fingerprint; TTLs only bound disk and memory use.
//
// Backends:
//   - [FileCache]: JSON entries under a directory, for the CLI
//   - [RedisCache]: shared cache for the HTTP server
//   - [MongoCache]: persistent shared cache with server-side expiry
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes the request
// parameters; [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// TTLs for cached results.
const (
	TTLRegion   = 7 * 24 * time.Hour
	TTLTopology = 30 * 24 * time.Hour
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend string

	// File backend
	Dir string

	// Redis backend
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Mongo backend
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

// Open constructs the backend named by opts.Backend. An empty backend name
// is treated as BackendNone.
func Open(ctx context.Context, opts Options) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch opts.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		var fc *FileCache
		if fc, err = NewFileCache(opts.Dir); err == nil {
			c = fc
		}
	case BackendRedis:
		var rc *RedisCache
		rc, err = NewRedisCache(ctx, RedisOptions{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err == nil {
			c = rc
		}
	case BackendMongo:
		var mc *MongoCache
		mc, err = NewMongoCache(ctx, MongoOptions{
			URI:        opts.MongoURI,
			Database:   opts.MongoDatabase,
			Collection: opts.MongoCollection,
		})
		if err == nil {
			c = mc
		}
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// RegionKeyOpts identifies one encoded region.
type RegionKeyOpts struct {
	Chain  string `json:"chain"`
	X      int    `json:"x"`
	Z      int    `json:"z"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
	Step   int    `json:"step,omitempty"`
	Scale  int    `json:"scale,omitempty"`
	Format string `json:"format"`
}

// Keyer generates cache keys.
type Keyer interface {
	// RegionKey keys an encoded region of the world with the given fingerprint.
	RegionKey(world string, opts RegionKeyOpts) string
	// TopologyKey keys the layer graph of the world with the given fingerprint.
	TopologyKey(world string, format string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RegionKey implements Keyer.
func (DefaultKeyer) RegionKey(world string, opts RegionKeyOpts) string {
	return hashKey("region", world, opts)
}

// TopologyKey implements Keyer.
func (DefaultKeyer) TopologyKey(world string, format string) string {
	return hashKey("topology", world, format)
}
