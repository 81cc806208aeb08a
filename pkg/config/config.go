// Package config loads genlayer settings from a TOML file and the
// environment.
//
// Values are resolved in three layers, later layers winning:
//
//  1. Built-in defaults ([Default])
//  2. The TOML file (by default $XDG_CONFIG_HOME/genlayer/config.toml)
//  3. GENLAYER_* environment variables
//
// Command-line flags are applied on top by the CLI. Call [Config.Validate]
// once everything is merged.
//
// # File Format
//
//	[world]
//	seed = 12345
//	type = "default"
//	biome_size = 4
//	river_size = 4
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/genlayer/pkg/cache"
	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/pipeline"
)

// appName names the config and cache directories.
const appName = "genlayer"

// =============================================================================
// Types
// =============================================================================

// Config is the merged configuration.
type Config struct {
	World  WorldConfig  `toml:"world"`
	Area   AreaConfig   `toml:"area"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// WorldConfig selects the generated world.
type WorldConfig struct {
	Seed          int64  `toml:"seed"`
	Type          string `toml:"type"`
	BiomeSize     int    `toml:"biome_size"`
	RiverSize     int    `toml:"river_size"`
	FixedBiome    string `toml:"fixed_biome,omitempty"`
	LegacySeeding bool   `toml:"legacy_seeding"`
}

// AreaConfig tunes layer caches and region fan-out.
type AreaConfig struct {
	CacheBase  int `toml:"cache_base"`
	CacheLimit int `toml:"cache_limit"`
	Workers    int `toml:"workers"` // 0 means GOMAXPROCS
}

// CacheConfig selects the region cache backend.
type CacheConfig struct {
	Backend         string `toml:"backend"`
	Dir             string `toml:"dir"`
	RedisAddr       string `toml:"redis_addr,omitempty"`
	RedisPassword   string `toml:"redis_password,omitempty"`
	RedisDB         int    `toml:"redis_db,omitempty"`
	MongoURI        string `toml:"mongo_uri,omitempty"`
	MongoDatabase   string `toml:"mongo_database,omitempty"`
	MongoCollection string `toml:"mongo_collection,omitempty"`
	// KeyPrefix scopes every cache key, so several deployments can share
	// one Redis or Mongo backend.
	KeyPrefix string `toml:"key_prefix,omitempty"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	// RequestTimeout bounds the time spent sampling one request.
	RequestTimeout Duration `toml:"request_timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a string ("10s") in TOML.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// =============================================================================
// Defaults and Loading
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	dir, _ := DefaultCacheDir()
	return &Config{
		World: WorldConfig{
			Type:      pipeline.DefaultWorldType,
			BiomeSize: pipeline.DefaultBiomeSize,
			RiverSize: pipeline.DefaultRiverSize,
		},
		Area: AreaConfig{
			CacheBase:  pipeline.DefaultCacheBase,
			CacheLimit: pipeline.DefaultCacheLimit,
		},
		Cache: CacheConfig{
			Backend:         cache.BackendFile,
			Dir:             dir,
			MongoDatabase:   "genlayer",
			MongoCollection: "regions",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    Duration{10 * time.Second},
			WriteTimeout:   Duration{30 * time.Second},
			RequestTimeout: Duration{30 * time.Second},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads defaults, then the file at path, then the environment. An
// empty path reads DefaultPath if it exists. A path that was given
// explicitly must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.Decode(data); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
			}
		case explicit || !os.IsNotExist(err):
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode merges TOML data into c. Keys not known to Config are rejected so
// typos do not silently fall back to defaults.
func (c *Config) Decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Encode returns c as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// =============================================================================
// Validation
// =============================================================================

// Backends lists the accepted cache backend names.
var Backends = []string{cache.BackendNone, cache.BackendFile, cache.BackendRedis, cache.BackendMongo}

// Validate checks the merged configuration. World settings are checked
// against the stock registries.
func (c *Config) Validate() error {
	if err := c.Settings().Validate(c.PipelineOptions(nil)); err != nil {
		return err
	}
	if c.Area.CacheBase < 0 || c.Area.CacheLimit < 0 || c.Area.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "area sizes must not be negative")
	}
	if c.Area.CacheBase > 0 && c.Area.CacheBase < pipeline.MinCacheBase {
		return errors.New(errors.ErrCodeInvalidConfig, "area.cache_base must be >= %d, got %d", pipeline.MinCacheBase, c.Area.CacheBase)
	}
	if c.Area.CacheLimit > 0 && c.Area.CacheLimit < pipeline.MinCacheLimit {
		return errors.New(errors.ErrCodeInvalidConfig, "area.cache_limit must be >= %d, got %d", pipeline.MinCacheLimit, c.Area.CacheLimit)
	}

	if !slices.Contains(Backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (must be one of: %s)",
			c.Cache.Backend, strings.Join(Backends, ", "))
	}
	switch c.Cache.Backend {
	case cache.BackendFile:
		if c.Cache.Dir == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.dir is required for the file backend")
		}
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	case cache.BackendMongo:
		if c.Cache.MongoURI == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.mongo_uri is required for the mongo backend")
		}
	}

	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 || c.Server.RequestTimeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server timeouts must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	return nil
}

// =============================================================================
// Conversions
// =============================================================================

// Settings returns the world settings.
func (c *Config) Settings() pipeline.Settings {
	return pipeline.Settings{
		WorldType:  c.World.Type,
		BiomeSize:  c.World.BiomeSize,
		RiverSize:  c.World.RiverSize,
		FixedBiome: c.World.FixedBiome,
	}
}

// PipelineOptions returns the build options, logging to logger.
func (c *Config) PipelineOptions(logger *log.Logger) pipeline.Options {
	return pipeline.Options{
		CacheBase:     c.Area.CacheBase,
		CacheLimit:    c.Area.CacheLimit,
		Workers:       c.Area.Workers,
		LegacySeeding: c.World.LegacySeeding,
		Logger:        logger,
	}
}

// CacheOptions returns the options for cache.Open.
func (c *Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:         c.Cache.Backend,
		Dir:             c.Cache.Dir,
		RedisAddr:       c.Cache.RedisAddr,
		RedisPassword:   c.Cache.RedisPassword,
		RedisDB:         c.Cache.RedisDB,
		MongoURI:        c.Cache.MongoURI,
		MongoDatabase:   c.Cache.MongoDatabase,
		MongoCollection: c.Cache.MongoCollection,
	}
}

// Keyer returns the cache keyer, scoped by KeyPrefix when one is set.
func (c *Config) Keyer() cache.Keyer {
	keyer := cache.NewDefaultKeyer()
	if c.Cache.KeyPrefix != "" {
		keyer = cache.NewScopedKeyer(keyer, c.Cache.KeyPrefix)
	}
	return keyer
}

// LogLevel returns the parsed log level, or info if it does not parse.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// =============================================================================
// Paths
// =============================================================================

// DefaultPath returns the config file location using the XDG standard
// (~/.config/genlayer/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// DefaultCacheDir returns the cache directory using the XDG standard
// (~/.cache/genlayer/).
func DefaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
