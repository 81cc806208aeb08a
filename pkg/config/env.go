package config

import (
	"strconv"
	"time"

	"github.com/matzehuels/genlayer/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GENLAYER_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides c with GENLAYER_* variables found by lookup. Empty
// values are ignored; values that do not parse are an error.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	e := envReader{lookup: lookup}

	e.int64("SEED", &c.World.Seed)
	e.str("WORLD_TYPE", &c.World.Type)
	e.int("BIOME_SIZE", &c.World.BiomeSize)
	e.int("RIVER_SIZE", &c.World.RiverSize)
	e.str("FIXED_BIOME", &c.World.FixedBiome)
	e.bool("LEGACY_SEEDING", &c.World.LegacySeeding)

	e.int("CACHE_BASE", &c.Area.CacheBase)
	e.int("CACHE_LIMIT", &c.Area.CacheLimit)
	e.int("WORKERS", &c.Area.Workers)

	e.str("CACHE_BACKEND", &c.Cache.Backend)
	e.str("CACHE_DIR", &c.Cache.Dir)
	e.str("REDIS_ADDR", &c.Cache.RedisAddr)
	e.str("REDIS_PASSWORD", &c.Cache.RedisPassword)
	e.int("REDIS_DB", &c.Cache.RedisDB)
	e.str("MONGO_URI", &c.Cache.MongoURI)
	e.str("MONGO_DATABASE", &c.Cache.MongoDatabase)
	e.str("MONGO_COLLECTION", &c.Cache.MongoCollection)
	e.str("CACHE_PREFIX", &c.Cache.KeyPrefix)

	e.str("ADDR", &c.Server.Addr)
	e.duration("READ_TIMEOUT", &c.Server.ReadTimeout.Duration)
	e.duration("WRITE_TIMEOUT", &c.Server.WriteTimeout.Duration)
	e.duration("REQUEST_TIMEOUT", &c.Server.RequestTimeout.Duration)

	e.str("LOG_LEVEL", &c.Log.Level)

	return e.err
}

// envReader keeps the first parse error so the overrides read straight
// through.
type envReader struct {
	lookup LookupFunc
	err    error
}

func (e *envReader) get(key string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	v, ok := e.lookup(EnvPrefix + key)
	return v, ok && v != ""
}

func (e *envReader) fail(key, value string, err error) {
	e.err = errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s%s=%q", EnvPrefix, key, value)
}

func (e *envReader) str(key string, dst *string) {
	if v, ok := e.get(key); ok {
		*dst = v
	}
}

func (e *envReader) int(key string, dst *int) {
	if v, ok := e.get(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) int64(key string, dst *int64) {
	if v, ok := e.get(key); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) bool(key string, dst *bool) {
	if v, ok := e.get(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = b
	}
}

func (e *envReader) duration(key string, dst *time.Duration) {
	if v, ok := e.get(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = d
	}
}
