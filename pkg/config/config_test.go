package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/genlayer/pkg/cache"
	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/pipeline"
)

func testDefault(t *testing.T) *Config {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	return Default()
}

func TestDefaultIsValid(t *testing.T) {
	cfg := testDefault(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if !strings.HasSuffix(cfg.Cache.Dir, appName) {
		t.Errorf("cache dir = %q, want suffix %q", cfg.Cache.Dir, appName)
	}
}

func TestDecode(t *testing.T) {
	cfg := testDefault(t)
	data := `
[world]
seed = -42
type = "large_biomes"
fixed_biome = "desert"

[cache]
backend = "redis"
redis_addr = "localhost:6379"

[server]
read_timeout = "3s"
`
	if err := cfg.Decode([]byte(data)); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg.World.Seed != -42 || cfg.World.Type != "large_biomes" || cfg.World.FixedBiome != "desert" {
		t.Errorf("world = %+v", cfg.World)
	}
	if cfg.World.BiomeSize != 4 {
		t.Errorf("biome size = %d, want default 4 to survive", cfg.World.BiomeSize)
	}
	if cfg.Server.ReadTimeout.Duration != 3*time.Second {
		t.Errorf("read timeout = %v, want 3s", cfg.Server.ReadTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := testDefault(t)
	err := cfg.Decode([]byte("[world]\nbiome_sise = 3\n"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("Decode() = %v, want INVALID_CONFIG", err)
	}
	if !strings.Contains(err.Error(), "world.biome_sise") {
		t.Errorf("error %q should name the key", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	cfg := testDefault(t)
	cfg.World.Seed = 99
	cfg.Server.WriteTimeout = Duration{time.Minute}

	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(string(data), `write_timeout = "1m0s"`) {
		t.Errorf("durations should encode as strings:\n%s", data)
	}

	got := &Config{}
	if err := got.Decode(data); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.World.Seed != 99 || got.Server.WriteTimeout.Duration != time.Minute {
		t.Errorf("decoded = %+v", got)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := testDefault(t)
	env := map[string]string{
		"GENLAYER_SEED":           "12345",
		"GENLAYER_RIVER_SIZE":     "2",
		"GENLAYER_LEGACY_SEEDING": "true",
		"GENLAYER_CACHE_BACKEND":  "none",
		"GENLAYER_READ_TIMEOUT":   "250ms",
		"GENLAYER_LOG_LEVEL":      "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}
	if cfg.World.Seed != 12345 || cfg.World.RiverSize != 2 || !cfg.World.LegacySeeding {
		t.Errorf("world = %+v", cfg.World)
	}
	if cfg.Cache.Backend != cache.BackendNone {
		t.Errorf("backend = %q", cfg.Cache.Backend)
	}
	if cfg.Server.ReadTimeout.Duration != 250*time.Millisecond {
		t.Errorf("read timeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("empty value should be ignored, level = %q", cfg.Log.Level)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	cfg := testDefault(t)
	lookup := func(k string) (string, bool) {
		if k == "GENLAYER_BIOME_SIZE" {
			return "big", true
		}
		return "", false
	}
	err := cfg.ApplyEnv(lookup)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("ApplyEnv() = %v, want INVALID_CONFIG", err)
	}
	if !strings.Contains(err.Error(), "GENLAYER_BIOME_SIZE") {
		t.Errorf("error %q should name the variable", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   errors.Code
	}{
		{"zero biome size", func(c *Config) { c.World.BiomeSize = 0 }, errors.ErrCodeInvalidSize},
		{"unknown world type", func(c *Config) { c.World.Type = "flat" }, errors.ErrCodeUnknownWorldType},
		{"unknown fixed biome", func(c *Config) { c.World.FixedBiome = "void" }, errors.ErrCodeUnknownBiome},
		{"negative workers", func(c *Config) { c.Area.Workers = -1 }, errors.ErrCodeInvalidConfig},
		{"tiny cache base", func(c *Config) { c.Area.CacheBase = 1 }, errors.ErrCodeInvalidConfig},
		{"tiny cache limit", func(c *Config) { c.Area.CacheLimit = 4 }, errors.ErrCodeInvalidConfig},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "s3" }, errors.ErrCodeInvalidConfig},
		{"redis without addr", func(c *Config) { c.Cache.Backend = cache.BackendRedis }, errors.ErrCodeInvalidConfig},
		{"mongo without uri", func(c *Config) { c.Cache.Backend = cache.BackendMongo }, errors.ErrCodeInvalidConfig},
		{"file without dir", func(c *Config) { c.Cache.Dir = "" }, errors.ErrCodeInvalidConfig},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, errors.ErrCodeInvalidConfig},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testDefault(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestValidateCacheFloor(t *testing.T) {
	cfg := testDefault(t)
	cfg.Area.CacheBase, cfg.Area.CacheLimit = pipeline.MinCacheBase, pipeline.MinCacheLimit
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() at the cache floor = %v", err)
	}

	cfg.Area.CacheBase, cfg.Area.CacheLimit = 0, 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with unset cache sizes = %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("GENLAYER_SEED", "7")

	path := filepath.Join(t.TempDir(), "genlayer.toml")
	if err := os.WriteFile(path, []byte("[world]\nseed = 3\nriver_size = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.World.Seed != 7 {
		t.Errorf("seed = %d, environment should win over the file", cfg.World.Seed)
	}
	if cfg.World.RiverSize != 5 {
		t.Errorf("river size = %d, want 5 from file", cfg.World.RiverSize)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	if _, err := Load(""); err != nil {
		t.Errorf("Load(\"\") without a default file should succeed, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) = %v, want INVALID_CONFIG", err)
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if want := filepath.Join(dir, "genlayer", "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestConversions(t *testing.T) {
	cfg := testDefault(t)
	cfg.World.LegacySeeding = true
	cfg.Area.Workers = 3

	if s := cfg.Settings(); s.WorldType != cfg.World.Type || s.RiverSize != cfg.World.RiverSize {
		t.Errorf("Settings() = %+v", s)
	}
	opts := cfg.PipelineOptions(nil)
	if !opts.LegacySeeding || opts.Workers != 3 {
		t.Errorf("PipelineOptions() = %+v", opts)
	}
	if co := cfg.CacheOptions(); co.Backend != cache.BackendFile || co.Dir != cfg.Cache.Dir {
		t.Errorf("CacheOptions() = %+v", co)
	}
}

func TestKeyerPrefix(t *testing.T) {
	cfg := testDefault(t)
	opts := cache.RegionKeyOpts{Chain: "zoomed", Width: 4, Height: 4, Step: 1, Scale: 1, Format: "json"}
	plain := cfg.Keyer().RegionKey("world", opts)

	cfg.Cache.KeyPrefix = "staging:"
	scoped := cfg.Keyer().RegionKey("world", opts)
	if scoped != "staging:"+plain {
		t.Errorf("scoped key = %q, want prefix on %q", scoped, plain)
	}
}
