// Package cli implements the genlayer command-line interface.
//
// The commands sample, render and explore a generated world, render its
// layer graph, serve it over HTTP and manage the region cache and the
// configuration file. The CLI is built on cobra; output uses lipgloss
// styles and logging goes through charmbracelet/log.
//
// # World Selection
//
// Every command shares the persistent world flags (--seed, --world-type,
// --biome-size, --river-size, --fixed-biome, --legacy-seeding). They override
// the configuration file and GENLAYER_* environment variables, see
// package config.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one line per constructed layer.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/genlayer/pkg/buildinfo"
	"github.com/matzehuels/genlayer/pkg/cache"
	"github.com/matzehuels/genlayer/pkg/config"
	"github.com/matzehuels/genlayer/pkg/observability"
	"github.com/matzehuels/genlayer/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "genlayer"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Config is the merged configuration. It is loaded before any command
	// runs.
	Config *config.Config

	flags globalFlags
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath    string
	seed          int64
	worldType     string
	biomeSize     int
	riverSize     int
	fixedBiome    string
	legacySeeding bool
	noCache       bool
	verbose       bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "genlayer generates infinite layered biome maps",
		Long:              `genlayer builds a deterministic pipeline of grid layers from a world seed and answers biome queries for any coordinate without materializing the map.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/genlayer/config.toml)")
	pf.Int64Var(&c.flags.seed, "seed", 0, "world seed")
	pf.StringVar(&c.flags.worldType, "world-type", "", "world type: default, large_biomes, default_1_1")
	pf.IntVar(&c.flags.biomeSize, "biome-size", 0, "biome zoom rounds (>= 1)")
	pf.IntVar(&c.flags.riverSize, "river-size", 0, "river zoom rounds (>= 1)")
	pf.StringVar(&c.flags.fixedBiome, "fixed-biome", "", "replace every land biome with this biome")
	pf.BoolVar(&c.flags.legacySeeding, "legacy-seeding", false, "derive layer seeds without the construction index")
	pf.BoolVar(&c.flags.noCache, "no-cache", false, "disable the region cache")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig merges defaults, the config file, the environment and the
// flags that were set explicitly, then attaches the logger to the context.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.World.Seed = c.flags.seed
	}
	if flags.Changed("world-type") {
		cfg.World.Type = c.flags.worldType
	}
	if flags.Changed("biome-size") {
		cfg.World.BiomeSize = c.flags.biomeSize
	}
	if flags.Changed("river-size") {
		cfg.World.RiverSize = c.flags.riverSize
	}
	if flags.Changed("fixed-biome") {
		cfg.World.FixedBiome = c.flags.fixedBiome
	}
	if flags.Changed("legacy-seeding") {
		cfg.World.LegacySeeding = c.flags.legacySeeding
	}
	if c.flags.noCache {
		cfg.Cache.Backend = cache.BackendNone
	}
	c.Config = cfg

	level := cfg.LogLevel()
	if c.flags.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	if level == LogDebug {
		observability.NewLogHooks(c.Logger).Install()
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner validates the configuration and creates a pipeline runner for
// CLI use. A cache backend that cannot be reached degrades to no caching.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}
	store, err := cache.Open(ctx, c.Config.CacheOptions())
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "backend", c.Config.Cache.Backend, "error", err)
		store = cache.NewNullCache()
	}
	runner := pipeline.NewRunner(store, c.Config.Keyer(), c.Logger)
	return runner.WithOptions(c.Config.PipelineOptions(c.Logger)), nil
}

// request returns a region request for the configured world.
func (c *CLI) request() pipeline.Request {
	return pipeline.Request{
		Seed:     c.Config.World.Seed,
		Settings: c.Config.Settings(),
	}
}
