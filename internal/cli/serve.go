package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/genlayer/internal/server"
)

// serveCommand creates the command that serves the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve biome queries over HTTP",
		Long: `Serve the configured world over a read-only HTTP API.

Requests may name a different seed or world settings; built pipelines are
kept in memory and encoded regions go to the configured cache backend.`,
		Example: `  genlayer serve --addr :9000
  GENLAYER_CACHE_BACKEND=redis GENLAYER_REDIS_ADDR=localhost:6379 genlayer serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.Config.Server.Addr = addr
			}
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			cfg := c.Config.Server
			srv := server.New(runner, server.Options{
				Addr:           cfg.Addr,
				ReadTimeout:    cfg.ReadTimeout.Duration,
				WriteTimeout:   cfg.WriteTimeout.Duration,
				RequestTimeout: cfg.RequestTimeout.Duration,
				Seed:           c.Config.World.Seed,
				Settings:       c.Config.Settings(),
			}, c.Logger)

			printInfo("Listening on %s", cfg.Addr)
			if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			printSuccess("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
