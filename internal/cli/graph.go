package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/pipeline"
)

// graphCommand creates the command that renders the layer graph of a world.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the layer graph as DOT, SVG or JSON",
		Long: `Render the layer graph of the configured world.

Every node is one layer application; edges run from a layer's inputs to
the layer. Rows are assigned by depth, so forks and joins of the river,
ocean and biome branches are visible side by side.`,
		Example: `  genlayer graph -o layers.svg
  genlayer graph -o layers.dot --detailed
  genlayer graph -f json -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
			}
			if err := errors.ValidateFormat(format, pipeline.TopologyFormats...); err != nil {
				return err
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			sess, err := runner.Session(ctx, c.Config.World.Seed, c.Config.Settings())
			if err != nil {
				return err
			}
			data, err := runner.Topology(ctx, sess.Seed, sess.Settings, format, detailed)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Rendered layer graph")
			printDetail("%d layers · depth %d", sess.Chains.Graph.Len(), sess.Chains.Graph.Depth())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "layers.svg", `output file ("-" for stdout)`)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot, svg, json (default from output extension)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with index, modifier and cache size")

	return cmd
}
