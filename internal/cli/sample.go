package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/pipeline"
	"github.com/matzehuels/genlayer/pkg/render/raster"
)

// sampleCommand creates the command that looks up one coordinate.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		x, z   int
		chain  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the biome at one coordinate",
		Example: `  genlayer sample --seed 12345 --x 100 --z -40
  genlayer sample --chain biomes --x 25 --z -10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			q := c.request()
			q.X, q.Z, q.Chain = x, z, chain
			res, err := runner.Sample(ctx, q)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printSample(c, res)
			return nil
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "x coordinate")
	cmd.Flags().IntVar(&z, "z", 0, "z coordinate")
	cmd.Flags().StringVar(&chain, "chain", pipeline.ChainZoomed, "chain: zoomed, biomes, legacy or a branch name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func printSample(c *CLI, res *pipeline.SampleResult) {
	palette := raster.RegistryPalette(biome.Default())
	printKeyValue("world", fmt.Sprintf("seed %d · %s", c.Config.World.Seed, c.Config.World.Type))
	printKeyValue("chain", res.Chain)
	printKeyValue("position", fmt.Sprintf("%d, %d", res.X, res.Z))
	printKeyValue("biome", biomeLabel(palette, res.Biome))
	if res.Biome.Category != "" {
		printKeyValue("category", string(res.Biome.Category))
	}
	printKeyValue("session", res.Session)
}
