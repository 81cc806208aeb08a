package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; "-" writes to stdout
	format  string // png or json; inferred from the output extension when empty
	chain   string
	x, z    int // north-west corner
	width   int // cells per row
	height  int // rows
	step    int // blocks between samples
	scale   int // PNG pixels per cell
	refresh bool
}

// renderCommand creates the command that renders a region to a file.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		width:  pipeline.DefaultRegionSize,
		height: pipeline.DefaultRegionSize,
		step:   1,
		scale:  2,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a region of the world to PNG or JSON",
		Example: `  genlayer render -o map.png --width 512 --height 512
  genlayer render -o biomes.json --chain biomes --x -64 --z -64 --width 128 --height 128
  genlayer render -o overview.png --step 16 --scale 1 --width 1024 --height 1024`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := inferFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			return c.runRender(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "map.png", `output file ("-" for stdout)`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png, json (default from output extension)")
	cmd.Flags().StringVar(&opts.chain, "chain", pipeline.ChainZoomed, "chain: zoomed, biomes, legacy or a branch name")
	cmd.Flags().IntVar(&opts.x, "x", 0, "x coordinate of the north-west corner")
	cmd.Flags().IntVar(&opts.z, "z", 0, "z coordinate of the north-west corner")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "region width in cells")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "region height in cells")
	cmd.Flags().IntVar(&opts.step, "step", opts.step, "blocks between samples")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "PNG pixels per cell")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached regions")

	return cmd
}

// inferFormat returns format, or the format implied by the output file
// extension when format is empty.
func inferFormat(format, output string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".json":
			format = pipeline.FormatJSON
		default:
			format = pipeline.FormatPNG
		}
	}
	if err := errors.ValidateFormat(format, pipeline.RegionFormats...); err != nil {
		return "", err
	}
	return format, nil
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	q := c.request()
	q.Chain = opts.chain
	q.X, q.Z = opts.x, opts.z
	q.Width, q.Height = opts.width, opts.height
	q.Step, q.Scale = opts.step, opts.scale
	q.Format = opts.format
	q.Refresh = opts.refresh

	prog := newProgress(logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Sampling %dx%d cells...", q.Width, q.Height))
	spinner.Start()
	start := time.Now()
	res, err := runner.Execute(ctx, q)
	if err != nil {
		if spinner.Stop(); !spinner.Cancelled() {
			printError("Render failed: %s", errors.UserMessage(err))
		}
		return err
	}
	prog.done("Rendered region", "chain", q.Chain, "cells", res.Stats.Cells)

	if opts.output == "-" {
		spinner.Stop()
		_, err := cmd.OutOrStdout().Write(res.Data)
		return err
	}
	if err := os.WriteFile(opts.output, res.Data, 0o644); err != nil {
		spinner.StopWithError("Write failed")
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	spinner.StopWithSuccess(fmt.Sprintf("Rendered %s region at (%d, %d)", q.Chain, q.X, q.Z))
	printRegionStats(regionStats{
		cells:   res.Stats.Cells,
		layers:  res.Stats.LayerCount,
		elapsed: time.Since(start),
		cached:  res.CacheInfo.RegionHit,
	})
	printFile(opts.output)
	if opts.format == pipeline.FormatPNG {
		printNextStep("Explore interactively", fmt.Sprintf("genlayer explore --seed %d", c.Config.World.Seed))
	}
	return nil
}
