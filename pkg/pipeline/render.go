package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/render/nodelink"
	"github.com/matzehuels/genlayer/pkg/render/raster"
)

// Region and topology output formats.
const (
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// RegionFormats are the encodings accepted for regions.
var RegionFormats = []string{FormatJSON, FormatPNG}

// TopologyFormats are the encodings accepted for layer topologies.
var TopologyFormats = []string{FormatJSON, FormatDOT, FormatSVG}

// EncodeRegion encodes r as JSON or as a PNG with scale pixels per cell.
func EncodeRegion(r *Region, format string, reg *biome.Registry, scale int) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.Marshal(r)
	case FormatPNG:
		return raster.RenderPNG(r.Cells, r.Width, r.Height, raster.Options{
			Palette: raster.RegistryPalette(reg),
			Scale:   scale,
		})
	}
	return nil, errors.ValidateFormat(format, RegionFormats...)
}

// DecodeRegion decodes a JSON-encoded region.
func DecodeRegion(data []byte) (*Region, error) {
	var r Region
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode region: %w", err)
	}
	if len(r.Cells) != r.Width*r.Height {
		return nil, fmt.Errorf("decode region: %d cells for %dx%d", len(r.Cells), r.Width, r.Height)
	}
	return &r, nil
}

// EncodeTopology encodes a layer arena as JSON, DOT or SVG.
func EncodeTopology(ctx context.Context, g *Graph, format string, detailed bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(g.Topology(), "", "  ")
	case FormatDOT:
		return []byte(nodelink.ToDOT(g.ToDAG(), nodelink.Options{Detailed: detailed})), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(g.ToDAG(), nodelink.Options{Detailed: detailed}))
	}
	return nil, errors.ValidateFormat(format, TopologyFormats...)
}
