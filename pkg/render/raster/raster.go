// Package raster renders grids of biome codes as images.
//
// Each cell becomes one pixel coloured by a [Palette], and the image is
// optionally scaled up with nearest-neighbour filtering so cell edges stay
// crisp:
//
//	png, err := raster.RenderPNG(region.Cells, region.Width, region.Height, raster.Options{
//	    Palette: raster.RegistryPalette(biome.Default()),
//	    Scale:   4,
//	})
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/genlayer/pkg/biome"
)

// MaxScale bounds the per-cell pixel size.
const MaxScale = 32

// Palette maps a cell code to a colour.
type Palette func(id int) color.NRGBA

// RegistryPalette colours registered biomes with their catalog colour and
// everything else with a stable hash-derived grey.
func RegistryPalette(reg *biome.Registry) Palette {
	colors := make(map[int]color.NRGBA, reg.Len())
	for _, b := range reg.All() {
		if c, err := ParseHex(b.Color); err == nil {
			colors[b.ID] = c
		}
	}
	return func(id int) color.NRGBA {
		if c, ok := colors[id]; ok {
			return c
		}
		return Fallback(id)
	}
}

// Fallback returns a stable grey for codes without a catalog colour.
func Fallback(id int) color.NRGBA {
	h := uint32(id) * 2654435761
	v := uint8(64 + h>>24%128)
	return color.NRGBA{R: v, G: v, B: v, A: 0xff}
}

// ParseHex parses "#rrggbb".
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Options configure rendering.
type Options struct {
	// Palette colours cells. Defaults to RegistryPalette(biome.Default()).
	Palette Palette
	// Scale is the pixel size of one cell. Defaults to 1.
	Scale int
}

// Image converts row-major cells into an image, one pixel per cell.
func Image(cells []int, width, height int, p Palette) (*image.NRGBA, error) {
	if width < 1 || height < 1 || len(cells) != width*height {
		return nil, fmt.Errorf("raster: %d cells do not form a %dx%d grid", len(cells), width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for row := range height {
		for col := range width {
			img.SetNRGBA(col, row, p(cells[row*width+col]))
		}
	}
	return img, nil
}

// RenderPNG renders cells to PNG bytes.
func RenderPNG(cells []int, width, height int, opts Options) ([]byte, error) {
	if opts.Palette == nil {
		opts.Palette = RegistryPalette(biome.Default())
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Scale > MaxScale {
		return nil, fmt.Errorf("raster: scale %d exceeds %d", opts.Scale, MaxScale)
	}

	img, err := Image(cells, width, height, opts.Palette)
	if err != nil {
		return nil, err
	}
	var out image.Image = img
	if opts.Scale > 1 {
		out = imaging.Resize(img, width*opts.Scale, height*opts.Scale, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("raster: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
