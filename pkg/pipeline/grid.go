package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/genlayer/pkg/area"
	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/errors"
)

// Grid is the query facade over one chain.
type Grid struct {
	name    string
	src     area.Sampler
	reg     *biome.Registry
	workers int
}

// NewGrid wraps src. A nil registry uses biome.Default(); workers <= 0
// samples regions on a single goroutine.
func NewGrid(name string, src area.Sampler, reg *biome.Registry, workers int) *Grid {
	if reg == nil {
		reg = biome.Default()
	}
	return &Grid{name: name, src: src, reg: reg, workers: max(workers, 1)}
}

// Name returns the chain name.
func (g *Grid) Name() string { return g.name }

// Sample returns the cell value at (x, z). Coordinates beyond
// errors.MaxCoordinate are a programming error and panic.
func (g *Grid) Sample(x, z int) int {
	if err := errors.ValidateCoordinate(x, z); err != nil {
		panic(err)
	}
	return g.src.Sample(x, z)
}

// Biome returns the catalog entry for the cell at (x, z). Codes that are
// not registered (for example river-init noise on a raw branch) come back
// with only ID and placeholder name set.
func (g *Grid) Biome(x, z int) biome.Biome {
	id := g.Sample(x, z)
	if b, ok := g.reg.Get(id); ok {
		return b
	}
	return biome.Biome{ID: id, Name: g.reg.Name(id), Parent: biome.NoParent}
}

// Region samples a width x height rectangle with its north-west corner at
// (x, z).
func (g *Grid) Region(ctx context.Context, x, z, width, height int) (*Region, error) {
	return g.SampledRegion(ctx, x, z, width, height, 1)
}

// SampledRegion samples width x height cells spaced step apart, starting
// at (x, z). Rows are fanned out over the grid's workers; ctx is checked
// before every row.
func (g *Grid) SampledRegion(ctx context.Context, x, z, width, height, step int) (*Region, error) {
	if step < 1 {
		return nil, errors.New(errors.ErrCodeInvalidRegion, "step must be >= 1, got %d", step)
	}
	if err := errors.ValidateRegion(x, z, width, height); err != nil {
		return nil, err
	}
	if step > 1 && (width-1 > errors.MaxCoordinate/step || height-1 > errors.MaxCoordinate/step) {
		return nil, errors.New(errors.ErrCodeCoordinateRange, "region %dx%d at step %d overflows", width, height, step)
	}
	if err := errors.ValidateCoordinate(x+(width-1)*step, z+(height-1)*step); err != nil {
		return nil, err
	}

	r := &Region{
		Chain:  g.name,
		X:      x,
		Z:      z,
		Width:  width,
		Height: height,
		Step:   step,
		Cells:  make([]int, width*height),
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for row := range height {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			wz := z + row*step
			cells := r.Cells[row*width : (row+1)*width]
			for col := range width {
				cells[col] = g.src.Sample(x+col*step, wz)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}

// Region is a rectangle of sampled cells in row-major order (z rows of x
// columns).
type Region struct {
	Chain  string `json:"chain"`
	X      int    `json:"x"`
	Z      int    `json:"z"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Step   int    `json:"step"`
	Cells  []int  `json:"cells"`
}

// At returns the cell in column col and row row.
func (r *Region) At(col, row int) int {
	return r.Cells[row*r.Width+col]
}

// Histogram counts occurrences of each cell value.
func (r *Region) Histogram() map[int]int {
	h := make(map[int]int)
	for _, c := range r.Cells {
		h[c]++
	}
	return h
}

func (r *Region) String() string {
	return fmt.Sprintf("%s[%d,%d %dx%d step %d]", r.Chain, r.X, r.Z, r.Width, r.Height, r.Step)
}
