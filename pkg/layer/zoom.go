package layer

import (
	"github.com/matzehuels/genlayer/pkg/area"
	"github.com/matzehuels/genlayer/pkg/rng"
)

// ZoomMode selects how the centre cell of a 2x2 block is filled.
type ZoomMode int

const (
	// ZoomNormal prefers the majority of the four parents.
	ZoomNormal ZoomMode = iota
	// ZoomFuzzy always picks one of the four parents at random.
	ZoomFuzzy
)

// ZoomLayer doubles the resolution of its parent.
type ZoomLayer struct {
	Mode ZoomMode
}

// Zoom is the majority-preferring zoom.
var Zoom Layer = ZoomLayer{Mode: ZoomNormal}

// FuzzyZoom picks centres at random; used once at the start of the land/sea
// chain so the seed island does not stay axis aligned.
var FuzzyZoom Layer = ZoomLayer{Mode: ZoomFuzzy}

func (l ZoomLayer) Name() string {
	if l.Mode == ZoomFuzzy {
		return "zoom_fuzzy"
	}
	return "zoom"
}

func (ZoomLayer) Arity() int { return 1 }

// Apply returns the zoom generator. Output (x, z) belongs to parent
// (x>>1, z>>1); the stream is positioned at the block's even corner so all
// four cells of a block share one sequence.
func (l ZoomLayer) Apply(ctx rng.Context, in ...area.Sampler) area.Func {
	mustArity(l, in)
	parent := in[0]
	return func(x, z int) int {
		px, pz := x>>1, z>>1
		a := parent.Sample(px, pz)
		s := ctx.At(px<<1, pz<<1)
		ox, oz := x&1, z&1
		if ox == 0 && oz == 0 {
			return a
		}

		c := parent.Sample(px, (z+1)>>1)
		south := s.Choose2(a, c)
		if ox == 0 && oz == 1 {
			return south
		}

		b := parent.Sample((x+1)>>1, pz)
		east := s.Choose2(a, b)
		if ox == 1 && oz == 0 {
			return east
		}

		d := parent.Sample((x+1)>>1, (z+1)>>1)
		if l.Mode == ZoomFuzzy {
			return s.Choose4(a, b, c, d)
		}
		return majority(&s, a, b, c, d)
	}
}

// majority returns the value shared by most of a, b, c, d, preferring a on
// ties, and falls back to a random pick when all four differ.
func majority(s *rng.Stream, a, b, c, d int) int {
	switch {
	case b == c && c == d:
		return b
	case a == b && a == c:
		return a
	case a == b && a == d:
		return a
	case a == c && a == d:
		return a
	case a == b && c != d:
		return a
	case a == c && b != d:
		return a
	case a == d && b != c:
		return a
	case b == c && a != d:
		return b
	case b == d && a != c:
		return b
	case c == d && a != b:
		return c
	}
	return s.Choose4(a, b, c, d)
}

// Voronoi jitter in fixed point. A parent cell spans 4 output cells; one
// output cell is voronoiUnit units. Draws in [0, 1024) map to a jitter of
// (r-512)*voronoiJitter units, i.e. +/-1.8 cells.
const (
	voronoiUnit   = 2560
	voronoiJitter = 9
	voronoiCell   = 4 * voronoiUnit
)

// VoronoiZoom quadruples the resolution of its parent. Each parent cell gets
// a feature point jittered around its corner; every output cell takes the
// value of the parent whose feature point is nearest. The arithmetic is
// exact integer math so results do not depend on floating point rounding.
var VoronoiZoom Layer = voronoiLayer{}

type voronoiLayer struct{}

func (voronoiLayer) Name() string { return "voronoi_zoom" }
func (voronoiLayer) Arity() int   { return 1 }

func (l voronoiLayer) Apply(ctx rng.Context, in ...area.Sampler) area.Func {
	mustArity(l, in)
	parent := in[0]

	// jitter returns the feature point of the corner at (cx, cz) relative
	// to the block origin, offset by (ox, oz) whole parent cells.
	jitter := func(cx, cz int, ox, oz int64) (int64, int64) {
		s := ctx.At(cx, cz)
		jx := int64(s.Next(1024)-512)*voronoiJitter + ox*voronoiCell
		jz := int64(s.Next(1024)-512)*voronoiJitter + oz*voronoiCell
		return jx, jz
	}

	return func(x, z int) int {
		i, j := x-2, z-2
		k, m := i>>2, j>>2
		bx, bz := k<<2, m<<2

		x0, z0 := jitter(bx, bz, 0, 0)
		x1, z1 := jitter(bx+4, bz, 1, 0)
		x2, z2 := jitter(bx, bz+4, 0, 1)
		x3, z3 := jitter(bx+4, bz+4, 1, 1)

		fx := int64(i&3) * voronoiUnit
		fz := int64(j&3) * voronoiUnit
		dist := func(px, pz int64) int64 {
			dx, dz := fx-px, fz-pz
			return dx*dx + dz*dz
		}
		d0, d1, d2, d3 := dist(x0, z0), dist(x1, z1), dist(x2, z2), dist(x3, z3)

		switch {
		case d0 < d1 && d0 < d2 && d0 < d3:
			return parent.Sample(k, m)
		case d1 < d0 && d1 < d2 && d1 < d3:
			return parent.Sample(k+1, m)
		case d2 < d0 && d2 < d1 && d2 < d3:
			return parent.Sample(k, m+1)
		}
		return parent.Sample(k+1, m+1)
	}
}
