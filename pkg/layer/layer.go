package layer

import (
	"fmt"

	"github.com/matzehuels/genlayer/pkg/area"
	"github.com/matzehuels/genlayer/pkg/rng"
)

// Layer is one generation rule.
type Layer interface {
	// Name identifies the rule in logs and layer graphs.
	Name() string
	// Arity is the number of upstream samplers Apply expects.
	Arity() int
	// Apply binds the rule to its random context and upstream samplers.
	Apply(ctx rng.Context, in ...area.Sampler) area.Func
}

// CheckArity returns an error if in does not match l's arity.
func CheckArity(l Layer, in []area.Sampler) error {
	if len(in) != l.Arity() {
		return fmt.Errorf("layer %s: expected %d inputs, got %d", l.Name(), l.Arity(), len(in))
	}
	for i, s := range in {
		if s == nil {
			return fmt.Errorf("layer %s: input %d is nil", l.Name(), i)
		}
	}
	return nil
}

func mustArity(l Layer, in []area.Sampler) {
	if err := CheckArity(l, in); err != nil {
		panic(err)
	}
}

// SourceFunc computes a cell from nothing but its coordinate and stream.
type SourceFunc func(s *rng.Stream, x, z int) int

// PixelFunc transforms the parent cell at the same coordinate.
type PixelFunc func(s *rng.Stream, v int) int

// CastleFunc transforms a cell given its north, east, south and west
// neighbours and its own value c.
type CastleFunc func(s *rng.Stream, n, e, so, w, c int) int

// BishopFunc transforms a cell given its diagonal neighbours (south-west,
// south-east, north-east, north-west) and its own value c.
type BishopFunc func(s *rng.Stream, sw, se, ne, nw, c int) int

// Source wraps a zero-input rule.
func Source(name string, fn SourceFunc) Layer { return sourceLayer{name, fn} }

// Pixel wraps a centre-only rule.
func Pixel(name string, fn PixelFunc) Layer { return pixelLayer{name, fn} }

// Castle wraps an orthogonal-neighbourhood rule.
func Castle(name string, fn CastleFunc) Layer { return castleLayer{name, fn} }

// Bishop wraps a diagonal-neighbourhood rule.
func Bishop(name string, fn BishopFunc) Layer { return bishopLayer{name, fn} }

type sourceLayer struct {
	name string
	fn   SourceFunc
}

func (l sourceLayer) Name() string { return l.name }
func (l sourceLayer) Arity() int   { return 0 }

func (l sourceLayer) Apply(ctx rng.Context, in ...area.Sampler) area.Func {
	mustArity(l, in)
	return func(x, z int) int {
		s := ctx.At(x, z)
		return l.fn(&s, x, z)
	}
}

type pixelLayer struct {
	name string
	fn   PixelFunc
}

func (l pixelLayer) Name() string { return l.name }
func (l pixelLayer) Arity() int   { return 1 }

func (l pixelLayer) Apply(ctx rng.Context, in ...area.Sampler) area.Func {
	mustArity(l, in)
	parent := in[0]
	return func(x, z int) int {
		s := ctx.At(x, z)
		return l.fn(&s, parent.Sample(x, z))
	}
}

type castleLayer struct {
	name string
	fn   CastleFunc
}

func (l castleLayer) Name() string { return l.name }
func (l castleLayer) Arity() int   { return 1 }

func (l castleLayer) Apply(ctx rng.Context, in ...area.Sampler) area.Func {
	mustArity(l, in)
	parent := in[0]
	return func(x, z int) int {
		n := parent.Sample(x, z-1)
		e := parent.Sample(x+1, z)
		so := parent.Sample(x, z+1)
		w := parent.Sample(x-1, z)
		c := parent.Sample(x, z)
		s := ctx.At(x, z)
		return l.fn(&s, n, e, so, w, c)
	}
}

type bishopLayer struct {
	name string
	fn   BishopFunc
}

func (l bishopLayer) Name() string { return l.name }
func (l bishopLayer) Arity() int   { return 1 }

func (l bishopLayer) Apply(ctx rng.Context, in ...area.Sampler) area.Func {
	mustArity(l, in)
	parent := in[0]
	return func(x, z int) int {
		sw := parent.Sample(x-1, z+1)
		se := parent.Sample(x+1, z+1)
		ne := parent.Sample(x+1, z-1)
		nw := parent.Sample(x-1, z-1)
		c := parent.Sample(x, z)
		s := ctx.At(x, z)
		return l.fn(&s, sw, se, ne, nw, c)
	}
}

// any4 reports whether pred holds for any of the four values.
func any4(pred func(int) bool, a, b, c, d int) bool {
	return pred(a) || pred(b) || pred(c) || pred(d)
}

// all4 reports whether pred holds for all four values.
func all4(pred func(int) bool, a, b, c, d int) bool {
	return pred(a) && pred(b) && pred(c) && pred(d)
}

func oneOf(v int, set ...int) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
