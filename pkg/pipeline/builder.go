package pipeline

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/genlayer/pkg/area"
	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/layer"
	"github.com/matzehuels/genlayer/pkg/rng"
)

// Node is one layer application in a pipeline. It samples through its own
// cached area and is safe for concurrent use once built.
type Node struct {
	Index    int    // 1-based construction index
	Layer    string // layer name
	Modifier int64  // seed modifier
	Inputs   []int  // construction indexes of upstream nodes
	Depth    int    // longest path from a source layer, sources are 1

	area  *area.Area
	owner *Builder
}

// ID returns the node's unique name, "layer#index".
func (n *Node) ID() string { return n.area.Name() }

// Sample returns the cell value at (x, z).
func (n *Node) Sample(x, z int) int { return n.area.Sample(x, z) }

// CacheSize returns the capacity of the node's cell cache.
func (n *Node) CacheSize() int { return n.area.Size() }

// Stats returns the node's cache counters.
func (n *Node) Stats() area.Stats { return n.area.Stats() }

// Graph is the arena of nodes recorded by a Builder, in construction order.
type Graph struct {
	nodes []*Node
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns the nodes in construction order.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Node returns the node with the given 1-based construction index.
func (g *Graph) Node(index int) (*Node, bool) {
	if index < 1 || index > len(g.nodes) {
		return nil, false
	}
	return g.nodes[index-1], true
}

// Depth returns the longest source-to-node path length.
func (g *Graph) Depth() int {
	d := 0
	for _, n := range g.nodes {
		d = max(d, n.Depth)
	}
	return d
}

// Stats sums the cache counters of every node.
func (g *Graph) Stats() area.Stats {
	var s area.Stats
	for _, n := range g.nodes {
		ns := n.Stats()
		s.Hits += ns.Hits
		s.Misses += ns.Misses
		s.Computations += ns.Computations
	}
	return s
}

// Purge drops the cached cells of every layer. Values are unchanged; the
// next samples recompute them.
func (g *Graph) Purge() {
	for _, n := range g.nodes {
		n.area.Purge()
	}
}

// Builder applies layers in construction order. The first failure is
// sticky: later Apply calls return nil and Err reports the original error,
// so chain code can be written straight through and checked once.
type Builder struct {
	seed   int64
	opts   Options
	index  int
	graph  *Graph
	err    error
	logger *log.Logger
}

// NewBuilder creates a builder for the world seed.
func NewBuilder(seed int64, opts Options) *Builder {
	opts.SetDefaults()
	return &Builder{
		seed:   seed,
		opts:   opts,
		graph:  &Graph{},
		logger: opts.Logger,
	}
}

// Seed returns the world seed.
func (b *Builder) Seed() int64 { return b.seed }

// Registry returns the biome catalog layers should consult.
func (b *Builder) Registry() *biome.Registry { return b.opts.Registry }

// Graph returns the arena recorded so far.
func (b *Builder) Graph() *Graph { return b.graph }

// Err returns the first error encountered by Apply.
func (b *Builder) Err() error { return b.err }

// Apply binds l to the next construction index and the given modifier over
// the inputs, and returns the new node.
func (b *Builder) Apply(l layer.Layer, modifier int64, in ...*Node) *Node {
	if b.err != nil {
		return nil
	}
	if len(in) != l.Arity() {
		b.err = errors.New(errors.ErrCodeInvalidConfig, "layer %s: expected %d inputs, got %d", l.Name(), l.Arity(), len(in))
		return nil
	}

	samplers := make([]area.Sampler, len(in))
	inputs := make([]int, len(in))
	depth, upstream := 0, 0
	for i, n := range in {
		if n == nil {
			b.err = errors.New(errors.ErrCodeInvalidConfig, "layer %s: input %d is nil", l.Name(), i)
			return nil
		}
		if n.owner != b {
			b.err = errors.New(errors.ErrCodeInvalidConfig, "layer %s: input %s belongs to another builder", l.Name(), n.ID())
			return nil
		}
		samplers[i] = n
		inputs[i] = n.Index
		depth = max(depth, n.Depth)
		upstream = max(upstream, n.CacheSize())
	}
	if depth+1 > MaxDepth {
		b.err = errors.New(errors.ErrCodeInvalidConfig, "layer %s: pipeline deeper than %d layers", l.Name(), MaxDepth)
		return nil
	}

	b.index++
	ctx := b.derive(modifier)
	size := b.opts.CacheBase
	if upstream > 0 {
		size = min(b.opts.CacheLimit, upstream*4)
	}

	n := &Node{
		Index:    b.index,
		Layer:    l.Name(),
		Modifier: modifier,
		Inputs:   inputs,
		Depth:    depth + 1,
		area:     area.New(fmt.Sprintf("%s#%d", l.Name(), b.index), size, l.Apply(ctx, samplers...)),
		owner:    b,
	}
	b.graph.nodes = append(b.graph.nodes, n)

	b.logger.Debug("layer",
		"index", n.Index,
		"name", n.Layer,
		"modifier", modifier,
		"inputs", inputs,
		"cache", size)
	return n
}

// Repeat applies l count times, with modifiers base, base+1, ...
func (b *Builder) Repeat(base int64, l layer.Layer, in *Node, count int) *Node {
	for i := range count {
		in = b.Apply(l, base+int64(i), in)
	}
	return in
}

func (b *Builder) derive(modifier int64) rng.Context {
	if b.opts.LegacySeeding {
		return rng.DeriveLegacy(b.seed, b.index, modifier)
	}
	return rng.Derive(b.seed, b.index, modifier)
}
