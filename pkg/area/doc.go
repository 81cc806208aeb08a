// Package area provides the lazily evaluated, cached 2D sampling surfaces
// that generation layers read from and write to.
//
// An [Area] is a logically infinite grid of int cell codes. Cells are computed
// on first access by a generator [Func] (which usually samples one or two
// upstream areas) and memoized in a bounded least-recently-used cache.
// Concurrent misses for the same coordinate are coalesced so the generator
// runs at most once per cached cell:
//
//	a := area.New("zoom", 100, func(x, z int) int {
//	    return parent.Sample(x>>1, z>>1)
//	})
//	v := a.Sample(10, -3)
//
// Evicted cells are simply recomputed on the next access. Because every
// generator is a pure function of its coordinate, a recomputed cell always
// equals the value returned before eviction.
//
// [Area.Stats] exposes hit, miss and computation counters for tests and
// diagnostics.
package area
