package area

import (
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultSize is the cache size used when New is given a non-positive size.
const DefaultSize = 25

// Sampler is anything that yields a cell value for a coordinate.
type Sampler interface {
	Sample(x, z int) int
}

// Func computes the value of one cell.
type Func func(x, z int) int

// Sample lets a bare Func act as an uncached Sampler.
func (f Func) Sample(x, z int) int { return f(x, z) }

// Point is a grid coordinate.
type Point struct {
	X, Z int
}

// Stats is a snapshot of an area's cache counters.
type Stats struct {
	Hits         int64
	Misses       int64
	Computations int64
}

// Area is a memoizing Sampler. It is safe for concurrent use.
type Area struct {
	name  string
	size  int
	fn    Func
	cache *lru.Cache[Point, int]
	group singleflight.Group

	hits         atomic.Int64
	misses       atomic.Int64
	computations atomic.Int64
}

// New creates an area that caches up to size cells computed by fn.
func New(name string, size int, fn Func) *Area {
	if size <= 0 {
		size = DefaultSize
	}
	// lru.New only fails for non-positive sizes.
	cache, _ := lru.New[Point, int](size)
	return &Area{name: name, size: size, fn: fn, cache: cache}
}

// Name returns the name the area was created with.
func (a *Area) Name() string { return a.name }

// Size returns the maximum number of cached cells.
func (a *Area) Size() int { return a.size }

// Len returns the number of cells currently cached.
func (a *Area) Len() int { return a.cache.Len() }

// Sample returns the cell at (x, z), computing and caching it on a miss.
func (a *Area) Sample(x, z int) int {
	p := Point{x, z}
	if v, ok := a.cache.Get(p); ok {
		a.hits.Add(1)
		return v
	}
	a.misses.Add(1)

	key := strconv.Itoa(x) + ":" + strconv.Itoa(z)
	v, _, _ := a.group.Do(key, func() (any, error) {
		if v, ok := a.cache.Peek(p); ok {
			return v, nil
		}
		a.computations.Add(1)
		v := a.fn(x, z)
		a.cache.Add(p, v)
		return v, nil
	})
	return v.(int)
}

// Stats returns the current counters.
func (a *Area) Stats() Stats {
	return Stats{
		Hits:         a.hits.Load(),
		Misses:       a.misses.Load(),
		Computations: a.computations.Load(),
	}
}

// Purge drops every cached cell. Counters are kept.
func (a *Area) Purge() { a.cache.Purge() }
