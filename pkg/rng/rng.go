package rng

// LCG multiplier and increment used by every scramble step.
const (
	multiplier = 6364136223846793005
	increment  = 1442695040888963407
)

// Scramble advances seed s by one LCG step salted with v.
func Scramble(s, v int64) int64 {
	return s*(s*multiplier+increment) + v
}

// Context is the immutable per-layer random source.
type Context struct {
	// WorldSeed is the raw world seed, for layers that seed external noise.
	WorldSeed int64
	// Index is the layer's position in construction order (1-based).
	Index int
	// Modifier is the seed modifier the layer was constructed with.
	Modifier int64

	seed int64
}

// Derive returns the context for the layer at construction position index
// with the given seed modifier. The index is folded into the layer seed.
func Derive(worldSeed int64, index int, modifier int64) Context {
	layer := layerSeed(modifier)
	layer = Scramble(layer, int64(index))
	return Context{
		WorldSeed: worldSeed,
		Index:     index,
		Modifier:  modifier,
		seed:      mix(worldSeed, layer),
	}
}

// DeriveLegacy returns the context using the classic derivation, which
// ignores the layer index. Layers sharing a modifier share a stream.
func DeriveLegacy(worldSeed int64, index int, modifier int64) Context {
	return Context{
		WorldSeed: worldSeed,
		Index:     index,
		Modifier:  modifier,
		seed:      mix(worldSeed, layerSeed(modifier)),
	}
}

func layerSeed(modifier int64) int64 {
	s := modifier
	for range 3 {
		s = Scramble(s, modifier)
	}
	return s
}

func mix(world, layer int64) int64 {
	s := world
	for range 3 {
		s = Scramble(s, layer)
	}
	return s
}

// Seed returns the combined world/layer seed.
func (c Context) Seed() int64 { return c.seed }

// At returns a stream positioned at (x, z).
func (c Context) At(x, z int) Stream {
	pos := Scramble(c.seed, int64(x))
	pos = Scramble(pos, int64(z))
	pos = Scramble(pos, int64(x))
	pos = Scramble(pos, int64(z))
	return Stream{seed: c.seed, pos: pos}
}

// Stream is a positioned random sequence. Streams are values; copying one
// forks the sequence.
type Stream struct {
	seed int64
	pos  int64
}

// Next returns an integer in [0, bound) and advances the stream.
// It panics if bound is not positive.
func (s *Stream) Next(bound int) int {
	if bound <= 0 {
		panic("rng: bound must be positive")
	}
	i := int((s.pos >> 24) % int64(bound))
	if i < 0 {
		i += bound
	}
	s.pos = Scramble(s.pos, s.seed)
	return i
}

// Choose2 returns a or b with equal probability, consuming one draw.
func (s *Stream) Choose2(a, b int) int {
	if s.Next(2) == 0 {
		return a
	}
	return b
}

// Choose4 returns one of a, b, c, d with equal probability, consuming one draw.
func (s *Stream) Choose4(a, b, c, d int) int {
	switch s.Next(4) {
	case 0:
		return a
	case 1:
		return b
	case 2:
		return c
	default:
		return d
	}
}
