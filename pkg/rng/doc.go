// Package rng derives the deterministic random streams that drive every
// generation layer.
//
// # Overview
//
// Each layer instance in a pipeline owns one [Context], derived once at
// construction time from the world seed, the layer's position in the
// construction order (its index) and a per-call seed modifier. Sampling a
// coordinate positions a fresh [Stream] at that coordinate with [Context.At];
// the stream then yields bounded integers with [Stream.Next].
//
//	ctx := rng.Derive(worldSeed, 3, 2001)
//	s := ctx.At(x, z)
//	if s.Next(10) == 0 {
//	    // 1 in 10
//	}
//
// # Determinism
//
// All arithmetic is 64-bit two's complement integer arithmetic (Go defines
// signed overflow as wrapping), so the same inputs produce bit-identical
// streams on every platform. No floating point and no time-based entropy
// are involved.
//
// # Seeding Modes
//
// [Derive] folds the layer index into the layer seed so two layers sharing a
// modifier constant still get distinct streams. [DeriveLegacy] skips the fold
// and reproduces the classic derivation, where only the modifier and world
// seed contribute.
//
// # Concurrency
//
// [Context] and [Stream] are plain values. A Context is never mutated after
// derivation, and each query gets its own Stream, so concurrent sampling never
// shares random state.
package rng
