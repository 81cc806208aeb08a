// Package layer implements the transform rules of the generation pipeline.
//
// # Overview
//
// A [Layer] turns zero, one or two upstream samplers plus its own
// [rng.Context] into a generator [area.Func]. The pipeline builder wraps each
// generator in a cached [area.Area] and feeds it to the next layer, so a
// single Sample call on the final area recursively resolves exactly the
// upstream cells it needs.
//
// Layers are queried at their output resolution and decide for themselves
// which upstream coordinates to read. Most rules read a fixed neighbourhood:
//
//   - castle: the four orthogonal neighbours and the centre
//   - bishop: the four diagonal neighbours and the centre
//   - pixel: the centre only
//
// # Land/Sea Codes
//
// Early layers work on climate codes rather than biomes: 0 is ocean, 1 warm,
// 2 temperate, 3 cold and 4 freezing. Bits 8-11 carry a "special" flag that
// [Biome] turns into a rarer biome of the same climate.
//
// # Random Draws
//
// Every rule positions its stream at the output coordinate (zoom layers use
// the even corner of the 2x2 block instead) and consumes draws in a fixed
// order. Reordering a draw, or drawing conditionally where the rule draws
// unconditionally, changes every downstream cell, so each rule documents
// when it draws.
//
// # Catalog
//
// Land and sea: [Island], [AddIsland], [RemoveTooMuchOcean],
// [AddMushroomIsland], [DeepOcean].
// Climate: [AddSnow], [CoolWarmEdge], [HeatIceEdge], [SpecialEdge].
// Resolution: [Zoom], [FuzzyZoom], [VoronoiZoom].
// Biomes: [Biome], [BiomeEdge], [Hills], [RareBiome], [Shore].
// Rivers: [RiverInit], [River], [Smooth], [RiverMix].
// Oceans: [Ocean], [MixOceans].
//
// [rng.Context]: github.com/matzehuels/genlayer/pkg/rng
// [area.Func]: github.com/matzehuels/genlayer/pkg/area
// [area.Area]: github.com/matzehuels/genlayer/pkg/area
package layer
