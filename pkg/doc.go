// Package pkg provides the core libraries for genlayer, a deterministic
// and infinite biome map generator.
//
// # Overview
//
// A world is a seed plus a few settings. From them genlayer builds a
// pipeline of grid layers, each answering "what is the value at (x, z)?"
// by querying its parents. Nothing is materialized up front, so any
// coordinate can be sampled at any time. The pkg directory is organized as:
//
//  1. [rng] - Seed derivation and positioned random streams
//  2. [area] - Memoizing samplers bound to one layer
//  3. [biome] - The biome catalog and its classification queries
//  4. [layer] - The generation rules (islands, climate, biomes, rivers, zooms)
//  5. [pipeline] - Chain construction, sessions, regions and the runner
//  6. [cache] - Region caches (file, Redis, MongoDB)
//  7. [render] - PNG and layer graph output
//
// # Architecture
//
// The typical data flow:
//
//	seed + settings
//	       ↓
//	[pipeline] BuildChains (one [layer] rule per node, each with its [rng] context)
//	       ↓
//	[area] samplers, chained parent to child
//	       ↓
//	Grid.Sample / Grid.Region
//	       ↓
//	JSON, PNG ([render/raster]) or layer graphs ([render/nodelink])
//
// # Quick Start
//
//	chains, err := pipeline.BuildChains(12345, pipeline.DefaultSettings(), pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	id := chains.Zoomed.Sample(100, -40)
//
// For repeated queries, wrap the pipeline in a [pipeline.Runner], which
// keeps built sessions and caches encoded regions.
package pkg
