// Package biome is the biome catalog the generation layers classify cells
// into.
//
// Biomes are identified by small integer IDs so they can be stored directly
// in grid cells. The package defines the stock IDs as constants and a
// [Registry] carrying the per-biome attributes the layers consult: category,
// temperature, precipitation, mutation links and a display colour.
//
//	reg := biome.Default()
//	b, ok := reg.Get(biome.Jungle)
//	if ok && reg.TempCategory(b.ID) == biome.TempWarm {
//	    ...
//	}
//
// Registries are plain values built at startup; a world type may register
// additional biomes before the pipeline is built. They are safe for
// concurrent reads once construction is finished.
package biome
