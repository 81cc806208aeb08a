// Package render groups the output renderers for generated worlds.
//
//   - [raster]: biome regions as PNG images
//   - [nodelink]: layer topologies as Graphviz DOT and SVG
//
// [raster]: github.com/matzehuels/genlayer/pkg/render/raster
// [nodelink]: github.com/matzehuels/genlayer/pkg/render/nodelink
package render
