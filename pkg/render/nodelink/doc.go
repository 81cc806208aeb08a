// Package nodelink renders layer topologies as node-link diagrams.
//
// # Usage
//
// Convert a DAG to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Nodes are labelled with their layer name; detailed labels add the row,
// construction index, seed modifier and cache size. Rows come from
// [transform.AssignLayers], so a node's row is its depth below the source
// layers.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process via WebAssembly; no external binaries are required.
//
// [transform.AssignLayers]: github.com/matzehuels/genlayer/pkg/dag/transform
package nodelink
