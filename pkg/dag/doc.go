// Package dag provides a small directed acyclic graph used to export and
// inspect layer topologies.
//
// # Overview
//
// A generation pipeline is a DAG: source layers have no inputs, most layers
// consume one upstream layer, and merge layers (hills, river mixing, ocean
// mixing) consume two. Nodes carry an ID, a row (their depth once
// [transform.AssignLayers] has run) and free-form [Metadata] such as the
// layer name, seed modifier and cache size.
//
// # Basic Usage
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "island#1"})
//	g.AddNode(dag.Node{ID: "zoom_fuzzy#2"})
//	g.AddEdge(dag.Edge{From: "island#1", To: "zoom_fuzzy#2"})
//
// Edges point from an upstream layer to the layer that reads it. Use
// [DAG.Validate] to check endpoints and acyclicity, and
// [DAG.TopologicalOrder] for a stable evaluation order.
//
// # Ordering
//
// [DAG.Nodes] and [DAG.NodesInRow] return nodes in insertion order, so
// exports (DOT, JSON) are byte-stable for the same pipeline.
//
// # Concurrency
//
// DAG instances are not safe for concurrent mutation. A fully built graph
// may be read from several goroutines.
//
// [transform]: github.com/matzehuels/genlayer/pkg/dag/transform
package dag
