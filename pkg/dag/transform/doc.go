// Package transform provides graph transformations over [dag.DAG].
//
// [AssignLayers] computes each node's depth with a longest-path pass, so
// row 0 holds the source layers and the final Voronoi zoom ends up on the
// deepest row. [Depth] reports the number of rows, which bounds the
// recursion depth of a single sample.
//
// [dag.DAG]: github.com/matzehuels/genlayer/pkg/dag
package transform
