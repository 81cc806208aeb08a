package pipeline

import (
	"github.com/matzehuels/genlayer/pkg/dag"
	"github.com/matzehuels/genlayer/pkg/dag/transform"
	"github.com/matzehuels/genlayer/pkg/render/nodelink"
)

// ToDAG exports the arena as a DAG with edges from each input to its
// consumer and rows assigned by depth. Node metadata carries the layer
// name, construction index, seed modifier and cache size.
func (g *Graph) ToDAG() *dag.DAG {
	d := dag.New(dag.Metadata{"layers": len(g.nodes)})
	for _, n := range g.nodes {
		_ = d.AddNode(dag.Node{
			ID: n.ID(),
			Meta: dag.Metadata{
				nodelink.MetaLayer:    n.Layer,
				nodelink.MetaIndex:    n.Index,
				nodelink.MetaModifier: n.Modifier,
				nodelink.MetaCache:    n.CacheSize(),
			},
		})
	}
	for _, n := range g.nodes {
		for _, in := range n.Inputs {
			up := g.nodes[in-1]
			_ = d.AddEdge(dag.Edge{From: up.ID(), To: n.ID()})
		}
	}
	transform.AssignLayers(d)
	return d
}

// TopologyNode is the JSON form of one layer application.
type TopologyNode struct {
	ID       string `json:"id"`
	Index    int    `json:"index"`
	Layer    string `json:"layer"`
	Modifier int64  `json:"modifier"`
	Inputs   []int  `json:"inputs"`
	Depth    int    `json:"depth"`
	Cache    int    `json:"cache"`
}

// Topology is the JSON form of a layer arena.
type Topology struct {
	Layers int            `json:"layers"`
	Depth  int            `json:"depth"`
	Nodes  []TopologyNode `json:"nodes"`
}

// Topology returns the JSON-friendly description of the arena.
func (g *Graph) Topology() Topology {
	t := Topology{Layers: len(g.nodes), Depth: g.Depth(), Nodes: make([]TopologyNode, len(g.nodes))}
	for i, n := range g.nodes {
		t.Nodes[i] = TopologyNode{
			ID:       n.ID(),
			Index:    n.Index,
			Layer:    n.Layer,
			Modifier: n.Modifier,
			Inputs:   n.Inputs,
			Depth:    n.Depth,
			Cache:    n.CacheSize(),
		}
	}
	return t
}
