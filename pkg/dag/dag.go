package dag

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [DAG.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [DAG.Validate] when an edge
	// references a node that doesn't exist.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrGraphHasCycle is returned by [DAG.Validate] and
	// [DAG.TopologicalOrder] when a directed cycle exists.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to nodes or the graph.
// Metadata maps are never nil after AddNode, AddEdge or New.
type Metadata map[string]any

// Node is a vertex with an assigned row.
type Node struct {
	ID   string   // Unique identifier (also used as display label)
	Row  int      // Depth (0 = source layers)
	Meta Metadata // Arbitrary key-value metadata (never nil after AddNode)
}

// Edge is a directed connection from an upstream node to its consumer.
type Edge struct {
	From string   // Upstream node ID
	To   string   // Consumer node ID
	Meta Metadata // Arbitrary key-value metadata (never nil after AddEdge)
}

// DAG is a directed acyclic graph with row (depth) indexing.
//
// The zero value is not usable - use New to create a valid DAG instance.
type DAG struct {
	nodes    map[string]*Node
	order    []string // insertion order
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
	rows     map[int][]*Node
	meta     Metadata
}

// New creates an empty DAG with optional graph-level metadata.
func New(meta Metadata) *DAG {
	if meta == nil {
		meta = Metadata{}
	}
	return &DAG{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		rows:     make(map[int][]*Node),
		meta:     meta,
	}
}

// Meta returns the graph-level metadata map.
func (d *DAG) Meta() Metadata { return d.meta }

// AddNode adds a node and indexes it by its Row.
func (d *DAG) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	d.nodes[node.ID] = node
	d.order = append(d.order, node.ID)
	d.rows[node.Row] = append(d.rows[node.Row], node)
	return nil
}

// SetRows updates row assignments and rebuilds the row index.
// Nodes not present in rows keep their current row.
func (d *DAG) SetRows(rows map[string]int) {
	d.rows = make(map[int][]*Node)
	for _, id := range d.order {
		n := d.nodes[id]
		if newRow, ok := rows[id]; ok {
			n.Row = newRow
		}
		d.rows[n.Row] = append(d.rows[n.Row], n)
	}
}

// AddEdge adds a directed edge between two existing nodes. Parallel edges
// are allowed; a layer may read the same upstream twice.
func (d *DAG) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], e.To)
	d.incoming[e.To] = append(d.incoming[e.To], e.From)
	return nil
}

// Nodes returns all nodes in insertion order. The pointers refer to the
// graph's own nodes.
func (d *DAG) Nodes() []*Node {
	nodes := make([]*Node, len(d.order))
	for i, id := range d.order {
		nodes[i] = d.nodes[id]
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes in the graph.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges in the graph.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Children returns the IDs of the consumers of id. Read-only view.
func (d *DAG) Children(id string) []string { return d.outgoing[id] }

// Parents returns the IDs of the inputs of id. Read-only view.
func (d *DAG) Parents(id string) []string { return d.incoming[id] }

// OutDegree returns the number of outgoing edges from the node.
func (d *DAG) OutDegree(id string) int { return len(d.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
func (d *DAG) InDegree(id string) int { return len(d.incoming[id]) }

// Node returns the node with the given ID.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// NodesInRow returns all nodes assigned to row, in insertion order.
func (d *DAG) NodesInRow(row int) []*Node { return d.rows[row] }

// RowCount returns the number of distinct rows in the graph.
func (d *DAG) RowCount() int { return len(d.rows) }

// RowIDs returns all row indices in ascending order.
func (d *DAG) RowIDs() []int {
	return slices.Sorted(maps.Keys(d.rows))
}

// MaxRow returns the highest row index, or 0 if the graph is empty.
func (d *DAG) MaxRow() int {
	if len(d.rows) == 0 {
		return 0
	}
	rowIDs := d.RowIDs()
	return rowIDs[len(rowIDs)-1]
}

// Sources returns nodes with no incoming edges, in insertion order.
func (d *DAG) Sources() []*Node {
	var sources []*Node
	for _, id := range d.order {
		if len(d.incoming[id]) == 0 {
			sources = append(sources, d.nodes[id])
		}
	}
	return sources
}

// Sinks returns nodes with no outgoing edges, in insertion order.
func (d *DAG) Sinks() []*Node {
	var sinks []*Node
	for _, id := range d.order {
		if len(d.outgoing[id]) == 0 {
			sinks = append(sinks, d.nodes[id])
		}
	}
	return sinks
}

// Validate checks that every edge joins existing nodes and that the graph
// is acyclic.
func (d *DAG) Validate() error {
	for _, e := range d.edges {
		_, okS := d.nodes[e.From]
		_, okD := d.nodes[e.To]
		if !okS || !okD {
			return ErrInvalidEdgeEndpoint
		}
	}
	_, err := d.TopologicalOrder()
	return err
}

// TopologicalOrder returns node IDs so that every node follows all of its
// parents. Ties are broken by insertion order, so the result is stable.
func (d *DAG) TopologicalOrder() ([]string, error) {
	inDegree := make(map[string]int, len(d.nodes))
	queue := make([]string, 0, len(d.nodes))
	for _, id := range d.order {
		inDegree[id] = len(d.incoming[id])
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	out := make([]string, 0, len(d.nodes))
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		out = append(out, curr)
		for _, child := range d.outgoing[curr] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
	if len(out) != len(d.nodes) {
		return nil, ErrGraphHasCycle
	}
	return out, nil
}
