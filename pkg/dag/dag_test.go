package dag

import (
	"errors"
	"testing"
)

func TestAddNodeErrors(t *testing.T) {
	g := New(nil)
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("empty ID: got %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("duplicate: got %v", err)
	}
	n, _ := g.Node("a")
	if n.Meta == nil {
		t.Error("Meta should be initialized")
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a"})
	if err := g.AddEdge(Edge{From: "x", To: "a"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("unknown source: got %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("unknown target: got %v", err)
	}
}

func TestParallelEdges(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	if g.InDegree("b") != 2 {
		t.Errorf("InDegree = %d, want 2", g.InDegree("b"))
	}
	if err := g.Validate(); err != nil {
		t.Errorf("parallel edges are not a cycle: %v", err)
	}
}

func TestValidateCycle(t *testing.T) {
	g := New(nil)
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "b", To: "c"})
	if err := g.Validate(); err != nil {
		t.Fatalf("acyclic graph: %v", err)
	}
	_ = g.AddEdge(Edge{From: "c", To: "a"})
	if err := g.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("cycle: got %v", err)
	}
}

func TestInsertionOrder(t *testing.T) {
	g := New(nil)
	ids := []string{"z", "a", "m", "b"}
	for _, id := range ids {
		_ = g.AddNode(Node{ID: id})
	}
	for i, n := range g.Nodes() {
		if n.ID != ids[i] {
			t.Fatalf("Nodes()[%d] = %s, want %s", i, n.ID, ids[i])
		}
	}
	if len(g.Sources()) != 4 || len(g.Sinks()) != 4 {
		t.Error("isolated nodes are both sources and sinks")
	}
}

func TestSetRows(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	g.SetRows(map[string]int{"b": 3})

	if g.MaxRow() != 3 {
		t.Errorf("MaxRow = %d, want 3", g.MaxRow())
	}
	if got := g.RowIDs(); len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("RowIDs = %v", got)
	}
	if rows := g.NodesInRow(3); len(rows) != 1 || rows[0].ID != "b" {
		t.Errorf("NodesInRow(3) = %v", rows)
	}
}
