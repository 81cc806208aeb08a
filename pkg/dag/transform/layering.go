package transform

import "github.com/matzehuels/genlayer/pkg/dag"

// AssignLayers assigns nodes to rows based on their depth in the graph.
//
// AssignLayers uses a longest-path algorithm via topological sort (Kahn's
// algorithm). Each node is placed one row below the deepest of its parents:
//   - Source nodes (no incoming edges) are at row 0
//   - All parents are strictly above their children
//
// Existing row assignments are overwritten. Nodes on a cycle never reach
// zero in-degree and stay at row 0; call [dag.DAG.Validate] first when the
// input is untrusted.
//
// Time complexity is O(V + E).
func AssignLayers(g *dag.DAG) {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	g.SetRows(rows)
}

// Depth returns the number of rows after AssignLayers, or 0 for an empty
// graph.
func Depth(g *dag.DAG) int {
	if g.NodeCount() == 0 {
		return 0
	}
	return g.MaxRow() + 1
}
