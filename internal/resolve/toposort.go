package resolve

import "fmt"

// NodeRef identifies one node on a detected cycle for CycleError
// reporting: the change's index in the original input list and its
// stableId, so callers can correlate back to the change list.
type NodeRef struct {
	Index    int
	StableID string
}

// CycleError reports that the constraint graph has no valid topological
// order; spec §4.8 requires the resolver to fail rather than attempt a
// partial resolution.
type CycleError struct {
	Nodes []NodeRef
	// RunID is the run ID of the Resolve call that failed. A graph rebuilt
	// with Debug to render this cycle gets its own, different run ID.
	RunID string
}

func (e *CycleError) Error() string {
	ids := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		ids[i] = n.StableID
	}
	return fmt.Sprintf("dependency cycle detected among %d changes (run %s): %v", len(ids), e.RunID, ids)
}

// kahnSort runs Kahn's algorithm over g, breaking ties by the original
// input index (ascending) to keep output deterministic (spec §4.8 step
// 3). Returns the topological order as node indices, or a *CycleError
// if the graph isn't a DAG.
func kahnSort(g *Graph) ([]int, error) {
	n := len(g.nodes)
	indegree := make([]int, n)
	for i := range g.before {
		for _, j := range g.before[i] {
			indegree[j]++
		}
	}

	// A slice used as a min-heap keyed by index would be overkill here:
	// candidates are scanned linearly each round since n is small
	// (hundreds, not millions, of changes per migration) and this keeps
	// tie-breaking transparently "lowest index first".
	available := make([]bool, n)
	remaining := n
	for i := 0; i < n; i++ {
		available[i] = indegree[i] == 0
	}

	order := make([]int, 0, n)
	for remaining > 0 {
		next := -1
		for i := 0; i < n; i++ {
			if available[i] {
				next = i
				break
			}
		}
		if next == -1 {
			return nil, cycleError(g)
		}
		available[next] = false
		remaining--
		order = append(order, next)
		for _, j := range g.before[next] {
			indegree[j]--
			if indegree[j] == 0 {
				available[j] = true
			}
		}
	}
	return order, nil
}

func cycleError(g *Graph) *CycleError {
	scc := tarjanSCC(g)
	for _, component := range scc {
		if len(component) > 1 {
			nodes := make([]NodeRef, len(component))
			for i, idx := range component {
				nodes[i] = NodeRef{Index: idx, StableID: g.nodes[idx].change.StableID()}
			}
			return &CycleError{Nodes: nodes, RunID: g.runID}
		}
	}
	// A self-loop (before[i] contains i) is also a cycle of size 1;
	// addBefore rejects i==j, so this path is unreachable in practice
	// but kept as a defensive fallback.
	for i := range g.nodes {
		return &CycleError{Nodes: []NodeRef{{Index: i, StableID: g.nodes[i].change.StableID()}}, RunID: g.runID}
	}
	return &CycleError{RunID: g.runID}
}
