// Package resolve implements the dependency resolver (C8): builds a
// constraint graph over a flat change list from catalog dependency edges
// plus operation-semantics rules, then topologically orders the changes
// so applying them top-to-bottom never violates a PostgreSQL object
// dependency. This is the hardest component in the pipeline (spec §4.8).
package resolve

import (
	"github.com/google/uuid"

	"github.com/pgschema/pgdiffcore/internal/change"
)

// node is one indexed change instance. Using the slice index rather than
// the stableId as the graph's node identity matters because the same
// stableId can legitimately appear in more than one change (e.g. a
// column add and a separate column default alter on the same table).
type node struct {
	index  int
	change change.Change
}

// Graph is the resolver's private scratch structure: a directed graph
// over change indices, built fresh per Resolve call and discarded on
// return (spec §5 shared-resource policy).
type Graph struct {
	nodes []node
	// before[i] is the set of node indices that must run after i, i.e.
	// the out-edges of a "i before j" constraint.
	before [][]int
	seen   []map[int]bool
	// runID tags this particular Resolve/Debug invocation so that DOT or
	// Mermaid dumps written to a shared --debug directory across several
	// diff runs don't collide or get mistaken for one another.
	runID string
}

// RunID returns the identifier this graph was tagged with at construction.
func (g *Graph) RunID() string { return g.runID }

func newGraph(changes []change.Change) *Graph {
	g := &Graph{
		nodes:  make([]node, len(changes)),
		before: make([][]int, len(changes)),
		seen:   make([]map[int]bool, len(changes)),
		runID:  uuid.New().String(),
	}
	for i, c := range changes {
		g.nodes[i] = node{index: i, change: c}
		g.seen[i] = map[int]bool{}
	}
	return g
}

// addBefore records "i must run before j". Idempotent: a repeated
// (i, j) pair from two independent constraint generators is a no-op.
func (g *Graph) addBefore(i, j int) {
	if i == j || g.seen[i][j] {
		return
	}
	g.seen[i][j] = true
	g.before[i] = append(g.before[i], j)
}
