package resolve

import (
	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// Resolve builds the constraint graph over changes and returns them in a
// topological order that never violates a PostgreSQL object dependency,
// along with the run ID the graph was tagged with (the same one a
// *CycleError from this invocation carries, so a JSON
// caller can report it even on success for later correlation against a
// --debug directory). Returns a *CycleError if no valid order exists. The
// graph itself is never returned; a caller that wants its DOT/Mermaid
// form rebuilds it with Debug.
func Resolve(changes []change.Change, main, branch *schema.Catalog) ([]change.Change, string, error) {
	g := newGraph(changes)
	model := buildDependencyModel(changes, main, branch)

	addDependencyConstraints(g, model)
	addSameObjectConstraints(g)
	addProcedureOverloadTieBreaks(g)
	addRequiresConstraints(g)

	order, err := kahnSort(g)
	if err != nil {
		return nil, g.runID, err
	}

	out := make([]change.Change, len(order))
	for i, idx := range order {
		out[i] = g.nodes[idx].change
	}
	return out, g.runID, nil
}

// Debug exposes the constraint graph for a change list without running
// the topological sort, so callers can render it (RenderDOT/
// RenderFlowchart) to investigate a CycleError without re-deriving the
// graph by hand.
func Debug(changes []change.Change, main, branch *schema.Catalog) *Graph {
	g := newGraph(changes)
	model := buildDependencyModel(changes, main, branch)
	addDependencyConstraints(g, model)
	addSameObjectConstraints(g)
	addProcedureOverloadTieBreaks(g)
	addRequiresConstraints(g)
	return g
}
