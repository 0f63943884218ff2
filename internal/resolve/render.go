package resolve

import (
	"fmt"
	"strings"
)

// RenderDOT renders g as Graphviz DOT source for debugging a resolve
// failure, one node per change labeled by operation/stableId.
func (g *Graph) RenderDOT() string {
	var b strings.Builder
	b.WriteString("digraph resolve {\n")
	b.WriteString(fmt.Sprintf("  label=%q;\n", "run "+g.runID))
	for i, n := range g.nodes {
		b.WriteString(fmt.Sprintf("  n%d [label=%q];\n", i, fmt.Sprintf("%s %s", n.change.Operation(), n.change.StableID())))
	}
	for i, edges := range g.before {
		for _, j := range edges {
			b.WriteString(fmt.Sprintf("  n%d -> n%d;\n", i, j))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// RenderFlowchart renders g as a Mermaid flowchart, grouping strongly
// connected components of size > 1 into a highlighted subgraph so a
// cycle stands out visually.
func (g *Graph) RenderFlowchart() string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	b.WriteString(fmt.Sprintf("  %%%% run %s\n", g.runID))
	scc := tarjanSCC(g)
	cycleOf := map[int]int{}
	for ci, comp := range scc {
		if len(comp) > 1 {
			for _, idx := range comp {
				cycleOf[idx] = ci
			}
		}
	}
	for i, n := range g.nodes {
		label := fmt.Sprintf("%s %s", n.change.Operation(), n.change.StableID())
		b.WriteString(fmt.Sprintf("  n%d[%q]\n", i, label))
		if _, inCycle := cycleOf[i]; inCycle {
			b.WriteString(fmt.Sprintf("  style n%d fill:#f88\n", i))
		}
	}
	for i, edges := range g.before {
		for _, j := range edges {
			b.WriteString(fmt.Sprintf("  n%d --> n%d\n", i, j))
		}
	}
	return b.String()
}
