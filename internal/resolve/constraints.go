package resolve

import (
	"sort"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/change"
)

// operationPriority implements the same-object ordering rule (spec
// §4.8): drop (0) < create (1) < alter (2) < replace (3).
func operationPriority(op change.Operation) int {
	switch op {
	case change.OpDrop:
		return 0
	case change.OpCreate:
		return 1
	case change.OpAlter:
		return 2
	case change.OpReplace:
		return 3
	default:
		return 2
	}
}

// addDependencyConstraints implements step 2's dependency-constraint
// generator: for each ordered pair of distinct changes, decide which
// must run first based on the dependency direction between their
// stableIds and their operations.
func addDependencyConstraints(g *Graph, model *dependencyModel) {
	n := len(g.nodes)
	for i := 0; i < n; i++ {
		ci := g.nodes[i].change
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			cj := g.nodes[j].change

			iDepOnJ := model.hasDependency(ci.StableID(), cj.StableID(), sourceOf(ci)) || model.hasDependency(ci.StableID(), cj.StableID(), "")
			jDepOnI := model.hasDependency(cj.StableID(), ci.StableID(), sourceOf(cj)) || model.hasDependency(cj.StableID(), ci.StableID(), "")

			if !iDepOnJ && !jDepOnI {
				continue
			}

			iDrop := ci.Operation() == change.OpDrop
			jDrop := cj.Operation() == change.OpDrop

			switch {
			case iDrop && jDrop:
				// Drop the dependent first: if i depends on j, i (the
				// dependent) must be dropped before j (the referenced).
				if iDepOnJ {
					g.addBefore(i, j)
				}
				if jDepOnI {
					g.addBefore(j, i)
				}
			case !iDrop && !jDrop:
				// Create the dependency first: if i depends on j, j runs
				// before i.
				if iDepOnJ {
					g.addBefore(j, i)
				}
				if jDepOnI {
					g.addBefore(i, j)
				}
			case iDrop && !jDrop:
				g.addBefore(i, j)
			case !iDrop && jDrop:
				g.addBefore(j, i)
			}
		}
	}
}

// addSameObjectConstraints groups changes by stableId and orders the
// group by operation priority, emitting pairwise "before" edges between
// adjacent priorities (spec §4.8).
func addSameObjectConstraints(g *Graph) {
	groups := map[string][]int{}
	for i, n := range g.nodes {
		groups[n.change.StableID()] = append(groups[n.change.StableID()], i)
	}
	for _, idxs := range groups {
		if len(idxs) < 2 {
			continue
		}
		sort.Slice(idxs, func(a, b int) bool {
			pa := operationPriority(g.nodes[idxs[a]].change.Operation())
			pb := operationPriority(g.nodes[idxs[b]].change.Operation())
			if pa != pb {
				return pa < pb
			}
			return idxs[a] < idxs[b]
		})
		for k := 0; k+1 < len(idxs); k++ {
			g.addBefore(idxs[k], idxs[k+1])
		}
	}
}

// addProcedureOverloadTieBreaks orders CreateProcedure changes sharing a
// (schema, name) but different argument signatures by ascending argument
// count then lexicographic signature — cosmetic, but stabilizes output
// (spec §4.8).
func addProcedureOverloadTieBreaks(g *Graph) {
	type overload struct {
		index     int
		signature string
		argCount  int
	}
	byName := map[string][]overload{}
	for i, n := range g.nodes {
		cp, ok := n.change.(*change.CreateProcedure)
		if !ok {
			continue
		}
		key := cp.Procedure.Schema + "." + cp.Procedure.Name
		sig := strings.Join(cp.Procedure.ArgTypes, ",")
		byName[key] = append(byName[key], overload{index: i, signature: sig, argCount: len(cp.Procedure.ArgTypes)})
	}
	for _, overloads := range byName {
		if len(overloads) < 2 {
			continue
		}
		sort.Slice(overloads, func(a, b int) bool {
			if overloads[a].argCount != overloads[b].argCount {
				return overloads[a].argCount < overloads[b].argCount
			}
			return overloads[a].signature < overloads[b].signature
		})
		for k := 0; k+1 < len(overloads); k++ {
			g.addBefore(overloads[k].index, overloads[k+1].index)
		}
	}
}
