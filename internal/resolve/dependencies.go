package resolve

import (
	"github.com/pgschema/pgdiffcore/internal/catalogid"
	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// Source identifies which catalog a dependency edge was observed in.
type Source string

const (
	SourceMain   Source = "main"
	SourceBranch Source = "branch"
)

// dependencyModel answers hasDependency queries over the edges relevant
// to one resolve call (spec §4.8 step 1).
type dependencyModel struct {
	// edges[dependent][referenced] is the set of sources the edge was
	// observed under.
	edges map[string]map[string]map[Source]bool
}

func (m *dependencyModel) hasDependency(a, b string, sourceFilter Source) bool {
	sources, ok := m.edges[a][b]
	if !ok {
		return false
	}
	if sourceFilter == "" {
		return len(sources) > 0
	}
	return sources[sourceFilter]
}

// buildDependencyModel computes `relevant` — the transitive closure up to
// depth 2 of the stableIds any change mentions, following edges in both
// directions across both catalogs — then keeps only edges whose
// endpoints are both relevant and non-tombstone.
func buildDependencyModel(changes []change.Change, main, branch *schema.Catalog) *dependencyModel {
	seeds := map[string]bool{}
	for _, c := range changes {
		seeds[c.StableID()] = true
		for _, id := range c.Requires() {
			seeds[id] = true
		}
		for _, id := range c.Creates() {
			seeds[id] = true
		}
		for _, id := range c.Drops() {
			seeds[id] = true
		}
	}

	type taggedEdge struct {
		schema.DependencyEdge
		source Source
	}
	var all []taggedEdge
	for _, e := range main.Edges {
		all = append(all, taggedEdge{e, SourceMain})
	}
	for _, e := range branch.Edges {
		all = append(all, taggedEdge{e, SourceBranch})
	}

	adjacency := map[string][]string{}
	for _, e := range all {
		if catalogid.IsUnknown(e.Dependent) || catalogid.IsUnknown(e.Referenced) {
			continue
		}
		adjacency[e.Dependent] = append(adjacency[e.Dependent], e.Referenced)
		adjacency[e.Referenced] = append(adjacency[e.Referenced], e.Dependent)
	}

	relevant := map[string]bool{}
	frontier := make([]string, 0, len(seeds))
	for id := range seeds {
		relevant[id] = true
		frontier = append(frontier, id)
	}
	for depth := 0; depth < 2; depth++ {
		var next []string
		for _, id := range frontier {
			for _, nb := range adjacency[id] {
				if !relevant[nb] {
					relevant[nb] = true
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}

	model := &dependencyModel{edges: map[string]map[string]map[Source]bool{}}
	for _, e := range all {
		if catalogid.IsUnknown(e.Dependent) || catalogid.IsUnknown(e.Referenced) {
			continue
		}
		if !relevant[e.Dependent] || !relevant[e.Referenced] {
			continue
		}
		if model.edges[e.Dependent] == nil {
			model.edges[e.Dependent] = map[string]map[Source]bool{}
		}
		if model.edges[e.Dependent][e.Referenced] == nil {
			model.edges[e.Dependent][e.Referenced] = map[Source]bool{}
		}
		model.edges[e.Dependent][e.Referenced][e.source] = true
	}
	return model
}

func sourceOf(c change.Change) Source {
	if c.Operation() == change.OpDrop {
		return SourceMain
	}
	return SourceBranch
}
