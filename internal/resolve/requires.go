package resolve

// addRequiresConstraints orders every change after whatever creates the
// stableIds it requires, and before whatever drops them — the
// change-level counterpart to the catalog-edge dependency constraints,
// needed for links the catalog dependency graph doesn't carry (e.g. a
// sequence's OWNED BY link, which requires the owning table's create
// but isn't itself a pg_depend edge between two catalog objects).
func addRequiresConstraints(g *Graph) {
	creators := map[string][]int{}
	droppers := map[string][]int{}
	for i, n := range g.nodes {
		for _, id := range n.change.Creates() {
			creators[id] = append(creators[id], i)
		}
		for _, id := range n.change.Drops() {
			droppers[id] = append(droppers[id], i)
		}
	}

	for i, n := range g.nodes {
		for _, req := range n.change.Requires() {
			for _, k := range creators[req] {
				if k != i {
					g.addBefore(k, i)
				}
			}
			for _, k := range droppers[req] {
				if k != i {
					g.addBefore(i, k)
				}
			}
		}
	}
}
