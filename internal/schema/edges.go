package schema

// EdgeKind mirrors the three pg_depend deptype classes the resolver cares
// about (spec §3.4).
type EdgeKind string

const (
	EdgeNormal   EdgeKind = "normal"
	EdgeAuto     EdgeKind = "auto"
	EdgeInternal EdgeKind = "internal"
)

// DependencyEdge is one advisory, directional "dependent depends on
// referenced" fact. Edges are deduplicated by (Dependent, Referenced, Kind)
// when merged into a Catalog.
type DependencyEdge struct {
	Dependent  string
	Referenced string
	Kind       EdgeKind
}
