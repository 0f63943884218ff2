package schema

import "sort"

// Context carries facts about the catalog's source database that the
// serializer and differ need but that aren't themselves catalog objects.
type Context struct {
	ServerVersion int    // e.g. 160003 (PG_VERSION_NUM convention: major*10000+minor)
	CurrentUser   string
}

// Catalog bundles one full snapshot of a database: every object kind's
// stableId-keyed map, the dependency edge list, and Context. Catalogs are
// immutable after construction (spec §3.5) — nothing here mutates a
// Catalog's maps after NewCatalog/the extractor populates them except the
// Add* builder methods used during extraction itself.
type Catalog struct {
	Context Context

	Schemas          map[string]*Schema
	Roles            map[string]*Role
	RoleMemberships  map[string]*RoleMembership
	Extensions       map[string]*Extension
	Languages        map[string]*Language
	Collations       map[string]*Collation
	Domains          map[string]*Domain
	Enums            map[string]*Enum
	Composites       map[string]*Composite
	Ranges           map[string]*Range
	Sequences        map[string]*Sequence
	Tables           map[string]*Table
	Views            map[string]*View
	MaterializedViews map[string]*MaterializedView
	Indexes          map[string]*Index
	Constraints      map[string]*Constraint
	Procedures       map[string]*Procedure
	Aggregates       map[string]*Aggregate
	Triggers         map[string]*Trigger
	EventTriggers    map[string]*EventTrigger
	Rules            map[string]*Rule
	RLSPolicies      map[string]*RLSPolicy
	Publications     map[string]*Publication
	Subscriptions    map[string]*Subscription

	ObjectPrivileges  map[string]*ObjectPrivilegeSet
	ColumnPrivileges  map[string]*ColumnPrivilegeSet
	DefaultPrivileges map[string]*DefaultPrivilegeSet

	Comments             map[string]*Comment
	PartitionAttachments []*PartitionAttachment

	Edges    []DependencyEdge
	edgeSeen map[DependencyEdge]bool
}

// NewCatalog returns an empty, fully-initialized Catalog ready for
// extraction to populate.
func NewCatalog() *Catalog {
	return &Catalog{
		Schemas:           make(map[string]*Schema),
		Roles:             make(map[string]*Role),
		RoleMemberships:   make(map[string]*RoleMembership),
		Extensions:        make(map[string]*Extension),
		Languages:         make(map[string]*Language),
		Collations:        make(map[string]*Collation),
		Domains:           make(map[string]*Domain),
		Enums:             make(map[string]*Enum),
		Composites:        make(map[string]*Composite),
		Ranges:            make(map[string]*Range),
		Sequences:         make(map[string]*Sequence),
		Tables:            make(map[string]*Table),
		Views:             make(map[string]*View),
		MaterializedViews: make(map[string]*MaterializedView),
		Indexes:           make(map[string]*Index),
		Constraints:       make(map[string]*Constraint),
		Procedures:        make(map[string]*Procedure),
		Aggregates:        make(map[string]*Aggregate),
		Triggers:          make(map[string]*Trigger),
		EventTriggers:     make(map[string]*EventTrigger),
		Rules:             make(map[string]*Rule),
		RLSPolicies:       make(map[string]*RLSPolicy),
		Publications:      make(map[string]*Publication),
		Subscriptions:     make(map[string]*Subscription),
		ObjectPrivileges:  make(map[string]*ObjectPrivilegeSet),
		ColumnPrivileges:  make(map[string]*ColumnPrivilegeSet),
		DefaultPrivileges: make(map[string]*DefaultPrivilegeSet),
		Comments:          make(map[string]*Comment),
		edgeSeen:          make(map[DependencyEdge]bool),
	}
}

// emptyCatalog is the degenerate "branch is nothing" catalog required by
// spec §3.3; a package-level value is safe to share since Catalog is
// never mutated after construction and this one is never extended.
var emptyCatalog = NewCatalog()

// Empty returns the shared empty catalog constant.
func Empty() *Catalog {
	return emptyCatalog
}

// AddEdge appends a dependency edge, deduplicating by
// (dependent, referenced, kind) as spec §3.4 requires.
func (c *Catalog) AddEdge(e DependencyEdge) {
	if c.edgeSeen == nil {
		c.edgeSeen = make(map[DependencyEdge]bool)
	}
	if c.edgeSeen[e] {
		return
	}
	c.edgeSeen[e] = true
	c.Edges = append(c.Edges, e)
}

// TableLike is the derived union of Tables and MaterializedViews keyed by
// stableId (spec §4.4), needed because indexes and some constraints must
// resolve their owning object regardless of which table-like kind it is.
func (c *Catalog) TableLike() map[string]TableLikeObject {
	out := make(map[string]TableLikeObject, len(c.Tables)+len(c.MaterializedViews))
	for id, t := range c.Tables {
		out[id] = TableLikeObject{StableIDValue: id, Schema: t.Schema, Name: t.Name, Columns: t.Columns, Owner: t.Owner}
	}
	for id, m := range c.MaterializedViews {
		out[id] = TableLikeObject{StableIDValue: id, Schema: m.Schema, Name: m.Name, Columns: m.Columns, Owner: m.Owner}
	}
	return out
}

// TableLikeObject is the common shape indexes and column-bearing
// constraints need from either a Table or a MaterializedView.
type TableLikeObject struct {
	StableIDValue string
	Schema        string
	Name          string
	Columns       []*Column
	Owner         string
}

func (t TableLikeObject) StableID() string { return t.StableIDValue }

// SortedStableIDs returns the keys of any stableId-keyed map in
// lexicographic order, the deterministic iteration order spec §4.6
// requires per-differ ties to follow.
func SortedStableIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
