package schema

import "github.com/pgschema/pgdiffcore/internal/catalogid"

// allStableIDs returns the set of every stableId present in the catalog,
// across every kind, used by Validate to check edge endpoints resolve.
func (c *Catalog) allStableIDs() map[string]bool {
	ids := make(map[string]bool)
	add := func(id string) { ids[id] = true }

	for id := range c.Schemas {
		add(id)
	}
	for id := range c.Roles {
		add(id)
	}
	for id := range c.RoleMemberships {
		add(id)
	}
	for id := range c.Extensions {
		add(id)
	}
	for id := range c.Languages {
		add(id)
	}
	for id := range c.Collations {
		add(id)
	}
	for id := range c.Domains {
		add(id)
	}
	for id := range c.Enums {
		add(id)
	}
	for id := range c.Composites {
		add(id)
	}
	for id := range c.Ranges {
		add(id)
	}
	for id := range c.Sequences {
		add(id)
	}
	for id := range c.Tables {
		add(id)
	}
	for id := range c.Views {
		add(id)
	}
	for id := range c.MaterializedViews {
		add(id)
	}
	for id := range c.Indexes {
		add(id)
	}
	for id := range c.Constraints {
		add(id)
	}
	for id := range c.Procedures {
		add(id)
	}
	for id := range c.Aggregates {
		add(id)
	}
	for id := range c.Triggers {
		add(id)
	}
	for id := range c.EventTriggers {
		add(id)
	}
	for id := range c.Rules {
		add(id)
	}
	for id := range c.RLSPolicies {
		add(id)
	}
	for id := range c.Publications {
		add(id)
	}
	for id := range c.Subscriptions {
		add(id)
	}
	for id := range c.ObjectPrivileges {
		add(id)
	}
	for id := range c.ColumnPrivileges {
		add(id)
	}
	for id := range c.DefaultPrivileges {
		add(id)
	}
	for id := range c.Comments {
		add(id)
	}
	return ids
}

// Validate checks the structural invariants spec §7 requires: the schema,
// table, view, materialized view, sequence, index, constraint, and
// procedure maps have internally-consistent keys (the map key equals the
// object's own StableID, catching extractor bugs that mis-key an entry),
// and every non-tombstone dependency edge endpoint resolves to a real
// object in the catalog.
func (c *Catalog) Validate() error {
	var errs InvariantErrors

	checkKey := func(kind, key string, got string) {
		if key != got {
			errs = append(errs, &InvariantError{Kind: kind, StableID: key, Reason: "map key does not match object's own StableID " + got})
		}
	}

	for id, v := range c.Schemas {
		checkKey("schema", id, v.StableID())
	}
	for id, v := range c.Tables {
		checkKey("table", id, v.StableID())
	}
	for id, v := range c.Views {
		checkKey("view", id, v.StableID())
	}
	for id, v := range c.MaterializedViews {
		checkKey("materialized_view", id, v.StableID())
	}
	for id, v := range c.Sequences {
		checkKey("sequence", id, v.StableID())
	}
	for id, v := range c.Indexes {
		checkKey("index", id, v.StableID())
	}
	for id, v := range c.Constraints {
		checkKey("constraint", id, v.StableID())
	}
	for id, v := range c.Procedures {
		checkKey("procedure", id, v.StableID())
	}

	ids := c.allStableIDs()
	for _, e := range c.Edges {
		if !catalogid.IsUnknown(e.Dependent) && !ids[e.Dependent] {
			errs = append(errs, &InvariantError{Kind: "edge", StableID: e.Dependent, Reason: "dependent endpoint not present in catalog"})
		}
		if !catalogid.IsUnknown(e.Referenced) && !ids[e.Referenced] {
			errs = append(errs, &InvariantError{Kind: "edge", StableID: e.Referenced, Reason: "referenced endpoint not present in catalog"})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
