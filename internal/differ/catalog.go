package differ

import (
	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// Catalog is the catalog differ (C7): invokes every per-kind differ in
// the fixed canonical order (spec §4.7) and concatenates the results
// into one flat, deterministic change list. The order has no semantic
// meaning of its own — internal/resolve re-orders by dependency — but it
// fixes tie-breaking determinism.
func Catalog(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	for _, fn := range []func(main, branch *schema.Catalog) []change.Change{
		diffSchemas,
		diffRoles,
		diffRoleMemberships,
		diffExtensions,
		diffCollations,
		diffLanguages,
		diffDomains,
		diffEnums,
		diffComposites,
		diffRanges,
		diffSequences,
		diffTables,
		diffConstraints,
		diffIndexes,
		diffViews,
		diffMaterializedViews,
		diffProcedures,
		diffAggregates,
		diffTriggers,
		diffEventTriggers,
		diffRules,
		diffRLSPolicies,
		diffPublications,
		diffSubscriptions,
		diffObjectPrivileges,
		diffColumnPrivileges,
		diffDefaultPrivileges,
		diffComments,
	} {
		out = append(out, fn(main, branch)...)
	}
	return out
}
