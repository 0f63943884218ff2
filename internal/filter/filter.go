// Package filter applies user-configured schema/owner exclusions to the
// differ's change list before it is resolved (C10), the same step the
// teacher's --include-schema/--exclude-schema dump flags perform, except
// here it acts on changes rather than a single extracted snapshot.
package filter

import (
	"github.com/pgschema/pgdiffcore/internal/catalogid"
	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// Config lists the schemas and role names a migration should never touch.
// Both are exact-match, case-sensitive lists (no globs), matching the
// teacher's --schema flag's plain-string comparison.
type Config struct {
	IgnoreSchemas []string
	IgnoreOwners  []string
}

func (c Config) schemaIgnored(name string) bool {
	for _, s := range c.IgnoreSchemas {
		if s == name {
			return true
		}
	}
	return false
}

func (c Config) ownerIgnored(name string) bool {
	for _, o := range c.IgnoreOwners {
		if o == name {
			return true
		}
	}
	return false
}

// Apply drops every change whose object resolves to an ignored schema or
// an ignored owner, except CREATE SCHEMA and CREATE EXTENSION are always
// kept: a schema or extension create is what lets everything else in that
// schema exist, so filtering it out while keeping its contents would
// produce a script that fails on a clean target.
func (cfg Config) Apply(changes []change.Change, main, branch *schema.Catalog) []change.Change {
	out := make([]change.Change, 0, len(changes))
	for _, c := range changes {
		if c.ObjectType() == schema.KindSchema || c.ObjectType() == schema.KindExtension {
			out = append(out, c)
			continue
		}
		schemaName, owner, ok := resolve(c.StableID(), main, branch)
		if ok {
			if schemaName != "" && cfg.schemaIgnored(schemaName) {
				continue
			}
			if owner != "" && cfg.ownerIgnored(owner) {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// Apply is the package-level convenience form of Config{}.Apply, for
// callers that already have a Config value in hand.
func Apply(cfg Config, changes []change.Change, main, branch *schema.Catalog) []change.Change {
	return cfg.Apply(changes, main, branch)
}

// resolve looks up a change's object schema/owner by checking the branch
// catalog first (the post-change state, for creates/alters) and falling
// back to main (for drops). Kinds with no per-object schema or owner
// (roles, role memberships, publications, subscriptions, event triggers,
// privilege sets, comments) report ok=false and are never schema/owner
// filtered.
func resolve(stableID string, main, branch *schema.Catalog) (schemaName, owner string, ok bool) {
	for _, cat := range []*schema.Catalog{branch, main} {
		if cat == nil {
			continue
		}
		switch catalogid.Kind(stableID) {
		case "table":
			if t, found := cat.Tables[stableID]; found {
				return t.Schema, t.Owner, true
			}
		case "view":
			if v, found := cat.Views[stableID]; found {
				return v.Schema, v.Owner, true
			}
		case "materializedView":
			if v, found := cat.MaterializedViews[stableID]; found {
				return v.Schema, v.Owner, true
			}
		case "sequence":
			if s, found := cat.Sequences[stableID]; found {
				return s.Schema, "", true
			}
		case "index":
			if i, found := cat.Indexes[stableID]; found {
				return i.Schema, "", true
			}
		case "constraint":
			if c, found := cat.Constraints[stableID]; found {
				return c.Schema, "", true
			}
		case "procedure":
			if p, found := cat.Procedures[stableID]; found {
				return p.Schema, p.Owner, true
			}
		case "aggregate":
			if a, found := cat.Aggregates[stableID]; found {
				return a.Schema, a.Owner, true
			}
		case "trigger":
			if t, found := cat.Triggers[stableID]; found {
				return t.Schema, "", true
			}
		case "rule":
			if r, found := cat.Rules[stableID]; found {
				return r.Schema, "", true
			}
		case "rlsPolicy":
			if p, found := cat.RLSPolicies[stableID]; found {
				return p.Schema, "", true
			}
		case "domain":
			if d, found := cat.Domains[stableID]; found {
				return d.Schema, "", true
			}
		case "enum":
			if e, found := cat.Enums[stableID]; found {
				return e.Schema, "", true
			}
		case "compositeType":
			if c, found := cat.Composites[stableID]; found {
				return c.Schema, "", true
			}
		case "range":
			if r, found := cat.Ranges[stableID]; found {
				return r.Schema, "", true
			}
		case "collation":
			if c, found := cat.Collations[stableID]; found {
				return c.Schema, "", true
			}
		}
	}
	return "", "", false
}
