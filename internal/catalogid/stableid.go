package catalogid

import "strings"

// Builder functions for the stable-ID scheme described in spec §4.1. Every
// stable ID has the shape "<kind>:<identity>", with identity segments
// quoted the same way the object record and the dependency-edge extractor
// agree to quote them. Values are compared byte-for-byte; nothing here
// normalizes at compare time.

func Schema(name string) string {
	return "schema:" + Quote(name)
}

func Role(name string) string {
	return "role:" + Quote(name)
}

func RoleMembership(role, member string) string {
	return "rolemembership:" + Quote(role) + "." + Quote(member)
}

func Extension(name string) string {
	return "extension:" + Quote(name)
}

func Language(name string) string {
	return "language:" + Quote(name)
}

func Collation(schema, name string) string {
	return "collation:" + QuoteQualified(schema, name)
}

func Domain(schema, name string) string {
	return "domain:" + QuoteQualified(schema, name)
}

func Enum(schema, name string) string {
	return "enum:" + QuoteQualified(schema, name)
}

func CompositeType(schema, name string) string {
	return "compositeType:" + QuoteQualified(schema, name)
}

func Range(schema, name string) string {
	return "range:" + QuoteQualified(schema, name)
}

func Sequence(schema, name string) string {
	return "sequence:" + QuoteQualified(schema, name)
}

func Table(schema, name string) string {
	return "table:" + QuoteQualified(schema, name)
}

func View(schema, name string) string {
	return "view:" + QuoteQualified(schema, name)
}

func MaterializedView(schema, name string) string {
	return "materializedView:" + QuoteQualified(schema, name)
}

func Index(schema, name string) string {
	return "index:" + QuoteQualified(schema, name)
}

// Constraint identifies a constraint by (schema, table, name): constraints
// are not unique by name alone across a schema, only within their table.
func Constraint(schema, table, name string) string {
	return "constraint:" + QuoteQualified(schema, table) + "." + Quote(name)
}

// Procedure builds the stable ID for a function or procedure. argTypes is
// the exact, comma-joined (no spaces) list of argument type names as
// returned by format_type(oid, NULL) — overloads are independent objects
// keyed by this full signature.
func Procedure(schema, name string, argTypes []string) string {
	return "procedure:" + QuoteQualified(schema, name) + "(" + strings.Join(argTypes, ",") + ")"
}

func Aggregate(schema, name string, argTypes []string) string {
	return "aggregate:" + QuoteQualified(schema, name) + "(" + strings.Join(argTypes, ",") + ")"
}

func Trigger(schema, table, name string) string {
	return "trigger:" + QuoteQualified(schema, table) + "." + Quote(name)
}

func EventTrigger(name string) string {
	return "eventTrigger:" + Quote(name)
}

func Rule(schema, table, name string) string {
	return "rule:" + QuoteQualified(schema, table) + "." + Quote(name)
}

func RLSPolicy(schema, table, name string) string {
	return "rlsPolicy:" + QuoteQualified(schema, table) + "." + Quote(name)
}

func Publication(name string) string {
	return "publication:" + Quote(name)
}

func Subscription(name string) string {
	return "subscription:" + Quote(name)
}

// ObjectPrivilegeSet identifies the set of privileges one grantee role
// holds on one target object, keyed by (target, grantee).
func ObjectPrivilegeSet(target, grantee string) string {
	return "objectPrivilegeSet:" + target + "." + Quote(grantee)
}

func ColumnPrivilegeSet(target, column, grantee string) string {
	return "columnPrivilegeSet:" + target + "." + Quote(column) + "." + Quote(grantee)
}

// DefaultPrivilegeSet identifies an ALTER DEFAULT PRIVILEGES entry keyed by
// (grantor, grantee, schema, objectKind). schema may be empty for a
// global (not schema-scoped) default privilege.
func DefaultPrivilegeSet(grantor, grantee, schema, objectKind string) string {
	schemaSeg := "*"
	if schema != "" {
		schemaSeg = Quote(schema)
	}
	return "defaultPrivilegeSet:" + Quote(grantor) + "." + Quote(grantee) + "." + schemaSeg + "." + objectKind
}

// Comment builds the stable ID of a comment sub-entity from its parent's
// stable ID.
func Comment(parent string) string {
	return "comment:" + parent
}

// ColumnDefault builds the stable ID of a column's default-value sub-entity.
func ColumnDefault(tableStableID, column string) string {
	return "columnDefault:" + tableStableID + "." + Quote(column)
}

// ColumnComment builds the stable ID of a column's comment sub-entity.
func ColumnComment(tableStableID, column string) string {
	return "columnComment:" + tableStableID + "." + Quote(column)
}

// Column builds the stable ID identifying one column of a table-like
// object, used as the diff key for column-level add/drop/alter.
func Column(tableStableID, column string) string {
	return "column:" + tableStableID + "." + Quote(column)
}

// Unknown builds a tombstone stable ID for a dependency-edge endpoint that
// resolved to nothing in either catalog. Callers must ignore edges with
// an Unknown endpoint rather than treat them as invariant violations.
func Unknown(rawOID string) string {
	return "unknown:" + rawOID
}

// IsUnknown reports whether id is an unknown:... tombstone.
func IsUnknown(id string) bool {
	return strings.HasPrefix(id, "unknown:")
}

// Kind extracts the "<kind>" prefix of a stable ID (before the first ':').
func Kind(stableID string) string {
	if i := strings.IndexByte(stableID, ':'); i >= 0 {
		return stableID[:i]
	}
	return ""
}
