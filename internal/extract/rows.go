package extract

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

// textArray parses a Postgres text[] literal (as returned in a single
// column, e.g. from an ARRAY_AGG(...)::text[] cast) into a []string,
// reusing lib/pq's array-literal parser rather than hand-rolling one.
func textArray(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	var out []string
	arr := pq.StringArray{}
	if err := arr.Scan(raw.String); err != nil {
		// Fall back to a plain comma split for the rare literal the
		// driver's array scanner rejects (e.g. a NULL element); lossy,
		// but extraction continues rather than failing the whole run.
		return strings.Split(strings.Trim(raw.String, "{}"), ",")
	}
	out = []string(arr)
	return out
}

// nullString unwraps a sql.NullString to "" when not valid.
func nullString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// nullStringPtr unwraps a sql.NullString to a *string, nil when not
// valid, matching schema.Column.DefaultValue's representation of "no
// default" as distinct from "default is the empty string".
func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// nullInt unwraps a sql.NullInt64 to a *int.
func nullInt(i sql.NullInt64) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int64)
	return &v
}

// bigInt converts a nullable numeric-as-text column (used for sequence
// bounds that can exceed int64) into a schema.BigInt, empty when NULL.
func bigInt(s sql.NullString) schema.BigInt {
	if !s.Valid {
		return schema.BigInt{}
	}
	return schema.NewBigInt(s.String)
}
