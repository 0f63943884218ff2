package extract

import (
	"context"
	"database/sql"

	"github.com/pgschema/pgdiffcore/internal/schema"
)

// granteeName resolves an aclexplode grantee oid to a role name, treating
// oid 0 as PUBLIC the way pg_dump's ACL rendering does.
func granteeName(db *sql.DB, ctx context.Context, oid int) (string, error) {
	if oid == 0 {
		return "PUBLIC", nil
	}
	var name string
	row := db.QueryRowContext(ctx, `SELECT rolname FROM pg_roles WHERE oid = $1`, oid)
	if err := row.Scan(&name); err != nil {
		return "", err
	}
	return name, nil
}

func (c *Collector) buildPrivileges(ctx context.Context, cat *schema.Catalog) error {
	if err := c.buildObjectPrivileges(ctx, cat); err != nil {
		return err
	}
	return c.buildColumnPrivileges(ctx, cat)
}

func (c *Collector) buildObjectPrivileges(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, cl.relkind::text, acl.grantee, acl.privilege_type, acl.is_grantable
		FROM pg_class cl
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		CROSS JOIN LATERAL aclexplode(COALESCE(cl.relacl, acldefault(
			CASE cl.relkind WHEN 'S' THEN 's' ELSE 'r' END, cl.relowner))) AS acl
		WHERE cl.relkind IN ('r', 'p', 'v', 'm', 'S') AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var schemaName, relName, relkind, privType string
		var granteeOID int
		var grantable bool
		if err := rows.Scan(&schemaName, &relName, &relkind, &granteeOID, &privType, &grantable); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		var targetID string
		var kind schema.ObjectKind
		switch relkind {
		case "S":
			targetID = (&schema.Sequence{Schema: schemaName, Name: relName}).StableID()
			kind = schema.KindSequence
		case "v":
			targetID = (&schema.View{Schema: schemaName, Name: relName}).StableID()
			kind = schema.KindView
		case "m":
			targetID = (&schema.MaterializedView{Schema: schemaName, Name: relName}).StableID()
			kind = schema.KindMaterializedView
		default:
			targetID = (&schema.Table{Schema: schemaName, Name: relName}).StableID()
			kind = schema.KindTable
		}
		grantee, err := granteeName(c.DB, ctx, granteeOID)
		if err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		addObjectPrivilege(cat, targetID, kind, grantee, privType, grantable)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	fq := `
		SELECT n.nspname, p.proname,
		       (SELECT array_agg(format_type(t, NULL) ORDER BY ord)
		          FROM unnest(p.proargtypes) WITH ORDINALITY AS u(t, ord))::text,
		       acl.grantee, acl.privilege_type, acl.is_grantable
		FROM pg_proc p
		JOIN pg_namespace n ON n.oid = p.pronamespace
		CROSS JOIN LATERAL aclexplode(COALESCE(p.proacl, acldefault('f', p.proowner))) AS acl
		WHERE p.prokind IN ('f', 'p') AND ` + where
	frows, err := c.DB.QueryContext(ctx, fq, args...)
	if err != nil {
		return &ExtractionError{Query: fq, Err: err}
	}
	defer frows.Close()
	for frows.Next() {
		var schemaName, name string
		var argTypes sql.NullString
		var granteeOID int
		var privType string
		var grantable bool
		if err := frows.Scan(&schemaName, &name, &argTypes, &granteeOID, &privType, &grantable); err != nil {
			return &ExtractionError{Query: fq, Err: err}
		}
		targetID := (&schema.Procedure{Schema: schemaName, Name: name, ArgTypes: textArray(argTypes)}).StableID()
		grantee, err := granteeName(c.DB, ctx, granteeOID)
		if err != nil {
			return &ExtractionError{Query: fq, Err: err}
		}
		addObjectPrivilege(cat, targetID, schema.KindProcedure, grantee, privType, grantable)
	}
	if err := frows.Err(); err != nil {
		return err
	}

	sq := `
		SELECT n.nspname, acl.grantee, acl.privilege_type, acl.is_grantable
		FROM pg_namespace n
		CROSS JOIN LATERAL aclexplode(COALESCE(n.nspacl, acldefault('n', n.nspowner))) AS acl
		WHERE ` + where
	srows, err := c.DB.QueryContext(ctx, sq, args...)
	if err != nil {
		return &ExtractionError{Query: sq, Err: err}
	}
	defer srows.Close()
	for srows.Next() {
		var schemaName, privType string
		var granteeOID int
		var grantable bool
		if err := srows.Scan(&schemaName, &granteeOID, &privType, &grantable); err != nil {
			return &ExtractionError{Query: sq, Err: err}
		}
		targetID := (&schema.Schema{Name: schemaName}).StableID()
		grantee, err := granteeName(c.DB, ctx, granteeOID)
		if err != nil {
			return &ExtractionError{Query: sq, Err: err}
		}
		addObjectPrivilege(cat, targetID, schema.KindSchema, grantee, privType, grantable)
	}
	return srows.Err()
}

func addObjectPrivilege(cat *schema.Catalog, targetID string, kind schema.ObjectKind, grantee, privType string, grantable bool) {
	id := (&schema.ObjectPrivilegeSet{TargetStableID: targetID, Grantee: grantee}).StableID()
	set, ok := cat.ObjectPrivileges[id]
	if !ok {
		set = &schema.ObjectPrivilegeSet{
			TargetStableID: targetID,
			TargetKind:     kind,
			Grantee:        grantee,
			Privileges:     make(map[schema.Privilege]bool),
		}
		cat.ObjectPrivileges[id] = set
	}
	set.Privileges[schema.Privilege(privType)] = grantable
}

func (c *Collector) buildColumnPrivileges(ctx context.Context, cat *schema.Catalog) error {
	where, args := c.schemaFilter("n.nspname")
	query := `
		SELECT n.nspname, cl.relname, a.attname, acl.grantee, acl.privilege_type, acl.is_grantable
		FROM pg_attribute a
		JOIN pg_class cl ON cl.oid = a.attrelid
		JOIN pg_namespace n ON n.oid = cl.relnamespace
		CROSS JOIN LATERAL aclexplode(a.attacl) AS acl
		WHERE a.attacl IS NOT NULL AND a.attnum > 0 AND NOT a.attisdropped AND ` + where
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return &ExtractionError{Query: query, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var schemaName, relName, colName, privType string
		var granteeOID int
		var grantable bool
		if err := rows.Scan(&schemaName, &relName, &colName, &granteeOID, &privType, &grantable); err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		targetID := (&schema.Table{Schema: schemaName, Name: relName}).StableID()
		grantee, err := granteeName(c.DB, ctx, granteeOID)
		if err != nil {
			return &ExtractionError{Query: query, Err: err}
		}
		id := (&schema.ColumnPrivilegeSet{TargetStableID: targetID, Column: colName, Grantee: grantee}).StableID()
		set, ok := cat.ColumnPrivileges[id]
		if !ok {
			set = &schema.ColumnPrivilegeSet{
				TargetStableID: targetID,
				Column:         colName,
				Grantee:        grantee,
				Privileges:     make(map[schema.Privilege]bool),
			}
			cat.ColumnPrivileges[id] = set
		}
		set.Privileges[schema.Privilege(privType)] = grantable
	}
	return rows.Err()
}
