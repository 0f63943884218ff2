package differ

import (
	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// privilegeDelta returns the privileges present in branch but not main
// (to grant) and in main but not branch (to revoke).
func privilegeDelta(main, branch map[schema.Privilege]bool) (toGrant, toRevoke map[schema.Privilege]bool) {
	toGrant, toRevoke = map[schema.Privilege]bool{}, map[schema.Privilege]bool{}
	for p := range branch {
		if !main[p] {
			toGrant[p] = true
		}
	}
	for p := range main {
		if !branch[p] {
			toRevoke[p] = true
		}
	}
	return
}

func diffObjectPrivileges(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.ObjectPrivileges, branch.ObjectPrivileges)
	for _, ps := range p.Created {
		out = append(out, change.NewGrant(ps.TargetKind, ps.StableID(), ps.TargetStableID, ps.Grantee, "", ps.Privileges, []string{ps.TargetStableID}))
	}
	for _, ps := range p.Dropped {
		out = append(out, change.NewRevoke(ps.TargetKind, ps.StableID(), ps.TargetStableID, ps.Grantee, "", ps.Privileges))
	}
	for _, pair := range p.Common {
		grant, revoke := privilegeDelta(pair.Main.Privileges, pair.Branch.Privileges)
		if len(revoke) > 0 {
			out = append(out, change.NewRevoke(pair.Branch.TargetKind, pair.StableID, pair.Branch.TargetStableID, pair.Branch.Grantee, "", revoke))
		}
		if len(grant) > 0 {
			out = append(out, change.NewGrant(pair.Branch.TargetKind, pair.StableID, pair.Branch.TargetStableID, pair.Branch.Grantee, "", grant, []string{pair.Branch.TargetStableID}))
		}
	}
	return out
}

func diffColumnPrivileges(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.ColumnPrivileges, branch.ColumnPrivileges)
	for _, ps := range p.Created {
		out = append(out, change.NewGrant(schema.KindColumnPrivilegeSet, ps.StableID(), ps.TargetStableID, ps.Grantee, ps.Column, ps.Privileges, []string{ps.TargetStableID}))
	}
	for _, ps := range p.Dropped {
		out = append(out, change.NewRevoke(schema.KindColumnPrivilegeSet, ps.StableID(), ps.TargetStableID, ps.Grantee, ps.Column, ps.Privileges))
	}
	for _, pair := range p.Common {
		grant, revoke := privilegeDelta(pair.Main.Privileges, pair.Branch.Privileges)
		if len(revoke) > 0 {
			out = append(out, change.NewRevoke(schema.KindColumnPrivilegeSet, pair.StableID, pair.Branch.TargetStableID, pair.Branch.Grantee, pair.Branch.Column, revoke))
		}
		if len(grant) > 0 {
			out = append(out, change.NewGrant(schema.KindColumnPrivilegeSet, pair.StableID, pair.Branch.TargetStableID, pair.Branch.Grantee, pair.Branch.Column, grant, []string{pair.Branch.TargetStableID}))
		}
	}
	return out
}

func diffDefaultPrivileges(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.DefaultPrivileges, branch.DefaultPrivileges)
	for _, ps := range p.Created {
		out = append(out, change.NewAlterDefaultPrivileges(ps.StableID(), ps.Grantor, ps.Grantee, ps.Schema, ps.ObjectKind, ps.Privileges, false))
	}
	for _, ps := range p.Dropped {
		out = append(out, change.NewAlterDefaultPrivileges(ps.StableID(), ps.Grantor, ps.Grantee, ps.Schema, ps.ObjectKind, ps.Privileges, true))
	}
	for _, pair := range p.Common {
		grant, revoke := privilegeDelta(pair.Main.Privileges, pair.Branch.Privileges)
		if len(revoke) > 0 {
			out = append(out, change.NewAlterDefaultPrivileges(pair.StableID, pair.Branch.Grantor, pair.Branch.Grantee, pair.Branch.Schema, pair.Branch.ObjectKind, revoke, true))
		}
		if len(grant) > 0 {
			out = append(out, change.NewAlterDefaultPrivileges(pair.StableID, pair.Branch.Grantor, pair.Branch.Grantee, pair.Branch.Schema, pair.Branch.ObjectKind, grant, false))
		}
	}
	return out
}

func diffComments(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Comments, branch.Comments)
	for _, c := range p.Created {
		out = append(out, change.NewCreateCommentOn(commentKind(c.ParentStableID), c.ParentStableID, commentOnClause(c.ParentStableID, branch), c.Text))
	}
	for _, c := range p.Dropped {
		out = append(out, change.NewDropCommentOn(commentKind(c.ParentStableID), c.ParentStableID, commentOnClause(c.ParentStableID, main)))
	}
	for _, pair := range p.Common {
		if pair.Main.Text != pair.Branch.Text {
			out = append(out, change.NewCreateCommentOn(commentKind(pair.Branch.ParentStableID), pair.Branch.ParentStableID, commentOnClause(pair.Branch.ParentStableID, branch), pair.Branch.Text))
		}
	}
	return out
}
