package differ

import (
	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

func diffSchemas(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Schemas, branch.Schemas)
	for _, s := range p.Created {
		out = append(out, change.NewCreateSchema(s))
	}
	for _, s := range p.Dropped {
		out = append(out, change.NewDropSchema(s))
	}
	for _, pair := range p.Common {
		if pair.Main.Owner != pair.Branch.Owner {
			out = append(out, change.NewAlterSchemaOwner(pair.Branch, pair.Branch.Owner))
		}
	}
	return out
}

func diffRoles(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Roles, branch.Roles)
	for _, r := range p.Created {
		out = append(out, change.NewCreateRole(r))
	}
	for _, r := range p.Dropped {
		out = append(out, change.NewDropRole(r))
	}
	for _, pair := range p.Common {
		if !roleOptionsEqual(pair.Main, pair.Branch) {
			out = append(out, change.NewAlterRole(pair.Branch))
		}
	}
	return out
}

func roleOptionsEqual(a, b *schema.Role) bool {
	return a.Superuser == b.Superuser &&
		a.CreateDB == b.CreateDB &&
		a.CreateRole == b.CreateRole &&
		a.Inherit == b.Inherit &&
		a.Login == b.Login &&
		a.Replication == b.Replication &&
		a.BypassRLS == b.BypassRLS &&
		a.ConnectionLimit == b.ConnectionLimit &&
		strPtrEqual(a.ValidUntil, b.ValidUntil)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func diffRoleMemberships(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.RoleMemberships, branch.RoleMemberships)
	for _, m := range p.Created {
		out = append(out, change.NewGrantRoleMembership(m))
	}
	for _, m := range p.Dropped {
		out = append(out, change.NewRevokeRoleMembership(m))
	}
	for _, pair := range p.Common {
		if pair.Main.AdminOption != pair.Branch.AdminOption {
			out = append(out, change.NewRevokeRoleMembership(pair.Main), change.NewGrantRoleMembership(pair.Branch))
		}
	}
	return out
}

func diffExtensions(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Extensions, branch.Extensions)
	for _, e := range p.Created {
		out = append(out, change.NewCreateExtension(e))
	}
	for _, e := range p.Dropped {
		out = append(out, change.NewDropExtension(e))
	}
	for _, pair := range p.Common {
		if pair.Main.Version != pair.Branch.Version {
			out = append(out, change.NewAlterExtensionVersion(pair.Branch))
		}
	}
	return out
}

func diffCollations(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Collations, branch.Collations)
	for _, c := range p.Created {
		out = append(out, change.NewCreateCollation(c))
	}
	for _, c := range p.Dropped {
		out = append(out, change.NewDropCollation(c))
	}
	for _, pair := range p.Common {
		if *pair.Main != *pair.Branch {
			out = append(out, change.NewDropCollation(pair.Main), change.NewCreateCollation(pair.Branch))
		}
	}
	return out
}

func diffLanguages(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Languages, branch.Languages)
	for _, l := range p.Created {
		out = append(out, change.NewCreateLanguage(l))
	}
	for _, l := range p.Dropped {
		out = append(out, change.NewDropLanguage(l))
	}
	for _, pair := range p.Common {
		if *pair.Main != *pair.Branch {
			out = append(out, change.NewDropLanguage(pair.Main), change.NewCreateLanguage(pair.Branch))
		}
	}
	return out
}

func diffDomains(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Domains, branch.Domains)
	for _, d := range p.Created {
		out = append(out, change.NewCreateDomain(d))
	}
	for _, d := range p.Dropped {
		out = append(out, change.NewDropDomain(d))
	}
	for _, pair := range p.Common {
		if pair.Main.BaseType != pair.Branch.BaseType || len(pair.Main.Constraints) != len(pair.Branch.Constraints) {
			out = append(out, change.NewDropDomain(pair.Main), change.NewCreateDomain(pair.Branch))
		} else if pair.Main.NotNull != pair.Branch.NotNull || !strPtrEqual(pair.Main.Default, pair.Branch.Default) {
			out = append(out, change.NewDropDomain(pair.Main), change.NewCreateDomain(pair.Branch))
		}
	}
	return out
}

func diffEnums(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Enums, branch.Enums)
	for _, e := range p.Created {
		out = append(out, change.NewCreateEnum(e))
	}
	for _, e := range p.Dropped {
		out = append(out, change.NewDropEnum(e))
	}
	for _, pair := range p.Common {
		if !isPrefixAppend(pair.Main.Values, pair.Branch.Values) {
			out = append(out, change.NewDropEnum(pair.Main), change.NewCreateEnum(pair.Branch))
			continue
		}
		for _, v := range pair.Branch.Values[len(pair.Main.Values):] {
			out = append(out, change.NewAlterEnumAddValue(pair.Branch, v))
		}
	}
	return out
}

// isPrefixAppend reports whether branch is main with zero or more values
// appended at the end, unchanged and unreordered — the only shape
// ALTER TYPE ... ADD VALUE can realize without a rewrite.
func isPrefixAppend(main, branch []string) bool {
	if len(branch) < len(main) {
		return false
	}
	for i, v := range main {
		if branch[i] != v {
			return false
		}
	}
	return true
}

func diffComposites(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Composites, branch.Composites)
	for _, c := range p.Created {
		out = append(out, change.NewCreateComposite(c))
	}
	for _, c := range p.Dropped {
		out = append(out, change.NewDropComposite(c))
	}
	for _, pair := range p.Common {
		if len(pair.Main.Columns) != len(pair.Branch.Columns) {
			out = append(out, change.NewDropComposite(pair.Main), change.NewCreateComposite(pair.Branch))
			continue
		}
		for i := range pair.Main.Columns {
			if pair.Main.Columns[i] != pair.Branch.Columns[i] {
				out = append(out, change.NewDropComposite(pair.Main), change.NewCreateComposite(pair.Branch))
				break
			}
		}
	}
	return out
}

func diffRanges(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Ranges, branch.Ranges)
	for _, r := range p.Created {
		out = append(out, change.NewCreateRange(r))
	}
	for _, r := range p.Dropped {
		out = append(out, change.NewDropRange(r))
	}
	for _, pair := range p.Common {
		if *pair.Main != *pair.Branch {
			out = append(out, change.NewDropRange(pair.Main), change.NewCreateRange(pair.Branch))
		}
	}
	return out
}
