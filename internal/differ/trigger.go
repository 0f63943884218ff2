package differ

import (
	"sort"
	"strings"

	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

func diffTriggers(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Triggers, branch.Triggers)
	for _, t := range p.Created {
		out = append(out, change.NewCreateTrigger(t, nil))
	}
	for _, t := range p.Dropped {
		out = append(out, change.NewDropTrigger(t))
	}
	for _, pair := range p.Common {
		if !triggerEqual(pair.Main, pair.Branch) {
			out = append(out, change.NewDropTrigger(pair.Main), change.NewCreateTrigger(pair.Branch, nil))
		}
	}
	return out
}

func triggerEqual(a, b *schema.Trigger) bool {
	if a.Timing != b.Timing || a.Level != b.Level || a.Condition != b.Condition ||
		a.FunctionSchema != b.FunctionSchema || a.Function != b.Function {
		return false
	}
	ae := make([]string, len(a.Events))
	for i, e := range a.Events {
		ae[i] = string(e)
	}
	be := make([]string, len(b.Events))
	for i, e := range b.Events {
		be[i] = string(e)
	}
	return strings.Join(ae, ",") == strings.Join(be, ",") && strings.Join(a.UpdateColumns, ",") == strings.Join(b.UpdateColumns, ",")
}

func diffEventTriggers(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.EventTriggers, branch.EventTriggers)
	for _, e := range p.Created {
		out = append(out, change.NewCreateEventTrigger(e))
	}
	for _, e := range p.Dropped {
		out = append(out, change.NewDropEventTrigger(e))
	}
	for _, pair := range p.Common {
		if pair.Main.Event != pair.Branch.Event || pair.Main.FunctionSchema != pair.Branch.FunctionSchema ||
			pair.Main.Function != pair.Branch.Function || strings.Join(pair.Main.Tags, ",") != strings.Join(pair.Branch.Tags, ",") {
			out = append(out, change.NewDropEventTrigger(pair.Main), change.NewCreateEventTrigger(pair.Branch))
		}
	}
	return out
}

func diffRules(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Rules, branch.Rules)
	for _, r := range p.Created {
		out = append(out, change.NewCreateRule(r, nil))
	}
	for _, r := range p.Dropped {
		out = append(out, change.NewDropRule(r))
	}
	for _, pair := range p.Common {
		if pair.Main.Definition != pair.Branch.Definition || pair.Main.Condition != pair.Branch.Condition || pair.Main.Instead != pair.Branch.Instead {
			out = append(out, change.NewDropRule(pair.Main), change.NewCreateRule(pair.Branch, nil))
		}
	}
	return out
}

func diffRLSPolicies(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.RLSPolicies, branch.RLSPolicies)
	for _, pol := range p.Created {
		out = append(out, change.NewCreateRLSPolicy(pol, nil))
	}
	for _, pol := range p.Dropped {
		out = append(out, change.NewDropRLSPolicy(pol))
	}
	for _, pair := range p.Common {
		if pair.Main.Command != pair.Branch.Command || pair.Main.Permissive != pair.Branch.Permissive {
			out = append(out, change.NewDropRLSPolicy(pair.Main), change.NewCreateRLSPolicy(pair.Branch, nil))
			continue
		}
		if !strSliceEqualUnordered(pair.Main.Roles, pair.Branch.Roles) || pair.Main.Using != pair.Branch.Using || pair.Main.WithCheck != pair.Branch.WithCheck {
			out = append(out, change.NewAlterRLSPolicy(pair.Branch))
		}
	}
	return out
}

func strSliceEqualUnordered(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := append([]string{}, a...), append([]string{}, b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
