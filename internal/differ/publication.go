package differ

import (
	"strings"

	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

func diffPublications(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Publications, branch.Publications)
	for _, pub := range p.Created {
		out = append(out, change.NewCreatePublication(pub))
	}
	for _, pub := range p.Dropped {
		out = append(out, change.NewDropPublication(pub))
	}
	for _, pair := range p.Common {
		if !publicationEqual(pair.Main, pair.Branch) {
			out = append(out, change.NewDropPublication(pair.Main), change.NewCreatePublication(pair.Branch))
		}
	}
	return out
}

func publicationEqual(a, b *schema.Publication) bool {
	return a.AllTables == b.AllTables &&
		a.PublishInsert == b.PublishInsert && a.PublishUpdate == b.PublishUpdate &&
		a.PublishDelete == b.PublishDelete && a.PublishTruncate == b.PublishTruncate &&
		strings.Join(a.Tables, ",") == strings.Join(b.Tables, ",")
}

func diffSubscriptions(main, branch *schema.Catalog) []change.Change {
	var out []change.Change
	p := DiffObjects(main.Subscriptions, branch.Subscriptions)
	for _, s := range p.Created {
		out = append(out, change.NewCreateSubscription(s))
	}
	for _, s := range p.Dropped {
		out = append(out, change.NewDropSubscription(s))
	}
	for _, pair := range p.Common {
		if pair.Main.ConnectionInfo != pair.Branch.ConnectionInfo || pair.Main.Enabled != pair.Branch.Enabled ||
			strings.Join(pair.Main.Publications, ",") != strings.Join(pair.Branch.Publications, ",") {
			out = append(out, change.NewDropSubscription(pair.Main), change.NewCreateSubscription(pair.Branch))
		}
	}
	return out
}
