package cmd

import (
	"context"
	"fmt"

	"github.com/pgschema/pgdiffcore/cmd/util"
	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/differ"
	"github.com/pgschema/pgdiffcore/internal/extract"
	"github.com/pgschema/pgdiffcore/internal/filter"
	"github.com/pgschema/pgdiffcore/internal/logger"
	"github.com/pgschema/pgdiffcore/internal/resolve"
	"github.com/pgschema/pgdiffcore/internal/schema"
)

// ignoreSchemas/ignoreOwners are populated from a config file's
// ignoreSchemas/ignoreOwners lists and overridden by the --ignore-schema/
// --ignore-owner flags diff and migrate both expose.
var (
	ignoreSchemas []string
	ignoreOwners  []string
)

// pipelineResult bundles everything a formatter needs: the ordered change
// list, the branch catalog's server context for keyword casing decisions,
// and the resolver run ID for correlating a --debug graph dump.
type pipelineResult struct {
	Changes []change.Change
	Context schema.Context
	RunID   string
}

// runPipeline opens both connection arguments, extracts a catalog from
// each, and runs them through diff -> filter -> resolve, the same fixed
// composition spec.md lays out end to end. A *resolve.CycleError is
// returned as-is so the caller can render a debug graph before giving up.
func runPipeline(ctx context.Context, mainArg, branchArg string) (*pipelineResult, error) {
	log := logger.Get()

	mainConn, err := util.Open(ctx, util.ParseSource(mainArg))
	if err != nil {
		return nil, fmt.Errorf("opening main %q: %w", mainArg, err)
	}
	defer mainConn.Close()

	branchConn, err := util.Open(ctx, util.ParseSource(branchArg))
	if err != nil {
		return nil, fmt.Errorf("opening branch %q: %w", branchArg, err)
	}
	defer branchConn.Close()

	log.Debug("extracting main catalog")
	mainCat, err := extract.NewCollector(mainConn.DB).BuildCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("extracting main catalog: %w", err)
	}

	log.Debug("extracting branch catalog")
	branchCat, err := extract.NewCollector(branchConn.DB).BuildCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("extracting branch catalog: %w", err)
	}

	changes := differ.Catalog(mainCat, branchCat)

	cfg := filter.Config{IgnoreSchemas: ignoreSchemas, IgnoreOwners: ignoreOwners}
	changes = cfg.Apply(changes, mainCat, branchCat)

	ordered, runID, err := resolve.Resolve(changes, mainCat, branchCat)
	if err != nil {
		if logger.IsDebug() {
			if cycleErr, ok := err.(*resolve.CycleError); ok {
				dumpDebugGraph(changes, mainCat, branchCat, cycleErr.RunID)
			}
		}
		return nil, err
	}

	return &pipelineResult{Changes: ordered, Context: branchCat.Context, RunID: runID}, nil
}

// dumpDebugGraph renders the constraint graph for the same change list
// that just failed to resolve, as DOT to stdout, so a --debug run doesn't
// have to re-derive it by hand. Debug rebuilds the graph from scratch and
// tags it with its own run ID (failingRunID is logged alongside purely so
// the two can be told apart in a shared debug directory).
func dumpDebugGraph(changes []change.Change, main, branch *schema.Catalog, failingRunID string) {
	g := resolve.Debug(changes, main, branch)
	log := logger.Get()
	log.Debug("rendering dependency graph for failed resolve", "failedRunId", failingRunID, "renderedRunId", g.RunID())
	fmt.Println(g.RenderDOT())
}
