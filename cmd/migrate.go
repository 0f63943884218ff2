package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pgschema/pgdiffcore/cmd/util"
	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/logger"
)

var (
	autoApprove bool
	watch       bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <main> <branch>",
	Short: "Apply the migration script that turns main into branch",
	Long: `migrate computes the DDL that turns main into branch and executes it
against main, prompting for confirmation unless --auto-approve is set.

Each argument is either a PostgreSQL connection string (postgres://...) or a
path to an embedded-Postgres data directory.`,
	Args: cobra.ExactArgs(2),
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&autoApprove, "auto-approve", false, "apply without prompting for confirmation")
	migrateCmd.Flags().BoolVar(&watch, "watch", false, "re-run the migration whenever branch's backing data directory changes on disk")
	migrateCmd.Flags().StringSliceVar(&ignoreSchemas, "ignore-schema", ignoreSchemas, "schema name to exclude from the migration (repeatable)")
	migrateCmd.Flags().StringSliceVar(&ignoreOwners, "ignore-owner", ignoreOwners, "owner role to exclude from the migration (repeatable)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	mainArg, branchArg := args[0], args[1]

	if !watch {
		return applyOnce(ctx, mainArg, branchArg)
	}

	src := util.ParseSource(branchArg)
	if src.Kind != util.SourceDataDir {
		return fmt.Errorf("--watch requires branch to be a data directory path, got a connection string")
	}
	return watchAndApply(ctx, mainArg, branchArg, src.Raw)
}

// applyOnce runs the full diff -> resolve pipeline and executes the
// resulting script against main, one statement per change, prompting for
// confirmation first unless --auto-approve was passed.
func applyOnce(ctx context.Context, mainArg, branchArg string) error {
	log := logger.Get()

	result, err := runPipeline(ctx, mainArg, branchArg)
	if err != nil {
		return err
	}
	if len(result.Changes) == 0 {
		fmt.Println("No changes to apply. Schema is already up to date.")
		return nil
	}

	fmt.Printf("Found %d changes to apply (run %s):\n\n", len(result.Changes), result.RunID)
	for _, c := range result.Changes {
		fmt.Printf("  %s %s %s\n", c.Operation(), c.ObjectType(), c.StableID())
	}

	if !autoApprove {
		fmt.Print("\nDo you want to apply these changes? (yes/no): ")
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "yes" && response != "y" {
			fmt.Println("Migration cancelled.")
			return nil
		}
	}

	mainConn, err := util.Open(ctx, util.ParseSource(mainArg))
	if err != nil {
		return fmt.Errorf("opening main %q: %w", mainArg, err)
	}
	defer mainConn.Close()

	for i, c := range result.Changes {
		sql := c.Serialize(change.DefaultSerializeOptions)
		log.Debug("executing change", "index", i, "stableId", c.StableID(), "sql", sql)
		if _, err := mainConn.DB.ExecContext(ctx, sql); err != nil {
			return fmt.Errorf("executing change %d (%s %s): %w", i, c.Operation(), c.StableID(), err)
		}
	}

	fmt.Println("Migration applied.")
	return nil
}

// watchAndApply runs applyOnce immediately, then re-runs it every time
// fsnotify reports a write under dataDir, the thin convenience --watch
// adds on top of the one-shot pipeline; it is never invoked by the core
// diff/resolve/serialize packages themselves.
func watchAndApply(ctx context.Context, mainArg, branchArg, dataDir string) error {
	log := logger.Get()

	if err := applyOnce(ctx, mainArg, branchArg); err != nil {
		log.Error("migration failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dataDir); err != nil {
		return fmt.Errorf("watching %q: %w", dataDir, err)
	}

	fmt.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", dataDir)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug("branch data directory changed, re-running migration", "event", event)
			if err := applyOnce(ctx, mainArg, branchArg); err != nil {
				log.Error("migration failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "error", err)
		}
	}
}
