package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pgschema/pgdiffcore/internal/change"
	"github.com/pgschema/pgdiffcore/internal/serialize"
)

var (
	outputFormat string
	writePlan    string
)

var diffCmd = &cobra.Command{
	Use:   "diff <main> <branch>",
	Short: "Print the migration script that turns main into branch",
	Long: `diff compares two schemas and prints the DDL that turns main into branch.

Each argument is either a PostgreSQL connection string (postgres://...) or a
path to an embedded-Postgres data directory.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVarP(&outputFormat, "output", "O", "sql", "output format: sql or json")
	diffCmd.Flags().StringSliceVar(&ignoreSchemas, "ignore-schema", ignoreSchemas, "schema name to exclude from the migration (repeatable)")
	diffCmd.Flags().StringSliceVar(&ignoreOwners, "ignore-owner", ignoreOwners, "owner role to exclude from the migration (repeatable)")
	diffCmd.Flags().StringVar(&writePlan, "write-plan", "", "also write the resolved change list as YAML to this path, for review tooling")
}

func runDiff(cmd *cobra.Command, args []string) error {
	if outputFormat != "sql" && outputFormat != "json" {
		return fmt.Errorf("--output must be sql or json, got %q", outputFormat)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := runPipeline(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	if writePlan != "" {
		if err := writeYAMLPlan(writePlan, result); err != nil {
			return fmt.Errorf("writing plan to %q: %w", writePlan, err)
		}
	}

	switch outputFormat {
	case "json":
		return writeJSONChanges(os.Stdout, result)
	default:
		fmt.Println(serialize.Script(result.Changes, change.DefaultSerializeOptions, result.Context))
	}
	return nil
}

// yamlPlan mirrors jsonOutput's shape for operators who pipe plans into
// YAML-based review tools instead of JSON ones.
type yamlPlan struct {
	RunID   string       `yaml:"runId"`
	Changes []jsonChange `yaml:"changes"`
}

func writeYAMLPlan(path string, result *pipelineResult) error {
	plan := yamlPlan{RunID: result.RunID, Changes: make([]jsonChange, len(result.Changes))}
	for i, c := range result.Changes {
		plan.Changes[i] = jsonChange{
			Operation:  string(c.Operation()),
			Scope:      string(c.Scope()),
			ObjectType: string(c.ObjectType()),
			StableID:   c.StableID(),
			SQL:        c.Serialize(change.DefaultSerializeOptions),
		}
	}
	data, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// jsonChange is the wire shape for one change in -O json output: enough
// to let a caller reconstruct the applied SQL and audit ordering without
// parsing the rendered script back apart.
type jsonChange struct {
	Operation  string `json:"operation" yaml:"operation"`
	Scope      string `json:"scope" yaml:"scope"`
	ObjectType string `json:"objectType" yaml:"objectType"`
	StableID   string `json:"stableId" yaml:"stableId"`
	SQL        string `json:"sql" yaml:"sql"`
}

type jsonOutput struct {
	RunID   string       `json:"runId"`
	Changes []jsonChange `json:"changes"`
}

func writeJSONChanges(w *os.File, result *pipelineResult) error {
	out := jsonOutput{RunID: result.RunID, Changes: make([]jsonChange, len(result.Changes))}
	for i, c := range result.Changes {
		out.Changes[i] = jsonChange{
			Operation:  string(c.Operation()),
			Scope:      string(c.Scope()),
			ObjectType: string(c.ObjectType()),
			StableID:   c.StableID(),
			SQL:        c.Serialize(change.DefaultSerializeOptions),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
