package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandHelp(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs([]string{"--help"})

	if err := RootCmd.Execute(); err != nil {
		t.Errorf("root command with --help failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "pgdiffcore computes the DDL") {
		t.Errorf("expected help output to contain description, got: %s", output)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	commands := RootCmd.Commands()
	commandNames := make([]string, len(commands))
	for i, c := range commands {
		commandNames[i] = c.Name()
	}

	for _, expected := range []string{"diff", "migrate"} {
		found := false
		for _, actual := range commandNames {
			if actual == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %s not found in: %v", expected, commandNames)
		}
	}
}

func TestDiffCommandRejectsBadOutputFormat(t *testing.T) {
	outputFormat = "xml"
	defer func() { outputFormat = "sql" }()

	err := runDiff(diffCmd, []string{"postgres://x", "postgres://y"})
	if err == nil {
		t.Fatal("expected an error for an unrecognized --output value")
	}
	if !strings.Contains(err.Error(), "--output must be sql or json") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMigrateCommandRejectsWatchWithConnectionStringBranch(t *testing.T) {
	watch = true
	defer func() { watch = false }()

	err := runMigrate(migrateCmd, []string{"postgres://main", "postgres://branch"})
	if err == nil {
		t.Fatal("expected an error when --watch is used with a connection-string branch")
	}
	if !strings.Contains(err.Error(), "--watch requires branch to be a data directory path") {
		t.Errorf("unexpected error: %v", err)
	}
}
