package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pgschema/pgdiffcore/internal/logger"
	"github.com/pgschema/pgdiffcore/internal/version"
)

var (
	debugFlag  bool
	configFlag string
)

// Build-time variables set via ldflags.
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var RootCmd = &cobra.Command{
	Use:   "pgdiffcore",
	Short: "PostgreSQL schema diff and migration tool",
	Long: fmt.Sprintf(`pgdiffcore computes the DDL needed to turn one PostgreSQL schema into another.

Version: %s@%s %s %s

Commands:
  diff     Compute and print the migration script between two schemas
  migrate  Compute and apply the migration script, optionally watching for changes

Use "pgdiffcore [command] --help" for more information about a command.`,
		version.Version(), GitCommit, platform(), BuildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		return loadConfig()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging and graph dumps")
	RootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to a pgdiffcore.yaml config file")
	RootCmd.AddCommand(diffCmd)
	RootCmd.AddCommand(migrateCmd)
}

func setupLogger() {
	level := slog.LevelInfo
	if debugFlag {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger.SetGlobal(slog.New(handler), debugFlag)
}

// loadConfig layers a config file under flags and environment variables:
// viper reads pgdiffcore.yaml (or the path named by --config) for the
// ignore lists, but any flag the user actually passed on the command line
// always wins.
func loadConfig() error {
	v := viper.New()
	v.SetEnvPrefix("PGDIFFCORE")
	v.AutomaticEnv()

	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("pgdiffcore")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configFlag != "" {
			return fmt.Errorf("reading config file %q: %w", configFlag, err)
		}
	}

	if len(ignoreSchemas) == 0 {
		ignoreSchemas = v.GetStringSlice("ignoreSchemas")
	}
	if len(ignoreOwners) == 0 {
		ignoreOwners = v.GetStringSlice("ignoreOwners")
	}
	return nil
}

// platform returns the OS/architecture combination.
func platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
