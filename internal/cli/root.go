// Package cli implements the cobra-based CLI commands for stackctl.
//
// Each operation (up, down, build, logs, shell, status, db, clean,
// health) is defined in its own file within this package. This file
// defines the root command, the global flags, and the dispatch seam
// every operation funnels through.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/config"
	"github.com/mmr-tortoise/stackctl/internal/execx"
	"github.com/mmr-tortoise/stackctl/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput switches command output to structured JSON.
	jsonOutput bool

	// verbose enables debug-level logging on stderr.
	verbose bool

	// dryRun prints the external command line instead of executing it.
	dryRun bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// runner executes the external commands this CLI dispatches.
// Tests substitute an *execx.Recorder to observe invocations without
// spawning processes.
var runner execx.Runner = execx.System{}

// loadConfig resolves the configuration for the current invocation.
// Tests substitute a closure returning a fixed Config.
var loadConfig = func() (config.Config, error) {
	return config.Load(".")
}

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself performs no action — it provides help text
// and global flags. Running "stackctl help" (or the bare binary) only
// prints the operation catalog and never dispatches anything.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stackctl",
		Short: "Environment-scoped docker compose front end",
		Long: `stackctl dispatches docker compose commands against one of two predefined
deployment configurations (development, production), selected by --mode.

Every command is a parameterized forward to docker compose or to the
database client running inside the database service container. stackctl
itself keeps no state beyond the backup archives it writes.`,

		// We format errors ourselves (text or JSON based on --json),
		// so cobra's automatic usage/error printing is silenced.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logrus.SetOutput(os.Stderr)
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Print external commands instead of executing them")

	// Base operations, one file per command.
	rootCmd.AddCommand(NewUpCommand())
	rootCmd.AddCommand(NewDownCommand())
	rootCmd.AddCommand(NewBuildCommand())
	rootCmd.AddCommand(NewLogsCommand())
	rootCmd.AddCommand(NewRestartCommand())
	rootCmd.AddCommand(NewShellCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewServicesCommand())
	rootCmd.AddCommand(NewDBCommand())
	rootCmd.AddCommand(NewCleanCommand())
	rootCmd.AddCommand(NewCleanVolumesCommand())
	rootCmd.AddCommand(NewCleanAllCommand())
	rootCmd.AddCommand(NewHealthCommand())

	// Aliases: pre-bound shortcuts delegating to the base operations.
	for _, cmd := range NewAliasCommands() {
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

// Execute runs the root command and translates errors into exit codes.
// CLIError values carry their own code — including the verbatim exit
// status of a failed external tool; other errors exit with code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// dispatch hands one invocation to the process runner. In dry-run mode
// it prints the command line to stderr instead, devctl-style.
func dispatch(ctx context.Context, inv execx.Invocation) error {
	if dryRun {
		fmt.Fprintln(os.Stderr, "+ "+inv.String())
		return nil
	}
	logrus.Debugf("exec: %s", inv)
	return runner.Run(ctx, inv)
}

// resolveOptions builds the per-invocation inputs shared by every
// configuration-scoped operation: load configuration, parse the mode
// strictly, and bundle the passthrough arguments.
func resolveOptions(modeFlag, service string, extra, trailing []string) (config.Config, model.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, model.Options{}, err
	}

	mode, err := model.ParseMode(modeFlag)
	if err != nil {
		return config.Config{}, model.Options{}, err
	}

	return cfg, model.Options{
		Mode:      mode,
		Service:   service,
		ExtraArgs: extra,
		Trailing:  trailing,
	}, nil
}

// addModeFlag registers the --mode flag shared by configuration-scoped
// operations.
func addModeFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "mode", "m", string(model.ModeDevelopment),
		"Deployment mode: development|dev or production|prod")
}

// addArgsFlag registers the --args passthrough flag. Repeatable; each
// occurrence appends one token forwarded verbatim to docker compose.
func addArgsFlag(cmd *cobra.Command, target *[]string) {
	cmd.Flags().StringArrayVarP(target, "args", "a", nil,
		"Extra argument forwarded verbatim to docker compose (repeatable)")
}

// printError outputs an error message in text or JSON format based on
// the --json global flag. Errors go to stderr either way; stdout is
// reserved for successful command output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
