// Package cli — db.go implements the "stackctl db" command group:
// reset, backup, and restore against the fixed database service.
//
// The database operations resolve their compose file the same way as
// every other operation (default development), but always target the
// configured database service — the service identity is not selectable
// per call. Credentials come from configuration (environment or .env),
// never from the command templates themselves.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/backup"
	"github.com/mmr-tortoise/stackctl/internal/compose"
	"github.com/mmr-tortoise/stackctl/internal/config"
	"github.com/mmr-tortoise/stackctl/internal/model"
)

// NewDBCommand creates the "db" parent command with its reset, backup,
// and restore subcommands. The --mode flag is persistent on the parent
// so all three share it.
func NewDBCommand() *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database operations (reset, backup, restore)",
		Long: `Operations against the stack's database service, executed through the
database client binaries inside the database container.`,
	}

	cmd.PersistentFlags().StringVarP(&modeFlag, "mode", "m", string(model.ModeDevelopment),
		"Deployment mode: development|dev or production|prod")

	cmd.AddCommand(newDBResetCommand(&modeFlag))
	cmd.AddCommand(newDBBackupCommand(&modeFlag))
	cmd.AddCommand(newDBRestoreCommand(&modeFlag))
	return cmd
}

// newDBResetCommand creates the "db reset" subcommand.
func newDBResetCommand(modeFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop the configured database",
		Long: `Drop the configured database inside the database service container.
All data in the database is lost; backup archives on disk are untouched.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDBReset(cmd.Context(), *modeFlag)
		},
	}
}

// runDBReset drops the configured database via mongosh inside the
// database service container.
func runDBReset(ctx context.Context, modeFlag string) error {
	cfg, mode, err := resolveDB(modeFlag)
	if err != nil {
		return err
	}

	eval := fmt.Sprintf("db.getSiblingDB(%q).dropDatabase()", cfg.Database.Name)
	args := append(clientAuthArgs("mongosh", cfg.Database), "--quiet", "--eval", eval)
	return dispatch(ctx, compose.Exec(cfg, mode, cfg.Database.Service, false, args...))
}

// newDBBackupCommand creates the "db backup" subcommand.
func newDBBackupCommand(modeFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Dump the database to a timestamped archive",
		Long: `Dump the configured database to a timestamped archive file under the
backup directory (created on demand). Archives are named
db-backup-YYYYMMDD-HHMMSS.archive.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDBBackup(cmd.Context(), *modeFlag)
		},
	}
}

// runDBBackup streams a mongodump archive into a freshly created file
// under the backup directory. A failed dump leaves the partial file in
// place; there is no compensation step.
func runDBBackup(ctx context.Context, modeFlag string) error {
	cfg, mode, err := resolveDB(modeFlag)
	if err != nil {
		return err
	}

	args := append(clientAuthArgs("mongodump", cfg.Database),
		"--db", cfg.Database.Name, "--archive")
	inv := compose.Exec(cfg, mode, cfg.Database.Service, false, args...)

	if dryRun {
		// Skip file creation so dry runs leave no empty archives behind.
		return dispatch(ctx, inv)
	}

	f, path, err := backup.CreateArchive(cfg.BackupDir, time.Now())
	if err != nil {
		return err
	}
	defer f.Close()

	inv.Stdout = f
	if err := dispatch(ctx, inv); err != nil {
		return err
	}

	printBackupResult(path)
	return nil
}

// printBackupResult reports the archive path in text or JSON.
func printBackupResult(path string) {
	if IsJSONOutput() {
		out := struct {
			Action string `json:"action"`
			Path   string `json:"path"`
		}{Action: "backup", Path: path}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}
	fmt.Printf("Backup written to %s\n", path)
}

// newDBRestoreCommand creates the "db restore" subcommand.
func newDBRestoreCommand(modeFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <archive>",
		Short: "Load the database from a backup archive",
		Long: `Restore the configured database from a previously created archive.
The archive argument is required; existing collections are dropped
before loading.

Examples:
  stackctl db restore backups/db-backup-20260830-142501.archive`,

		// Argument presence is checked in the run function so a missing
		// archive reports a usage error with the usage exit code.
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return runDBRestore(cmd.Context(), *modeFlag, source)
		},
	}
}

// runDBRestore streams the given archive into mongorestore inside the
// database service container. A missing source argument fails before
// any external command is dispatched.
func runDBRestore(ctx context.Context, modeFlag, source string) error {
	if strings.TrimSpace(source) == "" {
		return model.NewCLIError(model.ExitUsageError,
			"db restore requires a source archive file (see backups/)")
	}

	cfg, mode, err := resolveDB(modeFlag)
	if err != nil {
		return err
	}

	f, err := os.Open(source)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("cannot open backup archive %s", source), err)
	}
	defer f.Close()

	args := append(clientAuthArgs("mongorestore", cfg.Database), "--archive", "--drop")
	inv := compose.Exec(cfg, mode, cfg.Database.Service, false, args...)
	inv.Stdin = f
	return dispatch(ctx, inv)
}

// resolveDB loads configuration and parses the mode for a database
// operation.
func resolveDB(modeFlag string) (config.Config, model.Mode, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, "", err
	}
	mode, err := model.ParseMode(modeFlag)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, mode, nil
}

// clientAuthArgs builds the common leading arguments for a database
// client binary: the binary name followed by the credential flags.
func clientAuthArgs(binary string, db config.Database) []string {
	return []string{
		binary,
		"--username", db.Username,
		"--password", db.Password,
		"--authenticationDatabase", "admin",
	}
}
