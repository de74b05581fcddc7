// Package cli — db_test.go exercises the database operations through
// the cobra command tree.
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/stackctl/internal/model"
)

// TestDBRestoreRequiresSource verifies the usage-error contract: a
// restore without a source archive exits non-zero and spawns nothing.
func TestDBRestoreRequiresSource(t *testing.T) {
	rec := setupRecorder(t, testConfig())

	err := execRoot(t, "db", "restore")

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitUsageError, cliErr.Code)
	assert.Empty(t, rec.Invocations, "no external command may be dispatched on a usage error")
}

// TestDBRestoreStreamsArchive verifies the restore invocation shape and
// that the archive file feeds the child's stdin.
func TestDBRestoreStreamsArchive(t *testing.T) {
	rec := setupRecorder(t, testConfig())

	archive := filepath.Join(t.TempDir(), "db-backup-20260830-090000.archive")
	require.NoError(t, os.WriteFile(archive, []byte("archive bytes"), 0644))

	require.NoError(t, execRoot(t, "db", "restore", archive))

	require.Len(t, rec.Invocations, 1)
	inv := rec.Invocations[0]
	assert.Equal(t, []string{
		"docker", "compose", "-p", "stackctl", "-f", "docker-compose.dev.yml",
		"exec", "-T", "mongodb",
		"mongorestore",
		"--username", "root",
		"--password", "example",
		"--authenticationDatabase", "admin",
		"--archive", "--drop",
	}, inv.Argv)
	assert.NotNil(t, inv.Stdin)
}

// TestDBRestoreMissingArchiveFile verifies that a nonexistent archive
// path fails before any external command runs.
func TestDBRestoreMissingArchiveFile(t *testing.T) {
	rec := setupRecorder(t, testConfig())

	err := execRoot(t, "db", "restore", filepath.Join(t.TempDir(), "missing.archive"))

	assert.Error(t, err)
	assert.Empty(t, rec.Invocations)
}

// TestDBBackup verifies the dump invocation, the archive file creation
// under the backup directory, and that stdout is redirected into it.
func TestDBBackup(t *testing.T) {
	cfg := testConfig()
	cfg.BackupDir = filepath.Join(t.TempDir(), "backups")
	rec := setupRecorder(t, cfg)

	require.NoError(t, execRoot(t, "db", "backup"))

	require.Len(t, rec.Invocations, 1)
	inv := rec.Invocations[0]
	assert.Equal(t, []string{
		"docker", "compose", "-p", "stackctl", "-f", "docker-compose.dev.yml",
		"exec", "-T", "mongodb",
		"mongodump",
		"--username", "root",
		"--password", "example",
		"--authenticationDatabase", "admin",
		"--db", "app", "--archive",
	}, inv.Argv)
	assert.NotNil(t, inv.Stdout)

	// Exactly one timestamped archive exists in the backup directory.
	entries, err := os.ReadDir(cfg.BackupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^db-backup-\d{8}-\d{6}\.archive$`, entries[0].Name())
}

// TestDBBackupProductionMode verifies that the db group's --mode flag
// switches the configuration file while the database service identity
// stays fixed.
func TestDBBackupProductionMode(t *testing.T) {
	cfg := testConfig()
	cfg.BackupDir = filepath.Join(t.TempDir(), "backups")
	rec := setupRecorder(t, cfg)

	require.NoError(t, execRoot(t, "db", "backup", "--mode", "production"))

	require.Len(t, rec.Invocations, 1)
	argv := rec.Invocations[0].Argv
	assert.Contains(t, argv, "docker-compose.prod.yml")
	assert.Contains(t, argv, "mongodb")
}

// TestDBReset verifies the drop invocation against the fixed database
// service.
func TestDBReset(t *testing.T) {
	rec := setupRecorder(t, testConfig())

	require.NoError(t, execRoot(t, "db", "reset"))

	require.Len(t, rec.Invocations, 1)
	assert.Equal(t, []string{
		"docker", "compose", "-p", "stackctl", "-f", "docker-compose.dev.yml",
		"exec", "-T", "mongodb",
		"mongosh",
		"--username", "root",
		"--password", "example",
		"--authenticationDatabase", "admin",
		"--quiet", "--eval", `db.getSiblingDB("app").dropDatabase()`,
	}, rec.Invocations[0].Argv)
}
