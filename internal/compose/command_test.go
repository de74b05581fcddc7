package compose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/stackctl/internal/config"
	"github.com/mmr-tortoise/stackctl/internal/model"
)

// testConfig returns a config with no env file so assertions don't
// depend on files in the working directory.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.EnvFile = ""
	return cfg
}

// TestArgsModeMapping verifies that each mode resolves to exactly its
// own configuration file.
func TestArgsModeMapping(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t,
		[]string{"compose", "-p", "stackctl", "-f", "docker-compose.dev.yml"},
		Args(cfg, model.ModeDevelopment))
	assert.Equal(t,
		[]string{"compose", "-p", "stackctl", "-f", "docker-compose.prod.yml"},
		Args(cfg, model.ModeProduction))
}

// TestArgsEnvFile verifies that --env-file appears only when the file
// actually exists on disk.
func TestArgsEnvFile(t *testing.T) {
	cfg := testConfig()
	cfg.EnvFile = filepath.Join(t.TempDir(), ".env")

	args := Args(cfg, model.ModeDevelopment)
	assert.NotContains(t, args, "--env-file")

	require.NoError(t, os.WriteFile(cfg.EnvFile, []byte("KEY=value\n"), 0644))
	args = Args(cfg, model.ModeDevelopment)
	assert.Contains(t, args, "--env-file")
	assert.Equal(t, cfg.EnvFile, args[len(args)-1])
}

// TestCommandArgumentOrder verifies the fixed assembly order:
// subcommand, extra args, trailing tokens, then the service name.
func TestCommandArgumentOrder(t *testing.T) {
	cfg := testConfig()
	opts := model.Options{
		Mode:      model.ModeDevelopment,
		Service:   "backend",
		ExtraArgs: []string{"--tail", "100"},
		Trailing:  []string{"--timestamps"},
	}

	inv := Command(cfg, opts, "logs", "-f")
	assert.Equal(t, []string{
		"docker", "compose", "-p", "stackctl", "-f", "docker-compose.dev.yml",
		"logs", "-f",
		"--tail", "100",
		"--timestamps",
		"backend",
	}, inv.Argv)
}

// TestCommandWithoutService verifies that operations with no service
// target end at the trailing tokens.
func TestCommandWithoutService(t *testing.T) {
	cfg := testConfig()
	opts := model.Options{
		Mode:      model.ModeProduction,
		ExtraArgs: []string{"--build", "-d"},
		Trailing:  []string{"backend", "gateway"},
	}

	inv := Command(cfg, opts, "up")
	assert.Equal(t, []string{
		"docker", "compose", "-p", "stackctl", "-f", "docker-compose.prod.yml",
		"up", "--build", "-d", "backend", "gateway",
	}, inv.Argv)
}

// TestExec verifies the exec argument shape: the service precedes the
// in-container command, and -T is present exactly when the invocation
// is non-interactive.
func TestExec(t *testing.T) {
	cfg := testConfig()

	interactive := Exec(cfg, model.ModeDevelopment, "backend", true, "/bin/sh")
	assert.Equal(t, []string{
		"docker", "compose", "-p", "stackctl", "-f", "docker-compose.dev.yml",
		"exec", "backend", "/bin/sh",
	}, interactive.Argv)

	batch := Exec(cfg, model.ModeDevelopment, "mongodb", false, "mongodump", "--archive")
	assert.Equal(t, []string{
		"docker", "compose", "-p", "stackctl", "-f", "docker-compose.dev.yml",
		"exec", "-T", "mongodb", "mongodump", "--archive",
	}, batch.Argv)
}

// TestDocker verifies plain docker invocation assembly.
func TestDocker(t *testing.T) {
	inv := Docker("system", "prune", "-af", "--volumes")
	assert.Equal(t, []string{"docker", "system", "prune", "-af", "--volumes"}, inv.Argv)
}
