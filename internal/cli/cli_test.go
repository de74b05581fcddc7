// Package cli — cli_test.go holds the shared test harness for the CLI
// package: a fixed configuration and a recording runner substituted for
// the package-level seams, restored automatically per test.
package cli

import (
	"testing"

	"github.com/mmr-tortoise/stackctl/internal/config"
	"github.com/mmr-tortoise/stackctl/internal/execx"
)

// testConfig is the configuration used by CLI tests: no env file (so
// --env-file never appears regardless of the working directory) and a
// backup directory under the test's temp dir where needed.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.EnvFile = ""
	return cfg
}

// setupRecorder swaps the package-level runner and config loader for a
// recorder and a fixed configuration, restoring both when the test
// finishes. Every CLI test goes through this so no test ever spawns a
// real process.
func setupRecorder(t *testing.T, cfg config.Config) *execx.Recorder {
	t.Helper()

	rec := &execx.Recorder{}

	prevRunner := runner
	prevLoad := loadConfig
	prevDryRun := dryRun
	runner = rec
	loadConfig = func() (config.Config, error) { return cfg, nil }
	dryRun = false

	t.Cleanup(func() {
		runner = prevRunner
		loadConfig = prevLoad
		dryRun = prevDryRun
	})

	return rec
}
