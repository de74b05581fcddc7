// Package cli — alias_test.go verifies the alias contract: an alias
// produces exactly the external invocation that manually supplying its
// pre-bound inputs to the base operation would.
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAliasEquivalence runs each alias and its spelled-out base
// operation against separate recorders and compares the resulting
// command lines token for token.
func TestAliasEquivalence(t *testing.T) {
	tests := []struct {
		name      string
		aliasArgs []string
		baseArgs  []string
	}{
		{
			name:      "dev ≡ up development --build -d",
			aliasArgs: []string{"dev"},
			baseArgs:  []string{"up", "--mode", "development", "--args", "--build", "--args", "-d"},
		},
		{
			name:      "prod ≡ up production --build -d",
			aliasArgs: []string{"prod"},
			baseArgs:  []string{"up", "--mode", "production", "--args", "--build", "--args", "-d"},
		},
		{
			name:      "dev-down ≡ down development",
			aliasArgs: []string{"dev-down"},
			baseArgs:  []string{"down", "--mode", "development"},
		},
		{
			name:      "prod-down ≡ down production",
			aliasArgs: []string{"prod-down"},
			baseArgs:  []string{"down", "--mode", "production"},
		},
		{
			name:      "backend-logs ≡ logs --service backend",
			aliasArgs: []string{"backend-logs"},
			baseArgs:  []string{"logs", "--service", "backend"},
		},
		{
			name:      "gateway-logs ≡ logs --service gateway",
			aliasArgs: []string{"gateway-logs"},
			baseArgs:  []string{"logs", "--service", "gateway"},
		},
		{
			name:      "backend-shell ≡ shell --service backend",
			aliasArgs: []string{"backend-shell"},
			baseArgs:  []string{"shell", "--service", "backend"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aliasRec := setupRecorder(t, testConfig())
			require.NoError(t, execRoot(t, tt.aliasArgs...))
			aliasArgvs := aliasRec.Argvs()

			baseRec := setupRecorder(t, testConfig())
			require.NoError(t, execRoot(t, tt.baseArgs...))

			require.NotEmpty(t, aliasArgvs)
			assert.Equal(t, baseRec.Argvs(), aliasArgvs)
		})
	}
}

// TestAliasForwardsTrailingTokens verifies that trailing tokens on an
// alias pass through to the base operation unchanged.
func TestAliasForwardsTrailingTokens(t *testing.T) {
	rec := setupRecorder(t, testConfig())

	require.NoError(t, execRoot(t, "dev", "backend"))

	require.Len(t, rec.Invocations, 1)
	assert.Equal(t,
		"docker compose -p stackctl -f docker-compose.dev.yml up --build -d backend",
		rec.Argvs()[0])
}
