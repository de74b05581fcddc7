package execx

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/stackctl/internal/model"
)

// TestSystemRunPropagatesExitCode verifies that a child's non-zero exit
// status becomes the CLIError code unchanged.
func TestSystemRunPropagatesExitCode(t *testing.T) {
	err := System{}.Run(context.Background(), Invocation{
		Argv: []string{"sh", "-c", "exit 7"},
	})

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitCode(7), cliErr.Code)
}

// TestSystemRunSuccess verifies that a successful child returns nil and
// that Stdout redirection captures the child's output.
func TestSystemRunSuccess(t *testing.T) {
	var out bytes.Buffer
	err := System{}.Run(context.Background(), Invocation{
		Argv:   []string{"sh", "-c", "printf hello"},
		Stdout: &out,
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

// TestSystemRunMissingBinary verifies that a spawn failure (binary not
// installed) is reported as a general error, not a panic or a zero exit.
func TestSystemRunMissingBinary(t *testing.T) {
	err := System{}.Run(context.Background(), Invocation{
		Argv: []string{"stackctl-no-such-binary-for-test"},
	})

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

// TestRecorder verifies that the Recorder captures invocations in order
// without spawning anything, and returns its configured error.
func TestRecorder(t *testing.T) {
	rec := &Recorder{}

	require.NoError(t, rec.Run(context.Background(), Invocation{Argv: []string{"docker", "compose", "up"}}))
	require.NoError(t, rec.Run(context.Background(), Invocation{Argv: []string{"docker", "compose", "down"}}))

	assert.Equal(t, []string{
		"docker compose up",
		"docker compose down",
	}, rec.Argvs())

	rec.Err = errors.New("simulated failure")
	assert.Error(t, rec.Run(context.Background(), Invocation{Argv: []string{"docker", "ps"}}))
	assert.Len(t, rec.Invocations, 3)
}
