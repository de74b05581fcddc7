package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mmr-tortoise/stackctl/internal/model"
)

// Invocation describes one fully-qualified external command. It is a
// pure value: building an Invocation has no side effects, which lets
// tests assert on the exact command line without running it.
type Invocation struct {
	// Argv is the complete command line. Argv[0] is the binary name,
	// resolved through PATH.
	Argv []string

	// Dir is the working directory for the command. Empty means the
	// current directory.
	Dir string

	// Env holds extra KEY=VALUE entries appended to the inherited
	// process environment.
	Env []string

	// Stdin, when non-nil, replaces the inherited standard input.
	// Used by restore to stream an archive into the database client.
	Stdin io.Reader

	// Stdout, when non-nil, replaces the inherited standard output.
	// Used by backup to stream a dump into the archive file.
	Stdout io.Writer
}

// String returns the command line as a single shell-style string.
// Used for dry-run and verbose output.
func (inv Invocation) String() string {
	return strings.Join(inv.Argv, " ")
}

// Runner executes an Invocation. Exactly one Runner exists per process;
// tests substitute a Recorder to observe dispatched commands.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// System is the production Runner. It spawns the process with stdio
// inherited from stackctl, so the external tool's output and prompts
// pass through unmodified. No timeouts or retries: a hung external
// command hangs the invocation.
type System struct{}

// Run executes the invocation and waits for it to complete. When the
// child exits non-zero, the returned CLIError carries the child's exit
// status unchanged so it becomes stackctl's own exit code.
func (System) Run(ctx context.Context, inv Invocation) error {
	if len(inv.Argv) == 0 {
		return model.NewCLIError(model.ExitGeneralError, "empty invocation")
	}

	cmd := exec.CommandContext(ctx, inv.Argv[0], inv.Argv[1:]...)
	cmd.Dir = inv.Dir
	cmd.Env = append(os.Environ(), inv.Env...)

	// Inherit stdio by default so interactive commands (shell, logs -f)
	// behave exactly as if the user had run the tool directly.
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if inv.Stdin != nil {
		cmd.Stdin = inv.Stdin
	}
	if inv.Stdout != nil {
		cmd.Stdout = inv.Stdout
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	// Non-zero exit: propagate the child's status verbatim. The child
	// already wrote its diagnostics to the inherited stderr, so the
	// message stays short.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return model.WrapCLIError(
			model.ExitCode(exitErr.ExitCode()),
			fmt.Sprintf("%s exited with status %d", inv.Argv[0], exitErr.ExitCode()),
			err,
		)
	}

	// Spawn failure (binary not installed, permission denied) or a
	// signal-terminated child with no usable exit status.
	return model.WrapCLIError(
		model.ExitGeneralError,
		fmt.Sprintf("failed to run %s", inv.Argv[0]),
		err,
	)
}

// Recorder is a Runner that captures invocations instead of spawning
// processes. Tests use it to assert both the exact command lines a CLI
// operation produces and that operations like help or a failed restore
// spawn nothing at all.
type Recorder struct {
	// Invocations holds every invocation passed to Run, in order.
	Invocations []Invocation

	// Err, when non-nil, is returned from every Run call to simulate
	// an external tool failure.
	Err error
}

// Run records the invocation and returns the configured error.
func (r *Recorder) Run(_ context.Context, inv Invocation) error {
	r.Invocations = append(r.Invocations, inv)
	return r.Err
}

// Argvs returns the recorded command lines as strings, one per
// invocation. Convenience for test assertions.
func (r *Recorder) Argvs() []string {
	out := make([]string, 0, len(r.Invocations))
	for _, inv := range r.Invocations {
		out = append(out, inv.String())
	}
	return out
}
