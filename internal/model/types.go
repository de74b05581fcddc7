package model

import (
	"fmt"
	"strings"
)

// Mode selects which deployment configuration an operation targets.
// Every configuration-scoped command resolves its compose file through
// this value, so mode and compose-file path stay in strict 1:1
// correspondence.
type Mode string

const (
	// ModeDevelopment targets the development compose configuration.
	// This is the default for every operation that accepts a mode.
	ModeDevelopment Mode = "development"

	// ModeProduction targets the production compose configuration.
	ModeProduction Mode = "production"
)

// String returns the string representation of Mode.
// Satisfies fmt.Stringer for CLI output and logging.
func (m Mode) String() string {
	return string(m)
}

// IsValid checks whether the Mode value is one of the two recognized
// deployment environments.
func (m Mode) IsValid() bool {
	switch m {
	case ModeDevelopment, ModeProduction:
		return true
	default:
		return false
	}
}

// ParseMode converts a string to a Mode. The short forms "dev" and
// "prod" are accepted alongside the full names.
//
// Unrecognized values are rejected with a usage error rather than
// silently falling back to development — a typo like "staging" must
// never bring up the wrong stack.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return ModeDevelopment, nil
	case "prod", "production":
		return ModeProduction, nil
	default:
		return "", NewCLIError(ExitUsageError,
			fmt.Sprintf("unknown mode %q (valid: development, dev, production, prod)", s))
	}
}

// Options carries the per-invocation inputs that parameterize a
// dispatched command. It is constructed once from flags and passed by
// value; there are no ambient mutable defaults.
//
// When building the external command line, the fields are appended in
// a fixed order after the compose subcommand:
//
//	subcommand → ExtraArgs → Trailing → Service
type Options struct {
	// Mode selects the deployment configuration.
	Mode Mode

	// Service names a single unit inside the selected configuration.
	// Only service-scoped operations (logs, shell) set it; when present
	// it is appended last on the generated command line.
	Service string

	// ExtraArgs are opaque tokens forwarded verbatim to the external
	// tool, supplied via the --args flag. They allow passthrough of
	// flags this layer does not model (e.g. --build, -d, --tail).
	ExtraArgs []string

	// Trailing are positional tokens supplied after the operation name
	// on the invoking command line. They are forwarded verbatim, never
	// parsed or validated, so callers can pass additional service names
	// or flags straight through.
	Trailing []string
}

// ExitCode defines the process exit codes used by stackctl.
// External tool failures are not translated: their exit status is
// carried through as-is via CLIError.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsageError indicates invalid user input (unknown mode,
	// missing required argument). Detected before any external call.
	ExitUsageError ExitCode = 2

	// ExitDockerNotRunning indicates the Docker daemon is not
	// accessible.
	ExitDockerNotRunning ExitCode = 3
)

// CLIError is an error that carries a process exit code, allowing the
// CLI layer to translate failures into the right exit status. For
// external tool failures the code is the child process's own exit
// status, propagated unchanged.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
