// Package compose builds docker compose command lines for the
// dispatcher.
//
// Everything here is pure argument assembly: mode resolves to exactly
// one of the two configured compose files, and the per-invocation
// inputs are appended in a fixed order (subcommand, extra arguments,
// trailing tokens, service). No process is spawned from this package.
package compose
