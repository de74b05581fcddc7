// Package health implements the fire-and-forget probes behind the
// health command.
//
// Probes are fully independent: each gets its own context and timeout,
// and a failing probe neither cancels nor suppresses any other. Results
// are collected and reported together; failures never escalate to a
// process failure.
package health
