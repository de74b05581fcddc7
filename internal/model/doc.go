// Package model defines the domain types for the stackctl CLI.
//
// The central types are Mode (the deployment-environment selector that
// chooses which compose file an operation targets) and Options (the
// per-invocation inputs that parameterize a dispatched command). All
// values are resolved once per invocation from flags and configuration,
// then discarded — this layer owns no persistent state of its own.
package model
