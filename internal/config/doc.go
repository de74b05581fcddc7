// Package config resolves the stackctl configuration for one invocation.
//
// Resolution is layered: compiled-in defaults, then an optional
// stackctl.jsonc project file (JSONC — comments and trailing commas are
// allowed), then a .env file, then process environment variables.
// Database credentials are only ever read from the environment layers,
// never baked into command templates.
package config
