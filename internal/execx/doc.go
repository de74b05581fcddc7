// Package execx runs the external commands that stackctl dispatches.
//
// The Runner interface is the single seam between command construction
// and process execution: production code uses System, which spawns the
// process with inherited stdio, while tests use Recorder, which captures
// invocations without spawning anything.
package execx
