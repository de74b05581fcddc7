package compose

import (
	"os"

	"github.com/mmr-tortoise/stackctl/internal/config"
	"github.com/mmr-tortoise/stackctl/internal/execx"
	"github.com/mmr-tortoise/stackctl/internal/model"
)

// Args returns the leading arguments shared by every compose invocation
// for the given mode: the compose subcommand, the project name, the
// mode's configuration file, and the env file when it exists on disk.
//
// The env file is conditional because docker compose fails hard on a
// missing --env-file, while a project without one is perfectly valid.
func Args(cfg config.Config, mode model.Mode) []string {
	args := []string{"compose"}
	if cfg.Project != "" {
		args = append(args, "-p", cfg.Project)
	}
	args = append(args, "-f", cfg.ComposeFile(mode))
	if cfg.EnvFile != "" {
		if st, err := os.Stat(cfg.EnvFile); err == nil && !st.IsDir() {
			args = append(args, "--env-file", cfg.EnvFile)
		}
	}
	return args
}

// Command assembles a full configuration-scoped invocation. The
// per-invocation inputs are appended after the fixed subcommand in a
// fixed order:
//
//	subcommand → ExtraArgs → Trailing → Service
//
// ExtraArgs and Trailing are forwarded verbatim; this layer never
// parses or validates them.
func Command(cfg config.Config, opts model.Options, sub ...string) execx.Invocation {
	args := Args(cfg, opts.Mode)
	args = append(args, sub...)
	args = append(args, opts.ExtraArgs...)
	args = append(args, opts.Trailing...)
	if opts.Service != "" {
		args = append(args, opts.Service)
	}
	return execx.Invocation{Argv: append([]string{"docker"}, args...)}
}

// Exec assembles a `docker compose exec` invocation. Unlike Command,
// the service name precedes the in-container command because that is
// the argument shape exec requires.
//
// interactive controls TTY allocation: the shell operation needs a TTY,
// while the database operations disable it (-T) so stdin and stdout can
// carry archive streams.
func Exec(cfg config.Config, mode model.Mode, service string, interactive bool, cmdArgs ...string) execx.Invocation {
	args := Args(cfg, mode)
	args = append(args, "exec")
	if !interactive {
		args = append(args, "-T")
	}
	args = append(args, service)
	args = append(args, cmdArgs...)
	return execx.Invocation{Argv: append([]string{"docker"}, args...)}
}

// Docker assembles a plain docker invocation (no compose file
// involved). Used by the cleanup operations for prune commands.
func Docker(args ...string) execx.Invocation {
	return execx.Invocation{Argv: append([]string{"docker"}, args...)}
}
