// Package cli — shell.go implements the "stackctl shell" command.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/compose"
)

// NewShellCommand creates the "shell" cobra command.
func NewShellCommand() *cobra.Command {
	var modeFlag string
	var serviceFlag string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Open an interactive shell in one unit",
		Long: `Open an interactive /bin/sh session inside a running service container.

Examples:
  stackctl shell
  stackctl shell --service gateway
  stackctl shell --mode production --service backend`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context(), modeFlag, serviceFlag)
		},
	}

	addModeFlag(cmd, &modeFlag)
	cmd.Flags().StringVarP(&serviceFlag, "service", "s", "",
		"Service to open a shell in (default: configured primary service)")
	return cmd
}

// runShell dispatches one interactive "docker compose exec <service>
// /bin/sh" invocation. Stdio is inherited, so the session behaves like
// running docker compose directly.
func runShell(ctx context.Context, modeFlag, service string) error {
	cfg, opts, err := resolveOptions(modeFlag, service, nil, nil)
	if err != nil {
		return err
	}
	if opts.Service == "" {
		opts.Service = cfg.DefaultService
	}
	warnUnknownService(cfg.ComposeFile(opts.Mode), opts.Service)

	return dispatch(ctx, compose.Exec(cfg, opts.Mode, opts.Service, true, "/bin/sh"))
}
