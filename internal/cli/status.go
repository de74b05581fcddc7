// Package cli — status.go implements the "stackctl status" command.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/compose"
)

// NewStatusCommand creates the "status" cobra command.
func NewStatusCommand() *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "List unit statuses for the selected stack",
		Long: `List the status of the selected configuration's units, as reported
by docker compose ps.

Examples:
  stackctl status
  stackctl status --mode production
  stackctl status -- --all`,

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), modeFlag, args)
		},
	}

	addModeFlag(cmd, &modeFlag)
	return cmd
}

// runStatus dispatches one "docker compose ps" invocation.
func runStatus(ctx context.Context, modeFlag string, trailing []string) error {
	cfg, opts, err := resolveOptions(modeFlag, "", nil, trailing)
	if err != nil {
		return err
	}
	return dispatch(ctx, compose.Command(cfg, opts, "ps"))
}
