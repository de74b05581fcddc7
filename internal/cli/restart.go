// Package cli — restart.go implements the "stackctl restart" command.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/compose"
)

// NewRestartCommand creates the "restart" cobra command.
func NewRestartCommand() *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "restart [services...]",
		Short: "Restart the selected stack's units",
		Long: `Restart running units without recreating them.

Examples:
  stackctl restart
  stackctl restart --mode production
  stackctl restart backend`,

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestart(cmd.Context(), modeFlag, args)
		},
	}

	addModeFlag(cmd, &modeFlag)
	return cmd
}

// runRestart dispatches one "docker compose restart" invocation.
func runRestart(ctx context.Context, modeFlag string, trailing []string) error {
	cfg, opts, err := resolveOptions(modeFlag, "", nil, trailing)
	if err != nil {
		return err
	}
	return dispatch(ctx, compose.Command(cfg, opts, "restart"))
}
