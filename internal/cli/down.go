// Package cli — down.go implements the "stackctl down" command.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/compose"
)

// NewDownCommand creates the "down" cobra command.
func NewDownCommand() *cobra.Command {
	var modeFlag string
	var extraArgs []string

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Bring the selected stack's units down",
		Long: `Stop and remove the units of the selected configuration.

Examples:
  stackctl down
  stackctl down --mode production
  stackctl down --args --remove-orphans`,

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDown(cmd.Context(), modeFlag, extraArgs, args)
		},
	}

	addModeFlag(cmd, &modeFlag)
	addArgsFlag(cmd, &extraArgs)
	return cmd
}

// runDown dispatches one "docker compose down" invocation.
func runDown(ctx context.Context, modeFlag string, extra, trailing []string) error {
	cfg, opts, err := resolveOptions(modeFlag, "", extra, trailing)
	if err != nil {
		return err
	}
	return dispatch(ctx, compose.Command(cfg, opts, "down"))
}
