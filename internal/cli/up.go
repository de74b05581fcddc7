// Package cli — up.go implements the "stackctl up" command.
//
// up brings the selected configuration's units up. Trailing tokens are
// forwarded verbatim, so callers can name individual services or pass
// flags this layer does not model.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/compose"
)

// NewUpCommand creates the "up" cobra command.
func NewUpCommand() *cobra.Command {
	var modeFlag string
	var extraArgs []string

	cmd := &cobra.Command{
		Use:   "up [services...]",
		Short: "Bring the selected stack's units up",
		Long: `Bring up the units defined in the selected configuration.

Trailing arguments are forwarded verbatim to docker compose, so you can
start a subset of services or pass through unmodeled flags:

  stackctl up
  stackctl up --mode production --args --build --args -d
  stackctl up backend gateway
  stackctl up -- -d --no-deps backend`,

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runUp(cmd.Context(), modeFlag, extraArgs, args)
		},
	}

	addModeFlag(cmd, &modeFlag)
	addArgsFlag(cmd, &extraArgs)
	return cmd
}

// runUp dispatches one "docker compose up" invocation. The alias
// commands (dev, prod) call this directly with pre-bound inputs.
func runUp(ctx context.Context, modeFlag string, extra, trailing []string) error {
	cfg, opts, err := resolveOptions(modeFlag, "", extra, trailing)
	if err != nil {
		return err
	}
	return dispatch(ctx, compose.Command(cfg, opts, "up"))
}
