// Package cli — build.go implements the "stackctl build" command.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/compose"
)

// NewBuildCommand creates the "build" cobra command.
func NewBuildCommand() *cobra.Command {
	var modeFlag string
	var extraArgs []string

	cmd := &cobra.Command{
		Use:   "build [services...]",
		Short: "Build images for the selected stack",
		Long: `Build (or rebuild) the images of the selected configuration.

Examples:
  stackctl build
  stackctl build --mode production --args --no-cache
  stackctl build backend`,

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), modeFlag, extraArgs, args)
		},
	}

	addModeFlag(cmd, &modeFlag)
	addArgsFlag(cmd, &extraArgs)
	return cmd
}

// runBuild dispatches one "docker compose build" invocation.
func runBuild(ctx context.Context, modeFlag string, extra, trailing []string) error {
	cfg, opts, err := resolveOptions(modeFlag, "", extra, trailing)
	if err != nil {
		return err
	}
	return dispatch(ctx, compose.Command(cfg, opts, "build"))
}
