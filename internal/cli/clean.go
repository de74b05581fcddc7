// Package cli — clean.go implements the cleanup commands: clean,
// clean-volumes, and clean-all, in increasing order of destructiveness.
//
// All three tear down BOTH known configurations (development first,
// then production) regardless of which one is currently running, then
// prune dangling resources. clean-all finishes with a full system
// prune including volumes — teardown must complete first, because a
// system prune while containers are still up would skip their
// resources.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/compose"
	"github.com/mmr-tortoise/stackctl/internal/model"
)

// bothModes is the teardown order used by every cleanup operation.
var bothModes = []model.Mode{model.ModeDevelopment, model.ModeProduction}

// NewCleanCommand creates the "clean" cobra command.
func NewCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Tear down both stacks and prune dangling images/networks",
		Long: `Bring down both the development and production stacks, then prune
dangling images and unused networks. Named volumes are preserved.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd.Context())
		},
	}
}

// runClean tears down both configurations, then prunes dangling images
// and unused networks.
func runClean(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	for _, mode := range bothModes {
		opts := model.Options{Mode: mode}
		if err := dispatch(ctx, compose.Command(cfg, opts, "down", "--remove-orphans")); err != nil {
			return err
		}
	}

	if err := dispatch(ctx, compose.Docker("image", "prune", "-f")); err != nil {
		return err
	}
	return dispatch(ctx, compose.Docker("network", "prune", "-f"))
}

// NewCleanVolumesCommand creates the "clean-volumes" cobra command.
func NewCleanVolumesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-volumes",
		Short: "Tear down both stacks including their volumes",
		Long: `Bring down both the development and production stacks and remove their
named and anonymous volumes. Database contents are lost unless backed up.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCleanVolumes(cmd.Context())
		},
	}
}

// runCleanVolumes tears down both configurations with volume removal.
func runCleanVolumes(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	for _, mode := range bothModes {
		opts := model.Options{Mode: mode}
		if err := dispatch(ctx, compose.Command(cfg, opts, "down", "-v", "--remove-orphans")); err != nil {
			return err
		}
	}
	return nil
}

// NewCleanAllCommand creates the "clean-all" cobra command.
func NewCleanAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-all",
		Short: "Tear down everything and run a full system prune (IRREVERSIBLE)",
		Long: `Run clean (both stacks down, dangling images and networks pruned), then
a full docker system prune including ALL unused volumes.

This is IRREVERSIBLE: every unused image, container, network, and volume
on the host is removed — including data belonging to other projects.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCleanAll(cmd.Context())
		},
	}
}

// runCleanAll composes clean and a full system prune. The teardown
// MUST come first: pruning with volumes while containers still run
// would leave their resources behind.
func runCleanAll(ctx context.Context) error {
	if err := runClean(ctx); err != nil {
		return err
	}
	return dispatch(ctx, compose.Docker("system", "prune", "-af", "--volumes"))
}
