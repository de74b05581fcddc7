// Package cli — alias.go defines the alias commands: named shortcuts
// that pre-bind inputs of a base operation and nothing more.
//
// Each alias delegates to the same run function as its base command, so
// an alias always produces exactly the external invocation that manual
// supply of its pre-bound inputs would. The table below is the full
// catalog; adding an alias is adding a row.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// alias describes one pre-bound shortcut.
type alias struct {
	use   string
	short string

	// run delegates to a base operation with inputs pre-bound.
	// Trailing tokens from the alias's own command line are forwarded
	// to the base operation where it accepts them.
	run func(ctx context.Context, trailing []string) error
}

// aliasTable returns the alias catalog.
func aliasTable() []alias {
	return []alias{
		{
			use:   "dev",
			short: "Start the development stack detached, building images first",
			run: func(ctx context.Context, trailing []string) error {
				return runUp(ctx, "development", []string{"--build", "-d"}, trailing)
			},
		},
		{
			use:   "prod",
			short: "Start the production stack detached, building images first",
			run: func(ctx context.Context, trailing []string) error {
				return runUp(ctx, "production", []string{"--build", "-d"}, trailing)
			},
		},
		{
			use:   "dev-down",
			short: "Bring the development stack down",
			run: func(ctx context.Context, trailing []string) error {
				return runDown(ctx, "development", nil, trailing)
			},
		},
		{
			use:   "prod-down",
			short: "Bring the production stack down",
			run: func(ctx context.Context, trailing []string) error {
				return runDown(ctx, "production", nil, trailing)
			},
		},
		{
			use:   "backend-logs",
			short: "Follow the backend service logs (development)",
			run: func(ctx context.Context, trailing []string) error {
				return runLogs(ctx, "development", "backend", nil, trailing)
			},
		},
		{
			use:   "gateway-logs",
			short: "Follow the gateway service logs (development)",
			run: func(ctx context.Context, trailing []string) error {
				return runLogs(ctx, "development", "gateway", nil, trailing)
			},
		},
		{
			use:   "backend-shell",
			short: "Open a shell in the backend service (development)",
			run: func(ctx context.Context, _ []string) error {
				return runShell(ctx, "development", "backend")
			},
		},
	}
}

// NewAliasCommands builds a cobra command per alias table row.
func NewAliasCommands() []*cobra.Command {
	table := aliasTable()
	cmds := make([]*cobra.Command, 0, len(table))
	for _, a := range table {
		a := a
		cmds = append(cmds, &cobra.Command{
			Use:   a.use,
			Short: a.short,

			Args: cobra.ArbitraryArgs,

			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd.Context(), args)
			},
		})
	}
	return cmds
}
