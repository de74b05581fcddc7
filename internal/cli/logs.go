// Package cli — logs.go implements the "stackctl logs" command.
//
// logs streams one service's log output. The service defaults to the
// configured primary service (backend unless overridden in
// stackctl.jsonc). If the selected compose file is readable and does
// not define the requested service, a warning is logged before
// dispatching — the orchestration tool stays the authority and still
// receives the command unchanged.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/compose"
)

// NewLogsCommand creates the "logs" cobra command.
func NewLogsCommand() *cobra.Command {
	var modeFlag string
	var serviceFlag string
	var extraArgs []string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Follow logs for one service",
		Long: `Follow the log output of a single service in the selected stack.

Examples:
  stackctl logs
  stackctl logs --service gateway
  stackctl logs --mode production --args --tail --args 100`,

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogs(cmd.Context(), modeFlag, serviceFlag, extraArgs, args)
		},
	}

	addModeFlag(cmd, &modeFlag)
	addArgsFlag(cmd, &extraArgs)
	cmd.Flags().StringVarP(&serviceFlag, "service", "s", "",
		"Service to stream logs for (default: configured primary service)")
	return cmd
}

// runLogs dispatches one "docker compose logs -f <service>" invocation.
func runLogs(ctx context.Context, modeFlag, service string, extra, trailing []string) error {
	cfg, opts, err := resolveOptions(modeFlag, service, extra, trailing)
	if err != nil {
		return err
	}
	if opts.Service == "" {
		opts.Service = cfg.DefaultService
	}
	warnUnknownService(cfg.ComposeFile(opts.Mode), opts.Service)

	return dispatch(ctx, compose.Command(cfg, opts, "logs", "-f"))
}

// warnUnknownService logs a warning when the compose file is readable
// and does not define the requested service. Unreadable or unparsable
// files are skipped silently; the external tool will report those.
func warnUnknownService(composeFile, service string) {
	if found, known := compose.HasService(composeFile, service); known && !found {
		logrus.Warnf("service %q is not defined in %s", service, composeFile)
	}
}
