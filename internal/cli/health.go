// Package cli — health.go implements the "stackctl health" command.
//
// health runs three independent probes: the Docker daemon, the gateway
// endpoint, and the backend endpoint. Each result is reported on its
// own; a failing probe is a warning, never a process failure, and never
// prevents the other probes from running or being reported.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/stackctl/internal/docker"
	"github.com/mmr-tortoise/stackctl/internal/health"
)

// NewHealthCommand creates the "health" cobra command.
func NewHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the Docker daemon, gateway, and backend endpoints",
		Long: `Issue fire-and-forget health probes against the Docker daemon and the
configured gateway and backend endpoints. Each probe is reported
independently; failures are warnings and the command always exits 0.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHealth(cmd.Context())
		},
	}
}

// runHealth executes the probes and reports per-probe outcomes.
func runHealth(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	results := health.Run(ctx, []health.Probe{
		{Name: "docker", Check: daemonProbe},
		{Name: "gateway", Check: health.HTTPProbe(cfg.Health.GatewayURL)},
		{Name: "backend", Check: health.HTTPProbe(cfg.Health.BackendURL)},
	})

	printHealthResults(results)
	return nil
}

// daemonProbe checks Docker daemon reachability via the SDK client.
func daemonProbe(ctx context.Context) error {
	cli, err := docker.NewClient()
	if err != nil {
		return err
	}
	defer func() { _ = cli.Close() }()
	return cli.Ping(ctx)
}

// printHealthResults reports every probe outcome plus a summary line.
func printHealthResults(results []health.Result) {
	if IsJSONOutput() {
		printHealthResultsJSON(results)
		return
	}

	healthy := 0
	for _, r := range results {
		if r.OK() {
			healthy++
			fmt.Printf("  %-8s OK\n", r.Name)
			continue
		}
		fmt.Printf("  %-8s FAIL\n", r.Name)
		logrus.Warnf("%s probe failed: %v", r.Name, r.Err)
	}
	fmt.Printf("%d/%d probes healthy\n", healthy, len(results))
}

// printHealthResultsJSON reports probe outcomes as structured JSON.
func printHealthResultsJSON(results []health.Result) {
	type probeJSON struct {
		Name    string `json:"name"`
		Healthy bool   `json:"healthy"`
		Error   string `json:"error,omitempty"`
	}

	out := struct {
		Probes []probeJSON `json:"probes"`
	}{Probes: make([]probeJSON, 0, len(results))}

	for _, r := range results {
		p := probeJSON{Name: r.Name, Healthy: r.OK()}
		if r.Err != nil {
			p.Error = r.Err.Error()
		}
		out.Probes = append(out.Probes, p)
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}
