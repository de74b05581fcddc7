package health

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// probeTimeout bounds a single probe. Generous enough for a local
// endpoint that is merely slow, short enough that a dead endpoint does
// not stall the whole check noticeably.
const probeTimeout = 5 * time.Second

// Probe is a single named check against one collaborator.
type Probe struct {
	// Name identifies the probe in output (e.g. "gateway", "backend").
	Name string

	// Check performs the probe. A nil return means healthy.
	Check func(ctx context.Context) error
}

// Result is the outcome of one probe.
type Result struct {
	// Name is the probe's name.
	Name string

	// Err is nil when the probe succeeded.
	Err error
}

// OK reports whether the probe succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Run executes every probe and returns one Result per probe, in input
// order. Each probe runs under its own derived context with its own
// timeout — there is no shared cancellation, so one probe's failure
// cannot cut another one short.
func Run(ctx context.Context, probes []Probe) []Result {
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := p.Check(probeCtx)
		cancel()
		results = append(results, Result{Name: p.Name, Err: err})
	}
	return results
}

// HTTPProbe builds a check that issues one unauthenticated GET against
// the given URL. Any 2xx or 3xx status counts as healthy; connection
// errors and 4xx/5xx statuses count as failures.
func HTTPProbe(url string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("invalid probe URL %s: %w", url, err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return fmt.Errorf("probe %s failed: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return fmt.Errorf("probe %s returned status %d", url, resp.StatusCode)
		}
		return nil
	}
}
