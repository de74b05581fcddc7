package compose

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// composeFile captures the single top-level field this package cares
// about. Service definitions are kept opaque — stackctl never
// interprets their contents, only their names.
type composeFile struct {
	Services map[string]yaml.Node `yaml:"services"`
}

// Services returns the unit names defined in the given compose file,
// sorted for deterministic output.
//
// This is a convenience for the services command and for friendlier
// diagnostics on service-scoped operations; the orchestration tool
// remains the authority on what the file actually means.
func Services(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compose file %s: %w", path, err)
	}

	var f composeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse compose file %s: %w", path, err)
	}

	names := make([]string, 0, len(f.Services))
	for name := range f.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// HasService reports whether the compose file defines the named unit.
// Errors reading or parsing the file count as "unknown", returned via
// the second value, so callers can degrade to a soft warning instead of
// blocking the dispatch.
func HasService(path, service string) (found bool, known bool) {
	names, err := Services(path)
	if err != nil {
		return false, false
	}
	for _, n := range names {
		if n == service {
			return true, true
		}
	}
	return false, true
}
