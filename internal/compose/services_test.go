package compose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeComposeFile writes a minimal compose YAML to a temp dir and
// returns its path.
func writeComposeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docker-compose.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestServices verifies that service names are extracted and sorted.
func TestServices(t *testing.T) {
	path := writeComposeFile(t, `
services:
  gateway:
    image: nginx:alpine
    ports:
      - "8080:80"
  backend:
    build: .
  mongodb:
    image: mongo:7
`)

	names, err := Services(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"backend", "gateway", "mongodb"}, names)
}

// TestServicesMissingFile verifies that a missing compose file is an
// error, not an empty result.
func TestServicesMissingFile(t *testing.T) {
	_, err := Services(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

// TestServicesInvalidYAML verifies parse errors are surfaced.
func TestServicesInvalidYAML(t *testing.T) {
	path := writeComposeFile(t, "services: [not: a: map\n")
	_, err := Services(path)
	assert.Error(t, err)
}

// TestHasService covers the three outcomes: defined, not defined, and
// unknown because the file is unreadable.
func TestHasService(t *testing.T) {
	path := writeComposeFile(t, "services:\n  backend:\n    build: .\n")

	found, known := HasService(path, "backend")
	assert.True(t, found)
	assert.True(t, known)

	found, known = HasService(path, "gateway")
	assert.False(t, found)
	assert.True(t, known)

	found, known = HasService(filepath.Join(t.TempDir(), "missing.yml"), "backend")
	assert.False(t, found)
	assert.False(t, known)
}
