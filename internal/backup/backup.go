package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// timestampLayout formats archive timestamps as YYYYMMDD-HHMMSS.
// Second granularity means two backups within the same second collide;
// acceptable for a manually-invoked workflow.
const timestampLayout = "20060102-150405"

// ArchiveName returns the backup file name for the given time, e.g.
// "db-backup-20260830-142501.archive".
func ArchiveName(t time.Time) string {
	return fmt.Sprintf("db-backup-%s.archive", t.Format(timestampLayout))
}

// EnsureDir creates the backup directory if it does not exist.
// Idempotent: an existing directory is not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory %s: %w", dir, err)
	}
	return nil
}

// CreateArchive prepares the output file for a new backup under dir,
// named after the given timestamp. The caller streams the dump into the
// returned file and is responsible for closing it.
//
// A failed dump leaves the (possibly empty) file behind; there is no
// compensation step, matching the fire-and-forget contract of the
// backup operation.
func CreateArchive(dir string, t time.Time) (*os.File, string, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, "", err
	}

	path := filepath.Join(dir, ArchiveName(t))
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create backup archive %s: %w", path, err)
	}
	return f, path, nil
}
