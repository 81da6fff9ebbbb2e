package copystage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"libshelf/internal/fsutil"
)

// appendSession appends one session's entries to the copy log, preceded by
// a UTC timestamp header line. The log is append-only: prior sessions are
// never truncated. Nothing is written for an empty session.
func appendSession(path string, entries []string) error {
	if len(entries) == 0 {
		return nil
	}

	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	if _, err := fmt.Fprintf(file, "\n# Copy session %s\n", timestamp); err != nil {
		file.Close()
		return err
	}
	for _, line := range entries {
		if _, err := fmt.Fprintln(file, line); err != nil {
			file.Close()
			return err
		}
	}
	return file.Close()
}
