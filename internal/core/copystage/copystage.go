// Package copystage performs the staged per-category copy: dry run, confirm,
// execute without overwriting, append an audit log. It is the only part of
// the pipeline that writes into the destination tree; the source tree is
// never mutated.
package copystage

import (
	"fmt"
	"os"
	"path/filepath"

	"libshelf/internal/console"
	"libshelf/internal/domain"
	"libshelf/internal/fsutil"
	"libshelf/internal/logger"
)

// DefaultLogName is used when no log path is supplied.
const DefaultLogName = "copy_log.txt"

// Stager copies the final record collection into category-named folders
// under the destination root.
type Stager struct {
	// Destination is the copy root. Empty skips the whole stage.
	Destination string

	// LogPath overrides the default <destination>/copy_log.txt.
	LogPath string

	prompter *console.Prompter
	log      logger.Logger
}

// New creates a stager
func New(destination, logPath string, prompter *console.Prompter) *Stager {
	return &Stager{
		Destination: destination,
		LogPath:     logPath,
		prompter:    prompter,
		log:         logger.With("stage", "copy"),
	}
}

// Run executes the staged copy protocol over the grouped view, each
// category independently gated. The only fatal condition is a destination
// that exists but is not a directory; a declined gate skips its scope and
// a per-file failure is logged and the batch continues.
func (s *Stager) Run(records []domain.FileRecord) error {
	if len(records) == 0 {
		return nil
	}
	if s.Destination == "" {
		s.prompter.Printf("No copy destination provided. Skipping copy workflow.\n")
		return nil
	}

	ok, err := s.ensureDestination()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	logPath := s.LogPath
	if logPath == "" {
		logPath = filepath.Join(s.Destination, DefaultLogName)
	}

	groups := domain.GroupByCategory(records)
	s.prompter.Printf("\nStaged copy workflow ready.\n")
	s.prompter.Printf("Destination: %s\n", s.Destination)
	s.prompter.Printf("Log file: %s\n", logPath)
	s.prompter.Printf("Categories to consider (counts):\n")
	for _, group := range groups {
		s.prompter.Printf("  - %s: %d\n", group.Category, len(group.Records))
	}

	if !s.prompter.Confirm("Begin step-by-step copy of categories? This will always prompt before copying.") {
		s.prompter.Printf("Copy workflow skipped by user.\n")
		return nil
	}

	for _, group := range groups {
		s.prompter.Printf("\nCategory: %s (%d files)\n", group.Category, len(group.Records))
		if !s.prompter.Confirm(fmt.Sprintf("Handle category '%s' with a dry run?", group.Category)) {
			s.prompter.Printf("  Skipped.\n")
			continue
		}
		s.dryRun(group)

		if !s.prompter.Confirm(fmt.Sprintf("Proceed to copy category '%s' to %s?", group.Category, s.Destination)) {
			s.prompter.Printf("  Copy skipped after dry run.\n")
			continue
		}
		entries, err := s.execute(group)
		if err != nil {
			s.prompter.Printf("  Error preparing category '%s': %v\n", group.Category, err)
			continue
		}
		if err := appendSession(logPath, entries); err != nil {
			s.log.Error("failed to append copy log", "path", logPath, "error", err)
			s.prompter.Printf("  Warning: could not write copy log: %v\n", err)
		}
		s.prompter.Printf("  Completed copying category '%s'.\n", group.Category)
	}
	return nil
}

// ensureDestination validates or creates the copy root. ok=false means the
// workflow should be skipped without error (creation declined).
func (s *Stager) ensureDestination() (bool, error) {
	info, err := os.Stat(s.Destination)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%w: %s", domain.ErrDestinationNotDirectory, s.Destination)
		}
		return true, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}

	if !s.prompter.Confirm(fmt.Sprintf("Create copy destination directory? %s", s.Destination)) {
		s.prompter.Printf("Copy destination not created; skipping copy workflow.\n")
		return false, nil
	}
	if err := fsutil.EnsureDir(s.Destination); err != nil {
		return false, err
	}
	return true, nil
}

// dryRun prints the planned source → destination mapping, performing no I/O.
func (s *Stager) dryRun(group domain.Group) {
	destDir := filepath.Join(s.Destination, group.Category)
	s.prompter.Printf("\nDry run for category '%s' -> %s\n", group.Category, destDir)
	if len(group.Records) == 0 {
		s.prompter.Printf("  No files to copy.\n")
		return
	}
	for _, record := range group.Records {
		s.prompter.Printf("  PLAN: copy %s -> %s\n", record.Path, filepath.Join(destDir, record.Name))
	}
}

// execute copies one category. Existing destination files are never
// overwritten; a failed copy is captured with its cause and the batch
// moves on to the next file.
func (s *Stager) execute(group domain.Group) ([]string, error) {
	destDir := filepath.Join(s.Destination, group.Category)
	if err := fsutil.EnsureDir(destDir); err != nil {
		return nil, err
	}

	var entries []string
	for _, record := range group.Records {
		destination := filepath.Join(destDir, record.Name)

		if _, err := os.Lstat(destination); err == nil {
			s.prompter.Printf("  SKIP: destination already exists, leaving untouched -> %s\n", destination)
			entries = append(entries, fmt.Sprintf("SKIP existing %s (source %s)", destination, record.Path))
			s.log.Info("skipped existing destination", "destination", destination)
			continue
		}

		if err := fsutil.CopyFilePreserving(record.Path, destination); err != nil {
			s.prompter.Printf("  ERROR: failed to copy %s -> %s: %v\n", record.Path, destination, err)
			entries = append(entries, fmt.Sprintf("ERROR %s -> %s: %v", record.Path, destination, err))
			s.log.Error("copy failed", "source", record.Path, "destination", destination, "error", err)
			continue
		}

		s.prompter.Printf("  COPIED: %s -> %s\n", record.Path, destination)
		entries = append(entries, fmt.Sprintf("COPIED %s -> %s", record.Path, destination))
		s.log.Info("copied", "source", record.Path, "destination", destination)
	}
	return entries, nil
}
