// Package export renders the record collection as the JSON and structured
// text views consumed by downstream tools.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"libshelf/internal/domain"
	"libshelf/internal/fsutil"
	"libshelf/internal/logger"
)

// Summary maps each category to the sorted list of its file names.
func Summary(records []domain.FileRecord) map[string][]string {
	summary := make(map[string][]string)
	for _, r := range records {
		summary[r.Category] = append(summary[r.Category], r.Name)
	}
	for _, names := range summary {
		sort.Strings(names)
	}
	return summary
}

// document is the JSON export schema.
type document struct {
	Summary map[string][]string `json:"summary"`
	Files   []domain.FileRecord `json:"files"`
}

// WriteJSON writes the JSON export, creating parent directories as needed.
func WriteJSON(path string, records []domain.FileRecord) error {
	doc := document{Summary: Summary(records), Files: records}
	if doc.Files == nil {
		doc.Files = []domain.FileRecord{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	logger.Get().Info("wrote JSON results", "path", path, "records", len(records))
	return nil
}

// WriteText writes the structured text report, creating parent directories
// as needed.
func WriteText(path string, records []domain.FileRecord) error {
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(FormatText(records)), 0644); err != nil {
		return err
	}
	logger.Get().Info("wrote text results", "path", path, "records", len(records))
	return nil
}

// FormatText renders the report: a total count header, the per-category
// summary with sorted names, then the detailed per-record listing in
// collection order.
func FormatText(records []domain.FileRecord) string {
	summary := Summary(records)
	categories := make([]string, 0, len(summary))
	for category := range summary {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var lines []string
	lines = append(lines, fmt.Sprintf("Total files: %d", len(records)))
	lines = append(lines, "\nSummary by category:")
	for _, category := range categories {
		names := summary[category]
		lines = append(lines, fmt.Sprintf("- %s (%d):", category, len(names)))
		for _, name := range names {
			lines = append(lines, "  • "+name)
		}
	}

	lines = append(lines, "\nDetailed files:")
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("- %s: %s [%s] (%d bytes)\n  %s",
			r.Category, r.Name, r.Extension, r.Size, r.Path))
	}
	return strings.Join(lines, "\n")
}
