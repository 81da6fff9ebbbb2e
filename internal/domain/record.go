package domain

import "sort"

// FileRecord represents one qualifying file discovered under the scan root.
// It is the only entity the pipeline passes between stages. Category is the
// sole mutable attribute after creation, and only the organize stage writes
// to it; records leave the working collection only through an explicit
// remove action.
type FileRecord struct {
	// Path is the fully resolved absolute path (symlinks and relative
	// segments normalized) so later path comparisons are reliable.
	Path string `json:"path"`

	// Name is the base name including extension.
	Name string `json:"name"`

	// Size in bytes. Always > 0 for records in the working set.
	Size int64 `json:"size"`

	// Extension is lowercase and includes the leading dot, or is empty.
	Extension string `json:"extension"`

	// Category is the label assigned at scan time and freely reassigned
	// during organization.
	Category string `json:"category"`
}

// Group is one bucket of the grouped view: all records currently carrying
// the same category, in working-collection order. Entries are displayed
// numbered 1..N; those numbers are valid only against the listing they
// came from.
type Group struct {
	Category string
	Records  []FileRecord
}

// GroupByCategory builds the grouped view: categories sorted
// lexicographically, records within a category in their collection order.
func GroupByCategory(records []FileRecord) []Group {
	byCategory := make(map[string][]FileRecord)
	for _, r := range records {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, Group{Category: name, Records: byCategory[name]})
	}
	return groups
}

// Categories returns the sorted set of category names present in records.
func Categories(records []FileRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		if !seen[r.Category] {
			seen[r.Category] = true
			names = append(names, r.Category)
		}
	}
	sort.Strings(names)
	return names
}

// HasCategory reports whether any record currently carries the category.
func HasCategory(records []FileRecord, category string) bool {
	for _, r := range records {
		if r.Category == category {
			return true
		}
	}
	return false
}
