// Package dedupe removes records colliding on path or on the name+size
// fingerprint used as a proxy for content identity.
package dedupe

import (
	"strings"

	"libshelf/internal/domain"
	"libshelf/internal/logger"
)

// fingerprint pairs a case-insensitive name with an exact size.
// Content is never hashed; two files with the same name and size are
// treated as duplicates even in different directories.
type fingerprint struct {
	name string
	size int64
}

// Deduplicate returns the first-seen-wins subsequence of records under two
// independent uniqueness keys: case-insensitive absolute path, and the
// name+size fingerprint. A record is kept only if neither key has been seen;
// once kept, both its keys are marked seen.
//
// The result depends on the traversal order of the input; no sorting is
// imposed here.
func Deduplicate(records []domain.FileRecord) []domain.FileRecord {
	log := logger.With("stage", "dedupe")

	seenPaths := make(map[string]bool, len(records))
	seenFingerprints := make(map[fingerprint]bool, len(records))
	deduped := make([]domain.FileRecord, 0, len(records))

	for _, record := range records {
		pathKey := strings.ToLower(record.Path)
		fp := fingerprint{name: strings.ToLower(record.Name), size: record.Size}

		if seenPaths[pathKey] {
			log.Debug("dropped duplicate path", "path", record.Path)
			continue
		}
		if seenFingerprints[fp] {
			log.Debug("dropped duplicate fingerprint", "path", record.Path, "name", record.Name, "size", record.Size)
			continue
		}

		seenPaths[pathKey] = true
		seenFingerprints[fp] = true
		deduped = append(deduped, record)
	}

	if dropped := len(records) - len(deduped); dropped > 0 {
		log.Info("deduplication complete", "kept", len(deduped), "dropped", dropped)
	}
	return deduped
}
