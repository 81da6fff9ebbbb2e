// Package scan walks a root directory and emits candidate records for the
// rest of the pipeline. It performs read-only filesystem queries only.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"libshelf/internal/core/category"
	"libshelf/internal/domain"
	"libshelf/internal/fsutil"
	"libshelf/internal/logger"
)

// TargetExtensions is the default include set when none is supplied.
var TargetExtensions = map[string]bool{
	".pdf":  true,
	".epub": true,
	".docx": true,
	".doc":  true,
	".txt":  true,
	".mobi": true,
	".azw":  true,
	".azw3": true,
	".rtf":  true,
	".md":   true,
}

// VideoExtensions are skipped unless media is explicitly allowed.
var VideoExtensions = map[string]bool{
	".mp4": true,
	".mkv": true,
	".avi": true,
	".mov": true,
	".wmv": true,
}

// AudioExtensions are skipped unless media is explicitly allowed.
var AudioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".aac":  true,
	".ogg":  true,
	".wav":  true,
}

// tempSuffixes mark editor backups and partial writes.
var tempSuffixes = []string{"~", ".tmp", ".temp"}

// Options controls candidate admission.
type Options struct {
	// IncludeExt replaces the default target set when non-empty.
	// Extensions are matched case-insensitively.
	IncludeExt []string

	// ExcludeExt removes extensions from consideration.
	ExcludeExt []string

	// AllowMedia admits audio/video extensions instead of skipping them.
	AllowMedia bool
}

// Run walks root and returns every qualifying record in traversal order.
// The only fatal failures are a missing or non-directory root; per-file
// metadata errors silently drop the candidate.
func Run(root string, opts Options) ([]domain.FileRecord, error) {
	log := logger.With("stage", "scan")

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRootNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotDirectory, root)
	}

	include := toSet(opts.IncludeExt)
	exclude := toSet(opts.ExcludeExt)

	var records []domain.FileRecord
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are dropped, not fatal.
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			// Prune before descending: hidden directories and anything
			// that looks like partial/segmented download storage.
			lower := strings.ToLower(d.Name())
			if strings.HasPrefix(lower, ".") || strings.Contains(lower, "part") {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !admit(name, ext, include, exclude, opts.AllowMedia) {
			return nil
		}

		// Stat rather than d.Info() so a symlinked file records the size
		// of its target, keeping the name+size fingerprint stable.
		fileInfo, err := os.Stat(path)
		if err != nil {
			log.Debug("dropped unreadable candidate", "path", path, "error", err)
			return nil
		}
		if fileInfo.Size() <= 0 {
			return nil
		}

		resolved, err := fsutil.ResolvePath(path)
		if err != nil {
			log.Debug("dropped unresolvable candidate", "path", path, "error", err)
			return nil
		}

		records = append(records, domain.FileRecord{
			Path:      resolved,
			Name:      name,
			Size:      fileInfo.Size(),
			Extension: ext,
			Category:  category.Infer(ext),
		})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	log.Info("scan complete", "root", root, "candidates", len(records))
	return records, nil
}

// admit applies the per-file admission rules in order.
func admit(name, ext string, include, exclude map[string]bool, allowMedia bool) bool {
	lower := strings.ToLower(name)

	if strings.HasPrefix(lower, ".") {
		return false
	}
	if strings.Contains(lower, "part") {
		return false
	}
	for _, suffix := range tempSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return false
		}
	}
	if !allowMedia && (VideoExtensions[ext] || AudioExtensions[ext]) {
		return false
	}
	if len(include) > 0 {
		if !include[ext] {
			return false
		}
	} else if !TargetExtensions[ext] {
		return false
	}
	if exclude[ext] {
		return false
	}
	return true
}

func toSet(extensions []string) map[string]bool {
	if len(extensions) == 0 {
		return nil
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = true
	}
	return set
}
