// Package category maps file extensions to semantic category labels.
package category

import "strings"

// Infer returns the category label for a lowercase extension.
// The precedence table is fixed; extensions outside it fall back to the
// extension with its leading dot stripped, or "other" when empty.
// The result seeds FileRecord.Category at scan time and may be freely
// overwritten during organization.
func Infer(extension string) string {
	switch extension {
	case ".pdf":
		return "pdf"
	case ".epub", ".mobi", ".azw", ".azw3":
		return "ebook"
	case ".doc", ".docx", ".rtf":
		return "document"
	case ".txt", ".md":
		return "text"
	}

	if trimmed := strings.TrimPrefix(extension, "."); trimmed != "" {
		return trimmed
	}
	return "other"
}
