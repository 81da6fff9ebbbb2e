package config

import (
	"fmt"
	"strings"

	"libshelf/internal/domain"
)

// Config collects every input of one run: CLI flags layered over the
// optional config file.
type Config struct {
	// Root is the directory to scan. Empty means the wizard must supply it.
	Root string

	// IncludeExt overrides the default target extension set when non-empty.
	IncludeExt []string

	// ExcludeExt removes extensions from consideration.
	ExcludeExt []string

	// OutputJSON / OutputText are export destinations; empty disables each.
	OutputJSON string
	OutputText string

	// Apply enables writing exports; without it the run only previews.
	Apply bool

	// AssumeYes auto-approves every confirmation gate.
	AssumeYes bool

	// AllowMedia admits audio/video extensions.
	AllowMedia bool

	// CopyDest is the staged-copy destination root; empty skips the stage.
	CopyDest string

	// CopyLog overrides the default <dest>/copy_log.txt.
	CopyLog string

	// Interactive forces the wizard even when a root is given.
	Interactive bool

	// Log holds logging settings, usually from the config file.
	Log LogSettings `mapstructure:"log"`
}

// LogSettings configures the logger. Level and Format parse leniently;
// File enables the rotating file sink.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Validate normalizes extension lists and checks the options for
// contradictions.
func (c *Config) Validate() error {
	c.IncludeExt = NormalizeExtensions(c.IncludeExt)
	c.ExcludeExt = NormalizeExtensions(c.ExcludeExt)

	included := make(map[string]bool, len(c.IncludeExt))
	for _, ext := range c.IncludeExt {
		included[ext] = true
	}
	for _, ext := range c.ExcludeExt {
		if included[ext] {
			return fmt.Errorf("%w: extension %s is both included and excluded", domain.ErrConfigInvalid, ext)
		}
	}
	return nil
}

// NormalizeExtensions lowercases, trims, enforces the leading dot, and
// drops empties and duplicates while preserving order.
func NormalizeExtensions(extensions []string) []string {
	seen := make(map[string]bool, len(extensions))
	var normalized []string
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		normalized = append(normalized, ext)
	}
	return normalized
}
