package organize

import (
	"errors"
	"strings"
	"testing"

	"libshelf/internal/domain"
)

func TestNewMatcher_WildcardMatchesSubstring(t *testing.T) {
	names := []string{
		"Draft_chapter1.pdf",
		"final.pdf",
		"mydraft.txt",
		"DRAFT.md",
		"drift.pdf",
	}

	match, err := NewMatcher("*draft*", false)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}

	for _, name := range names {
		want := strings.Contains(strings.ToLower(name), "draft")
		if got := match(name); got != want {
			t.Errorf("match(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewMatcher_GlobIsCaseInsensitive(t *testing.T) {
	match, err := NewMatcher("DATA_?.PDF", false)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	if !match("data_1.pdf") {
		t.Error("expected case-insensitive glob match")
	}
	if match("data_12.pdf") {
		t.Error("? should match exactly one character")
	}
}

func TestNewMatcher_RegexSearchSemantics(t *testing.T) {
	match, err := NewMatcher(`data_\d+`, true)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	// Unanchored: a match anywhere in the name counts.
	if !match("old_DATA_42_backup.pdf") {
		t.Error("expected unanchored case-insensitive regex match")
	}
	if match("data_x.pdf") {
		t.Error("unexpected match")
	}
}

func TestNewMatcher_InvalidRegex(t *testing.T) {
	_, err := NewMatcher("[unclosed", true)
	if !errors.Is(err, domain.ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestNewMatcher_InvalidGlob(t *testing.T) {
	_, err := NewMatcher("[unclosed", false)
	if !errors.Is(err, domain.ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
}
