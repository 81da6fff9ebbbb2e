// Package testutil provides shared helpers for package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a file with the given content and returns its path
func CreateTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dirs: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

// MakeTree materializes a directory tree. Keys are slash-separated paths
// relative to root; values are file contents. A trailing slash creates an
// empty directory.
func MakeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0755); err != nil {
				t.Fatalf("failed to create dir %s: %v", rel, err)
			}
			continue
		}
		CreateTestFile(t, root, filepath.FromSlash(rel), []byte(content))
	}
}

// ScriptConsole implements console.Console with a queue of canned responses.
// Every prompt consumes the next response; running past the script returns
// empty strings, matching EOF on a real terminal.
type ScriptConsole struct {
	Responses []string
	next      int
	Output    strings.Builder
	Prompts   []string
}

// NewScriptConsole builds a console that will answer prompts in order
func NewScriptConsole(responses ...string) *ScriptConsole {
	return &ScriptConsole{Responses: responses}
}

func (s *ScriptConsole) Printf(format string, args ...any) {
	fmt.Fprintf(&s.Output, format, args...)
}

func (s *ScriptConsole) ReadLine(prompt string) string {
	s.Prompts = append(s.Prompts, prompt)
	if s.next >= len(s.Responses) {
		return ""
	}
	response := s.Responses[s.next]
	s.next++
	return response
}

// Transcript returns everything printed so far
func (s *ScriptConsole) Transcript() string {
	return s.Output.String()
}

// Exhausted reports whether every scripted response was consumed
func (s *ScriptConsole) Exhausted() bool {
	return s.next == len(s.Responses)
}
