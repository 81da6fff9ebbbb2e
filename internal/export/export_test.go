package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"libshelf/internal/domain"
)

func exportSet() []domain.FileRecord {
	return []domain.FileRecord{
		{Path: "/lib/zeta.pdf", Name: "zeta.pdf", Size: 10, Extension: ".pdf", Category: "pdf"},
		{Path: "/lib/alpha.pdf", Name: "alpha.pdf", Size: 20, Extension: ".pdf", Category: "pdf"},
		{Path: "/lib/soups.epub", Name: "soups.epub", Size: 30, Extension: ".epub", Category: "ebook"},
	}
}

func TestSummary_SortedNames(t *testing.T) {
	summary := Summary(exportSet())

	want := map[string][]string{
		"pdf":   {"alpha.pdf", "zeta.pdf"},
		"ebook": {"soups.epub"},
	}
	if !reflect.DeepEqual(summary, want) {
		t.Errorf("Summary = %v, want %v", summary, want)
	}
}

func TestWriteJSON_Schema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scan.json")
	if err := WriteJSON(path, exportSet()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	var doc struct {
		Summary map[string][]string `json:"summary"`
		Files   []map[string]any    `json:"files"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(doc.Files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(doc.Files))
	}
	first := doc.Files[0]
	for _, key := range []string{"path", "name", "size", "extension", "category"} {
		if _, ok := first[key]; !ok {
			t.Errorf("file object missing %q key: %v", key, first)
		}
	}
	if got := doc.Summary["pdf"]; !reflect.DeepEqual(got, []string{"alpha.pdf", "zeta.pdf"}) {
		t.Errorf("summary names = %v", got)
	}
}

func TestWriteJSON_EmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json")
	if err := WriteJSON(path, nil); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), `"files": null`) {
		t.Errorf("files should encode as an empty list:\n%s", data)
	}
}

func TestFormatText(t *testing.T) {
	text := FormatText(exportSet())

	if !strings.HasPrefix(text, "Total files: 3") {
		t.Errorf("missing header:\n%s", text)
	}
	if !strings.Contains(text, "Summary by category:") {
		t.Errorf("missing summary section:\n%s", text)
	}
	if !strings.Contains(text, "- pdf (2):") || !strings.Contains(text, "- ebook (1):") {
		t.Errorf("missing category counts:\n%s", text)
	}
	// Names sorted within the summary.
	if strings.Index(text, "alpha.pdf") > strings.Index(text, "zeta.pdf") {
		t.Errorf("summary names unsorted:\n%s", text)
	}
	if !strings.Contains(text, "Detailed files:") {
		t.Errorf("missing detail section:\n%s", text)
	}
	if !strings.Contains(text, "- pdf: zeta.pdf [.pdf] (10 bytes)\n  /lib/zeta.pdf") {
		t.Errorf("missing detail line:\n%s", text)
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "scan.txt")
	if err := WriteText(path, exportSet()); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != FormatText(exportSet()) {
		t.Error("file content differs from FormatText output")
	}
}
