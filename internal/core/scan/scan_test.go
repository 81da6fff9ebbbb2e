package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"libshelf/internal/domain"
	"libshelf/internal/testutil"
)

func names(records []domain.FileRecord) map[string]bool {
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[r.Name] = true
	}
	return set
}

func TestRun_Exclusions(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"keep.pdf":         "content",
		".hidden.pdf":      "content",
		"report_part2.pdf": "content",
		"notes.txt~":       "content",
		"draft.tmp":        "content",
		"draft.temp":       "content",
		"empty.pdf":        "",
	})

	records, err := Run(root, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d: %v", len(records), names(records))
	}
	if records[0].Name != "keep.pdf" {
		t.Errorf("unexpected record %q", records[0].Name)
	}
}

func TestRun_PositiveSizes(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"a.pdf": "x",
		"b.pdf": "",
		"c.txt": "yy",
	})

	records, err := Run(root, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, r := range records {
		if r.Size <= 0 {
			t.Errorf("record %q admitted with size %d", r.Name, r.Size)
		}
	}
	if got := names(records); got["b.pdf"] {
		t.Error("zero-byte file admitted")
	}
}

func TestRun_PrunesHiddenAndPartDirectories(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"Books/novel.epub":          "content",
		".git/objects/blob.pdf":     "content",
		"Downloads.part/chunk.pdf":  "content",
		"Partials/section.pdf":      "content",
		"Books/Archive/history.pdf": "content",
	})

	records, err := Run(root, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := names(records)
	if !got["novel.epub"] || !got["history.pdf"] {
		t.Errorf("expected nested records, got %v", got)
	}
	if got["blob.pdf"] || got["chunk.pdf"] || got["section.pdf"] {
		t.Errorf("pruned directory contents admitted: %v", got)
	}
}

func TestRun_MediaSkip(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"lecture.mp4": "content",
		"podcast.mp3": "content",
		"notes.pdf":   "content",
	})

	records, err := Run(root, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := names(records)
	if got["lecture.mp4"] || got["podcast.mp3"] {
		t.Errorf("media files admitted: %v", got)
	}

	// With media allowed and an include set naming them, they qualify.
	records, err = Run(root, Options{IncludeExt: []string{".mp4", ".mp3"}, AllowMedia: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got = names(records)
	if !got["lecture.mp4"] || !got["podcast.mp3"] {
		t.Errorf("allowed media missing: %v", got)
	}
}

func TestRun_IncludeOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"a.pdf":  "content",
		"b.epub": "content",
	})

	records, err := Run(root, Options{IncludeExt: []string{".PDF"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(records) != 1 || records[0].Name != "a.pdf" {
		t.Errorf("include set not honored: %v", names(records))
	}
}

func TestRun_ExcludeSet(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"a.pdf": "content",
		"b.txt": "content",
	})

	records, err := Run(root, Options{ExcludeExt: []string{".txt"}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := names(records); got["b.txt"] || !got["a.pdf"] {
		t.Errorf("exclude set not honored: %v", got)
	}
}

func TestRun_CategoriesAssigned(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{
		"a.pdf":  "content",
		"b.epub": "content",
		"c.docx": "content",
		"d.md":   "content",
	})

	records, err := Run(root, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := map[string]string{"a.pdf": "pdf", "b.epub": "ebook", "c.docx": "document", "d.md": "text"}
	for _, r := range records {
		if r.Category == "" {
			t.Errorf("record %q has empty category", r.Name)
		}
		if want[r.Name] != r.Category {
			t.Errorf("record %q category = %q, want %q", r.Name, r.Category, want[r.Name])
		}
	}
}

func TestRun_AbsoluteResolvedPaths(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"a.pdf": "content"})

	records, err := Run(root, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if !filepath.IsAbs(records[0].Path) {
		t.Errorf("path not absolute: %q", records[0].Path)
	}
}

func TestRun_SymlinkRecordsTargetSize(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	target := testutil.CreateTestFile(t, outside, "linked.pdf", []byte("0123456789"))
	if err := os.Symlink(target, filepath.Join(root, "linked.pdf")); err != nil {
		t.Skipf("symlinks not supported here: %v", err)
	}

	records, err := Run(root, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d: %v", len(records), names(records))
	}
	if records[0].Size != 10 {
		t.Errorf("recorded link size %d, want target size 10", records[0].Size)
	}
}

func TestRun_BrokenSymlinkDropped(t *testing.T) {
	root := t.TempDir()
	testutil.MakeTree(t, root, map[string]string{"keep.pdf": "content"})
	if err := os.Symlink(filepath.Join(root, "gone.pdf"), filepath.Join(root, "dangling.pdf")); err != nil {
		t.Skipf("symlinks not supported here: %v", err)
	}

	records, err := Run(root, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(records) != 1 || records[0].Name != "keep.pdf" {
		t.Errorf("expected only keep.pdf, got %v", names(records))
	}
}

func TestRun_MissingRoot(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "absent"), Options{})
	if !errors.Is(err, domain.ErrRootNotFound) {
		t.Errorf("expected ErrRootNotFound, got %v", err)
	}
}

func TestRun_RootIsFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateTestFile(t, dir, "file.pdf", []byte("x"))

	_, err := Run(path, Options{})
	if !errors.Is(err, domain.ErrNotDirectory) {
		t.Errorf("expected ErrNotDirectory, got %v", err)
	}
}
