package category

import "testing"

func TestInfer(t *testing.T) {
	cases := []struct {
		extension string
		want      string
	}{
		{".pdf", "pdf"},
		{".epub", "ebook"},
		{".mobi", "ebook"},
		{".azw", "ebook"},
		{".azw3", "ebook"},
		{".doc", "document"},
		{".docx", "document"},
		{".rtf", "document"},
		{".txt", "text"},
		{".md", "text"},
		{".cbz", "cbz"},
		{".xyz", "xyz"},
		{"", "other"},
		{".", "other"},
	}

	for _, tc := range cases {
		if got := Infer(tc.extension); got != tc.want {
			t.Errorf("Infer(%q) = %q, want %q", tc.extension, got, tc.want)
		}
	}
}
