package console

import (
	"strings"
	"testing"

	"libshelf/internal/domain"
)

type fakeConsole struct {
	responses []string
	next      int
	output    strings.Builder
}

func (f *fakeConsole) Printf(format string, args ...any) {}

func (f *fakeConsole) ReadLine(prompt string) string {
	f.output.WriteString(prompt)
	if f.next >= len(f.responses) {
		return ""
	}
	response := f.responses[f.next]
	f.next++
	return response
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		defaultNo bool
		want      bool
	}{
		{"yes", "y", true, true},
		{"yes word", "YES", true, true},
		{"no", "n", false, false},
		{"empty takes default no", "", true, false},
		{"empty takes default yes", "", false, true},
		{"garbage is no", "maybe", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(&fakeConsole{responses: []string{tt.response}}, false)
			if got := p.YesNo("Continue?", tt.defaultNo); got != tt.want {
				t.Errorf("YesNo(%q, defaultNo=%v) = %v, want %v", tt.response, tt.defaultNo, got, tt.want)
			}
		})
	}
}

func TestYesNo_PromptSuffix(t *testing.T) {
	fake := &fakeConsole{responses: []string{"", ""}}
	p := NewPrompter(fake, false)
	p.YesNo("Delete it?", true)
	p.YesNo("Keep it?", false)

	prompts := fake.output.String()
	if !strings.Contains(prompts, "Delete it? [y/N]: ") {
		t.Errorf("default-no suffix missing: %q", prompts)
	}
	if !strings.Contains(prompts, "Keep it? [Y/n]: ") {
		t.Errorf("default-yes suffix missing: %q", prompts)
	}
}

func TestConfirm_AssumeYesSkipsPrompt(t *testing.T) {
	fake := &fakeConsole{}
	p := NewPrompter(fake, true)
	if !p.Confirm("Overwrite everything?") {
		t.Error("Confirm should auto-approve under assume-yes")
	}
	if fake.output.Len() != 0 {
		t.Errorf("Confirm prompted under assume-yes: %q", fake.output.String())
	}
}

func TestConfirm_DefaultsToNo(t *testing.T) {
	p := NewPrompter(&fakeConsole{responses: []string{""}}, false)
	if p.Confirm("Proceed?") {
		t.Error("empty response to Confirm should decline")
	}
}

func TestRenderGroups(t *testing.T) {
	groups := []domain.Group{
		{Category: "ebook", Records: []domain.FileRecord{
			{Name: "soups.epub", Size: 2048},
			{Name: "stews.epub", Size: 5 * 1024 * 1024},
		}},
		{Category: "pdf", Records: []domain.FileRecord{
			{Name: "algebra.pdf", Size: 10},
		}},
	}

	rendered := RenderGroups(groups)
	for _, want := range []string{
		"ebook (2)", "pdf (1)",
		"soups.epub", "stews.epub", "algebra.pdf",
		"2.0 KiB", "5.0 MiB", "10 B",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered table missing %q:\n%s", want, rendered)
		}
	}
	// The category label appears once per group, on its first row.
	if strings.Count(rendered, "ebook") != 1 {
		t.Errorf("category label repeated:\n%s", rendered)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.size); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
