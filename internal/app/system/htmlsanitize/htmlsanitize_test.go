package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string // Strings that should be in output
		excludes []string // Strings that should NOT be in output
	}{
		{
			name:     "empty string",
			input:    "",
			contains: []string{},
			excludes: []string{},
		},
		{
			name:     "plain text",
			input:    "Hello World",
			contains: []string{"Hello World"},
			excludes: []string{},
		},
		{
			name:     "markup stripped to text",
			input:    "<p>Hello <strong>World</strong></p>",
			contains: []string{"Hello", "World"},
			excludes: []string{"<p>", "<strong>"},
		},
		{
			name:     "script tag removed",
			input:    "Hello<script>alert('xss')</script>",
			contains: []string{"Hello"},
			excludes: []string{"<script>", "alert", "xss"},
		},
		{
			name:     "anchor stripped",
			input:    `<a href="javascript:alert('xss')">Link</a>`,
			contains: []string{"Link"},
			excludes: []string{"javascript:", "alert", "href"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize(%q) = %q, should contain %q", tt.input, got, want)
				}
			}
			for _, exclude := range tt.excludes {
				if strings.Contains(got, exclude) {
					t.Errorf("Sanitize(%q) = %q, should not contain %q", tt.input, got, exclude)
				}
			}
		})
	}
}

func TestTextToHTML(t *testing.T) {
	got := string(TextToHTML("line one\nline two"))
	if !strings.Contains(got, "<br>") {
		t.Errorf("TextToHTML() = %q, should convert newlines to <br>", got)
	}
	if !strings.Contains(got, "line one") || !strings.Contains(got, "line two") {
		t.Errorf("TextToHTML() = %q, should keep the text content", got)
	}
}

func TestTextToHTML_EscapesEntities(t *testing.T) {
	got := string(TextToHTML("Tom & Jerry <3"))
	if strings.Contains(got, "<3") {
		t.Errorf("TextToHTML() = %q, should escape angle brackets", got)
	}
	if !strings.Contains(got, "&amp;") {
		t.Errorf("TextToHTML() = %q, should escape ampersands", got)
	}
}

func TestTextToHTML_Empty(t *testing.T) {
	if got := TextToHTML(""); got != "" {
		t.Errorf("TextToHTML(\"\") = %q, want empty", got)
	}
}
