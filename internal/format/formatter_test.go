package format

import (
	"strings"
	"testing"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		mimeType string
		expected Kind
	}{
		{"application/json", KindJSON},
		{"application/vnd.api+json; charset=utf-8", KindJSON},
		{"text/html; charset=utf-8", KindHTML},
		{"application/xhtml+xml", KindHTML},
		{"application/xml", KindXML},
		{"text/xml", KindXML},
		{"application/problem+xml", KindXML},
		{"text/plain", KindJSON},
		{"", KindJSON},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			if got := DetectKind(tt.mimeType); got != tt.expected {
				t.Errorf("DetectKind(%q) = %q, want %q", tt.mimeType, got, tt.expected)
			}
		})
	}
}

func TestMarkup(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		kind     Kind
		contains []string
	}{
		{
			name:     "xml is indented",
			content:  `<root><item>test</item></root>`,
			kind:     KindXML,
			contains: []string{"<root>", "<item>", "test", "</root>", "\n"},
		},
		{
			name:     "html is indented",
			content:  `<div><p>Hello</p></div>`,
			kind:     KindHTML,
			contains: []string{"<div>", "<p>", "Hello", "</div>"},
		},
		{
			name:     "json kind is untouched",
			content:  `{"a":1}`,
			kind:     KindJSON,
			contains: []string{`{"a":1}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Markup(tt.content, tt.kind)
			if strings.HasPrefix(result, "\n") || strings.Contains(result, "\r") {
				t.Errorf("expected normalized line endings, got %q", result)
			}
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("Markup() = %q, missing %q", result, want)
				}
			}
		})
	}
}
