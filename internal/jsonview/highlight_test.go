package jsonview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		term     string
		expected []Segment
	}{
		{
			name:     "empty term returns whole text",
			text:     "anything at all",
			term:     "",
			expected: []Segment{{Text: "anything at all"}},
		},
		{
			name:     "empty text and term",
			text:     "",
			term:     "",
			expected: []Segment{{Text: ""}},
		},
		{
			name:     "empty text with term",
			text:     "",
			term:     "x",
			expected: nil,
		},
		{
			name: "case insensitive repeated matches",
			text: "abcABCabc",
			term: "abc",
			expected: []Segment{
				{Text: "abc", Matched: true},
				{Text: "ABC", Matched: true},
				{Text: "abc", Matched: true},
			},
		},
		{
			name: "dot is literal",
			text: "a.b.c",
			term: ".",
			expected: []Segment{
				{Text: "a"},
				{Text: ".", Matched: true},
				{Text: "b"},
				{Text: ".", Matched: true},
				{Text: "c"},
			},
		},
		{
			name: "overlapping candidates resolve left to right",
			text: "aaa",
			term: "aa",
			expected: []Segment{
				{Text: "aa", Matched: true},
				{Text: "a"},
			},
		},
		{
			name: "match in the middle",
			text: "Hello World",
			term: "O w",
			expected: []Segment{
				{Text: "Hell"},
				{Text: "o W", Matched: true},
				{Text: "orld"},
			},
		},
		{
			name:     "no match",
			text:     "nothing here",
			term:     "xyz",
			expected: []Segment{{Text: "nothing here"}},
		},
		{
			name: "pattern operators are literal",
			text: `{"q": "(a+)+$"}`,
			term: "(a+)+$",
			expected: []Segment{
				{Text: `{"q": "`},
				{Text: "(a+)+$", Matched: true},
				{Text: `"}`},
			},
		},
		{
			name: "non ascii folding",
			text: "ÉCOLE école",
			term: "école",
			expected: []Segment{
				{Text: "ÉCOLE", Matched: true},
				{Text: " "},
				{Text: "école", Matched: true},
			},
		},
		{
			name:     "term longer than text",
			text:     "ab",
			term:     "abc",
			expected: []Segment{{Text: "ab"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := Highlight(tt.text, tt.term)
			assert.Equal(t, tt.expected, segments)
			assert.Equal(t, tt.text, Join(segments))
		})
	}
}

func TestHighlight_ConcatenationLaw(t *testing.T) {
	texts := []string{
		"",
		"plain",
		"{\n  \"token\": \"ABC\",\n  \"tok\": [1, 2]\n}",
		"ΣΑΣ σας ςας",
		"a\xffb\xfe",
		"[[[***]]]",
	}
	terms := []string{"", "a", "tok", "σας", "\xff", "*", "]]", "[", "^", "\\"}

	for _, text := range texts {
		for _, term := range terms {
			segments := Highlight(text, term)
			assert.Equal(t, text, Join(segments), "text=%q term=%q", text, term)
			for _, seg := range segments {
				assert.NotEmpty(t, seg.Text, "text=%q term=%q", text, term)
			}
			for i := 1; i < len(segments); i++ {
				bothPlain := !segments[i-1].Matched && !segments[i].Matched
				assert.False(t, bothPlain, "adjacent plain segments for text=%q term=%q", text, term)
			}
		}
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		text     string
		term     string
		expected bool
	}{
		{"Content-Type", "content-type", true},
		{"application/json", "JSON", true},
		{"a.b", "a?b", false},
		{"abc", "", true},
		{"", "a", false},
		{"short", "shorter", false},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.term, func(t *testing.T) {
			assert.Equal(t, tt.expected, Contains(tt.text, tt.term))
		})
	}
}

func TestMatchCount(t *testing.T) {
	assert.Equal(t, 3, MatchCount(Highlight("abcABCabc", "abc")))
	assert.Equal(t, 2, MatchCount(Highlight("a.b.c", ".")))
	assert.Equal(t, 0, MatchCount(Highlight("text", "")))
}
