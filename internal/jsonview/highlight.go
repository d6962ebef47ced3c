package jsonview

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment is a run of text that either matched the search term or did not
type Segment struct {
	Text    string
	Matched bool
}

// Highlight splits text into plain and matched segments. The term is compared
// literally and case-insensitively; matches are taken left to right and never
// overlap. Joining the segments always gives back text.
func Highlight(text, term string) []Segment {
	if term == "" {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	plainStart := 0
	for i := 0; i < len(text); {
		end, ok := matchFoldAt(text, i, term)
		if !ok {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}
		if i > plainStart {
			segments = append(segments, Segment{Text: text[plainStart:i]})
		}
		segments = append(segments, Segment{Text: text[i:end], Matched: true})
		i = end
		plainStart = end
	}
	if plainStart < len(text) {
		segments = append(segments, Segment{Text: text[plainStart:]})
	}
	return segments
}

// Contains reports whether term occurs in text using the same matching as Highlight
func Contains(text, term string) bool {
	if term == "" {
		return true
	}
	for i := 0; i < len(text); {
		if _, ok := matchFoldAt(text, i, term); ok {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return false
}

// MatchCount returns the number of matched segments
func MatchCount(segments []Segment) int {
	n := 0
	for _, seg := range segments {
		if seg.Matched {
			n++
		}
	}
	return n
}

// Join concatenates segment texts
func Join(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// matchFoldAt reports whether term matches text starting at byte offset i and
// returns the byte offset just past the match.
func matchFoldAt(text string, i int, term string) (int, bool) {
	j := i
	for _, tr := range term {
		if j >= len(text) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(text[j:])
		if !equalFoldRune(sr, tr) {
			return 0, false
		}
		j += size
	}
	return j, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
