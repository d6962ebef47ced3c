package format

import (
	"strings"

	"github.com/go-xmlfmt/xmlfmt"
	"github.com/yosssi/gohtml"
)

// Kind is the body presentation chosen for a payload
type Kind string

const (
	KindJSON Kind = "json"
	KindXML  Kind = "xml"
	KindHTML Kind = "html"
)

// DetectKind picks how a body is presented. Markup is only chosen when the
// MIME type says so; everything else goes to the JSON viewer, which shows the
// invalid-JSON fallback for payloads it cannot parse.
func DetectKind(mimeType string) Kind {
	lowerMime := strings.ToLower(mimeType)
	switch {
	case strings.Contains(lowerMime, "json"):
		return KindJSON
	case strings.Contains(lowerMime, "html"):
		return KindHTML
	case strings.Contains(lowerMime, "xml"):
		return KindXML
	}
	return KindJSON
}

// Markup indents XML or HTML content. Other kinds are returned unchanged.
func Markup(content string, kind Kind) string {
	var formatted string
	switch kind {
	case KindXML:
		formatted = xmlfmt.FormatXML(content, "", "  ")
	case KindHTML:
		formatted = gohtml.Format(content)
	default:
		return content
	}
	formatted = strings.ReplaceAll(formatted, "\r\n", "\n")
	return strings.TrimSpace(formatted)
}
