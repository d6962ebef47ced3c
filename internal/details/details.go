package details

import (
	"github.com/cnharrison/reqview/internal/format"
	"github.com/cnharrison/reqview/internal/jsonview"
)

// Panel headings and fixed messages
const (
	RequestHeadersHeading  = "Request Headers"
	RequestBodyHeading     = "Request Body"
	ResponseHeadersHeading = "Response Headers"
	ResponseBodyHeading    = "Response Body"

	InvalidJSONMessage = "Invalid JSON"
)

// Header is a header as shown in a key/value table
type Header struct {
	Key   string
	Value string
}

// Request is the request side of an inspected exchange
type Request struct {
	Method   string
	URL      string
	Headers  []Header
	Data     string
	MimeType string
}

// Response is the response side of an inspected exchange
type Response struct {
	Status     int
	StatusText string
	Headers    []Header
	Data       string
	MimeType   string
}

// Kind tells a renderer which widget a panel needs
type Kind int

const (
	HeadersPanel Kind = iota
	BodyPanel
)

// Row is one line of a header table. CopyText is what gets copied for the row.
type Row struct {
	Key      string
	Value    string
	CopyText string
}

// Body is an inspected payload. Pretty is empty and Err is set when the payload
// could not be parsed.
type Body struct {
	Raw    string
	Kind   format.Kind
	Pretty string
	Err    error
}

// Valid reports whether the body has a pretty rendering
func (b *Body) Valid() bool {
	return b != nil && b.Err == nil
}

// Panel is one titled section of the details view
type Panel struct {
	Heading string
	Kind    Kind
	Rows    []Row
	Body    *Body
}

// Build lays out the panels for an exchange. Header panels are only present
// when there are headers, body panels only when there is data, and response
// panels only when resp is non-nil.
func Build(req Request, resp *Response, indent int) []Panel {
	var panels []Panel
	panels = appendSide(panels, RequestHeadersHeading, RequestBodyHeading, req.Headers, req.Data, req.MimeType, indent)
	if resp != nil {
		panels = appendSide(panels, ResponseHeadersHeading, ResponseBodyHeading, resp.Headers, resp.Data, resp.MimeType, indent)
	}
	return panels
}

func appendSide(panels []Panel, headersHeading, bodyHeading string, headers []Header, data, mimeType string, indent int) []Panel {
	if rows := HeaderRows(headers); len(rows) > 0 {
		panels = append(panels, Panel{Heading: headersHeading, Kind: HeadersPanel, Rows: rows})
	}
	if data != "" {
		panels = append(panels, Panel{Heading: bodyHeading, Kind: BodyPanel, Body: InspectBody(data, mimeType, indent)})
	}
	return panels
}

// HeaderRows turns headers into table rows
func HeaderRows(headers []Header) []Row {
	if len(headers) == 0 {
		return nil
	}
	rows := make([]Row, 0, len(headers))
	for _, h := range headers {
		rows = append(rows, Row{Key: h.Key, Value: h.Value, CopyText: h.Value})
	}
	return rows
}

// InspectBody prepares a payload for display. XML and HTML are indented as
// markup; anything else must parse as JSON.
func InspectBody(data, mimeType string, indent int) *Body {
	body := &Body{Raw: data, Kind: format.DetectKind(mimeType)}
	if body.Kind != format.KindJSON {
		body.Pretty = format.Markup(data, body.Kind)
		return body
	}

	pretty, err := jsonview.Pretty(data, indent)
	if err != nil {
		body.Err = err
		return body
	}
	body.Pretty = pretty
	return body
}
