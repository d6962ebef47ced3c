package details

import "github.com/cnharrison/reqview/internal/jsonview"

// HighlightedRow is a header row with its key and value split for highlighting
type HighlightedRow struct {
	Row   Row
	Key   []jsonview.Segment
	Value []jsonview.Segment
}

// Renderer draws panels. Implementations own all layout and styling.
type Renderer interface {
	HeaderTable(heading string, rows []HighlightedRow)
	// BodyView receives nil segments when body is not Valid; the renderer
	// shows InvalidJSONMessage instead.
	BodyView(heading string, body *Body, segments []jsonview.Segment)
}

// Render draws panels through r with term highlighted and returns the number of matches
func Render(r Renderer, panels []Panel, term string) int {
	matches := 0
	for _, panel := range panels {
		switch panel.Kind {
		case HeadersPanel:
			rows := make([]HighlightedRow, 0, len(panel.Rows))
			for _, row := range panel.Rows {
				hr := HighlightedRow{
					Row:   row,
					Key:   jsonview.Highlight(row.Key, term),
					Value: jsonview.Highlight(row.Value, term),
				}
				matches += jsonview.MatchCount(hr.Key) + jsonview.MatchCount(hr.Value)
				rows = append(rows, hr)
			}
			r.HeaderTable(panel.Heading, rows)
		case BodyPanel:
			if !panel.Body.Valid() {
				r.BodyView(panel.Heading, panel.Body, nil)
				continue
			}
			segments := jsonview.Highlight(panel.Body.Pretty, term)
			matches += jsonview.MatchCount(segments)
			r.BodyView(panel.Heading, panel.Body, segments)
		}
	}
	return matches
}
