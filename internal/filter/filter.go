package filter

import (
	"github.com/cnharrison/reqview/internal/details"
	"github.com/cnharrison/reqview/internal/har"
	"github.com/cnharrison/reqview/internal/jsonview"
)

// State holds the current list filtering state. Indent must match the details
// view so bodies are searched in the same text it highlights.
type State struct {
	Term       string
	ErrorsOnly bool
	Indent     int
}

// NewState creates an empty filter state
func NewState(indent int) *State {
	return &State{Indent: indent}
}

// Apply returns the indices of entries that pass the filter, in capture order
func (s *State) Apply(entries []har.Entry) []int {
	result := make([]int, 0, len(entries))
	for i, entry := range entries {
		if s.ErrorsOnly && !entry.IsError() {
			continue
		}
		if s.Term != "" && !Matches(entry, s.Term, s.Indent) {
			continue
		}
		result = append(result, i)
	}
	return result
}

// Reset clears all filters
func (s *State) Reset() {
	s.Term = ""
	s.ErrorsOnly = false
}

// ToggleErrorsOnly toggles the errors-only filter
func (s *State) ToggleErrorsOnly() {
	s.ErrorsOnly = !s.ErrorsOnly
}

// SetTerm sets the search term
func (s *State) SetTerm(term string) {
	s.Term = term
}

// Active reports whether any filter is set
func (s *State) Active() bool {
	return s.Term != "" || s.ErrorsOnly
}

// Matches reports whether term appears anywhere the details view would show
// it: the URL, method, status text, header names and values, or bodies. Bodies
// are searched in the pretty form the details view highlights, indented with
// indent; bodies that do not parse are searched as captured.
func Matches(entry har.Entry, term string, indent int) bool {
	if jsonview.Contains(entry.Request.URL, term) ||
		jsonview.Contains(entry.Request.Method, term) ||
		jsonview.Contains(entry.Response.StatusText, term) {
		return true
	}

	req, resp := details.FromHAR(entry)
	for _, panel := range details.Build(req, resp, indent) {
		switch panel.Kind {
		case details.HeadersPanel:
			for _, row := range panel.Rows {
				if jsonview.Contains(row.Key, term) || jsonview.Contains(row.Value, term) {
					return true
				}
			}
		case details.BodyPanel:
			if bodyContains(panel.Body, term) {
				return true
			}
		}
	}
	return false
}

func bodyContains(body *details.Body, term string) bool {
	if body.Valid() {
		return jsonview.Contains(body.Pretty, term)
	}
	return jsonview.Contains(body.Raw, term)
}
