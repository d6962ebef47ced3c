package har

import (
	"fmt"
	"time"
)

// startedLayouts are tried in order when reading startedDateTime
var startedLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000-07:00",
}

// ParseDateTime parses an entry's startedDateTime
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range startedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}

// Started returns the entry start time, or the zero time if it is unreadable
func (e Entry) Started() time.Time {
	t, err := ParseDateTime(e.StartedDateTime)
	if err != nil {
		return time.Time{}
	}
	return t
}
