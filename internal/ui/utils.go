package ui

import (
	"github.com/cnharrison/reqview/internal/har"
)

// entryAt maps a request list row to its capture entry
func (app *Application) entryAt(selectedIndex int) (har.Entry, bool) {
	if selectedIndex < 0 || selectedIndex >= len(app.filteredEntries) {
		return har.Entry{}, false
	}
	entries := app.entries()
	idx := app.filteredEntries[selectedIndex]
	if idx < 0 || idx >= len(entries) {
		return har.Entry{}, false
	}
	return entries[idx], true
}

// currentEntry returns the entry under the list cursor
func (app *Application) currentEntry() (har.Entry, bool) {
	return app.entryAt(app.requests.GetCurrentItem())
}

// focusList moves keyboard focus to the request list
func (app *Application) focusList() {
	app.focusOnDetails = false
	app.app.SetFocus(app.requests)
	app.updateFocusStyles()
}

// focusDetails moves keyboard focus to the focused details panel. It stays on
// the list when there is nothing to focus.
func (app *Application) focusDetails() {
	p := app.detail.Cycle(0)
	if p == nil {
		app.focusList()
		return
	}
	app.focusOnDetails = true
	app.app.SetFocus(p)
	app.updateFocusStyles()
}

// copyTarget picks the body a copy applies to: the focused body when details
// have focus, otherwise the last body on screen (the response when present).
func (app *Application) copyTarget() (detailItem, bool) {
	if app.focusOnDetails {
		if item, ok := app.detail.Focused(); ok && item.body != nil {
			return item, true
		}
	}
	for i := len(app.detail.items) - 1; i >= 0; i-- {
		if app.detail.items[i].body != nil {
			return app.detail.items[i], true
		}
	}
	return detailItem{}, false
}
