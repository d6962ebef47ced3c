package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/cnharrison/reqview/internal/export"
)

// handleInput handles all keyboard input for the application
func (app *Application) handleInput(event *tcell.EventKey) *tcell.EventKey {
	// The help modal handles its own keys
	if app.helpOpen {
		return event
	}

	// Search input owns every key while typing
	if app.app.GetFocus() == app.searchInput {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyBacktab:
			return nil
		}
		return event
	}

	switch event.Key() {
	case tcell.KeyTab:
		if app.focusOnDetails {
			if p := app.detail.Cycle(1); p != nil {
				app.app.SetFocus(p)
				app.updateFocusStyles()
			}
		} else {
			app.focusDetails()
		}
		return nil
	case tcell.KeyBacktab:
		if app.focusOnDetails {
			if p := app.detail.Cycle(-1); p != nil {
				app.app.SetFocus(p)
				app.updateFocusStyles()
			}
		}
		return nil
	case tcell.KeyEscape:
		if app.focusOnDetails {
			app.focusList()
			return nil
		}
	}

	switch event.Rune() {
	case '?':
		app.showHelpModal()
		return nil
	case 'q':
		app.app.Stop()
		return nil
	case 'i':
		if app.focusOnDetails {
			app.focusList()
		} else {
			app.focusDetails()
		}
		return nil
	case '/':
		app.focusOnDetails = false
		app.updateFocusStyles()
		app.app.SetFocus(app.searchInput)
		return nil
	case 'j':
		if !app.focusOnDetails {
			if current := app.requests.GetCurrentItem(); current < len(app.filteredEntries)-1 {
				app.requests.SetCurrentItem(current + 1)
			}
			return nil
		}
	case 'k':
		if !app.focusOnDetails {
			if current := app.requests.GetCurrentItem(); current > 0 {
				app.requests.SetCurrentItem(current - 1)
			}
			return nil
		}
	case 'g':
		if !app.focusOnDetails && len(app.filteredEntries) > 0 {
			app.requests.SetCurrentItem(0)
			return nil
		}
	case 'G':
		if !app.focusOnDetails && len(app.filteredEntries) > 0 {
			app.requests.SetCurrentItem(len(app.filteredEntries) - 1)
			return nil
		}
	case 'e':
		app.filterState.ToggleErrorsOnly()
		app.updateRequestsList()
		app.updateBottomBar()
		if app.filterState.ErrorsOnly {
			app.showStatusMessage("Showing errors only")
		} else {
			app.showStatusMessage("Showing all requests")
		}
		return nil
	case 'a':
		app.filterState.Reset()
		app.searchInput.SetText("")
		app.updateRequestsList()
		app.updateBottomBar()
		app.showStatusMessage("Filters reset")
		return nil
	case 'y':
		app.copyFocused()
		return nil
	case 'Y':
		app.copyHeaderValue()
		return nil
	case 'm':
		if entry, ok := app.currentEntry(); ok {
			app.copier.CopyText("markdown", export.Markdown(entry, app.cfg.Indent))
		}
		return nil
	case 'c':
		if entry, ok := app.currentEntry(); ok {
			app.copier.CopyText("curl", export.Curl(entry))
		}
		return nil
	}
	return event
}

// copyFocused copies the focused panel: a body's pretty text, or the selected
// header row's value when a header table has focus
func (app *Application) copyFocused() {
	if app.focusOnDetails {
		if item, ok := app.detail.Focused(); ok && item.table != nil {
			if row, ok := item.SelectedRow(); ok {
				app.copier.CopyHeader(item.heading, row)
			}
			return
		}
	}
	if item, ok := app.copyTarget(); ok {
		app.copier.CopyBody(item.heading, item.body)
	}
}

// copyHeaderValue copies the selected header value of the focused table
func (app *Application) copyHeaderValue() {
	item, ok := app.detail.Focused()
	if !app.focusOnDetails || !ok {
		app.showStatusMessage("Focus a header table to copy a value")
		return
	}
	if row, ok := item.SelectedRow(); ok {
		app.copier.CopyHeader(item.heading, row)
	}
}
