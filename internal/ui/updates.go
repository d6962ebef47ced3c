package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cnharrison/reqview/internal/details"
	"github.com/cnharrison/reqview/internal/har"
)

// updateRequestsList rebuilds the request list from the current filter
func (app *Application) updateRequestsList() {
	currentItem := app.requests.GetCurrentItem()
	entries := app.entries()
	app.filteredEntries = app.filterState.Apply(entries)

	// Clearing and re-adding fires the changed func, which would render
	// details against a half-built list
	app.requests.SetChangedFunc(nil)
	app.requests.Clear()
	for _, idx := range app.filteredEntries {
		app.requests.AddItem(listItemText(entries[idx]), "", 0, nil)
	}
	app.requests.SetChangedFunc(app.onRequestChanged)

	if len(app.filteredEntries) == 0 {
		app.matchCount = 0
		if app.filterState.Active() {
			app.detail.ShowMessage("No requests match the current filter")
		} else {
			app.detail.ShowMessage("Capture has no requests")
		}
		return
	}

	if currentItem < 0 || currentItem >= len(app.filteredEntries) {
		currentItem = 0
	}
	app.requests.SetCurrentItem(currentItem)
	app.updateDetails(currentItem)
}

// listItemText formats an exchange for the request list
func listItemText(entry har.Entry) string {
	host, path := har.HostPath(entry.Request.URL)
	if len(path) > maxPathDisplayLength {
		path = path[:maxPathDisplayLength-pathTruncateOffset] + "..."
	}

	status := "---"
	if entry.HasResponse() {
		status = fmt.Sprintf("%3d", entry.Response.Status)
	}

	return fmt.Sprintf("[cyan]%-6s[-] [%s]%s[-] [blue]%s[-]%s [yellow]%.0fms[-]",
		tview.Escape(entry.Request.Method), statusColor(entry.Response.Status), status,
		tview.Escape(host), tview.Escape(path), entry.Time)
}

// statusColor picks the list color for a status code
func statusColor(status int) string {
	switch {
	case status >= statusCodeClientError:
		return "red"
	case status >= statusCodeRedirect:
		return "yellow"
	case status >= statusCodeSuccess:
		return "green"
	}
	return "gray"
}

// updateDetails renders the details panels for the selected list row
func (app *Application) updateDetails(selectedIndex int) {
	entry, ok := app.entryAt(selectedIndex)
	if !ok {
		return
	}

	req, resp := details.FromHAR(entry)
	panels := details.Build(req, resp, app.cfg.Indent)

	app.detail.Reset()
	if len(panels) == 0 {
		app.matchCount = 0
		app.detail.ShowMessage("No headers or body recorded for this request")
	} else {
		app.matchCount = details.Render(app.detail, panels, app.filterState.Term)
	}

	title := fmt.Sprintf(" %s %s ", req.Method, tview.Escape(req.URL))
	if resp != nil {
		title = fmt.Sprintf(" [%s]%d[-]%s", statusColor(resp.Status), resp.Status, title)
	}
	app.detail.SetTitle(title)

	// The old panels are gone, so detail focus moves to the first new one
	if app.focusOnDetails {
		if p := app.detail.Cycle(0); p != nil {
			app.app.SetFocus(p)
		} else {
			app.focusList()
		}
	}
	app.detail.MarkFocus(app.focusOnDetails)
}

// onRequestChanged is the request list selection handler
func (app *Application) onRequestChanged(index int, mainText, secondaryText string, shortcut rune) {
	app.updateDetails(index)
	app.updateBottomBar()
}

// updateBottomBar updates the status/bottom bar
func (app *Application) updateBottomBar() {
	var statusText strings.Builder

	if time.Now().Before(app.statusEnd) && app.statusMessage != "" {
		pulse := []string{"●", "◐", "◑", "◒", "◓", "○"}
		pulseFrame := (app.animationFrame / pulseCycleFrames) % len(pulse)
		statusText.WriteString(fmt.Sprintf("[yellow]%s[-] %s", pulse[pulseFrame], tview.Escape(app.statusMessage)))
	} else {
		app.statusMessage = ""
		statusText.WriteString(fmt.Sprintf("Showing %d/%d requests", len(app.filteredEntries), len(app.entries())))
		if app.filterState.Term != "" {
			statusText.WriteString(fmt.Sprintf(" | Search: [cyan]%s[-] (%d matches)", tview.Escape(app.filterState.Term), app.matchCount))
		}
		if app.filterState.ErrorsOnly {
			statusText.WriteString(" | [red]Errors Only[-]")
		}
	}

	app.bottomBar.SetText(" " + statusText.String() + " ")
}

// updateFocusStyles updates border colors for the focused side
func (app *Application) updateFocusStyles() {
	if app.focusOnDetails {
		app.requests.SetBorderColor(tcell.ColorDarkGray)
		app.detail.SetBorderColor(tcell.ColorWhite)
	} else {
		app.requests.SetBorderColor(tcell.ColorTeal)
		app.detail.SetBorderColor(tcell.ColorDarkCyan)
	}
	app.detail.MarkFocus(app.focusOnDetails)
}
