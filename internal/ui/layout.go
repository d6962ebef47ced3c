package ui

import (
	"github.com/rivo/tview"
)

// createLayout builds the main application layout
func (app *Application) createLayout() {
	searchContainer := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 0, 1, false).
		AddItem(app.searchInput, 0, searchInputWidthRatio, false).
		AddItem(nil, 0, 1, false)

	body := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(app.requests, 0, 1, true).
		AddItem(app.detail, 0, detailWidthRatio, false)

	app.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(app.topBar, 1, 0, false).
		AddItem(searchContainer, searchBoxHeight, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(app.bottomBar, 1, 0, false)
}
