package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// setupUI creates and configures all UI components
func (app *Application) setupUI() {
	// Configure tview for transparent background
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorDefault
	tview.Styles.ContrastBackgroundColor = tcell.ColorDefault

	app.createComponents()
	app.styleComponents()
	app.createLayout()
}

// createComponents initializes all UI components
func (app *Application) createComponents() {
	app.topBar = tview.NewTextView().
		SetText(fmt.Sprintf("[::b][yellow] reqview - %s - Press ? for Help [-:-:-]", tview.Escape(app.filename))).
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	app.searchInput = tview.NewInputField()
	app.searchInput.SetLabel("")
	app.searchInput.SetText(app.filterState.Term)
	app.searchInput.SetFieldWidth(0)
	app.searchInput.SetBorder(true)
	app.searchInput.SetTitle(" Search ")
	app.searchInput.SetTitleAlign(tview.AlignCenter)
	app.searchInput.SetBorderColor(tcell.ColorGreen)

	app.requests = tview.NewList().ShowSecondaryText(false)

	app.detail = NewDetailView(app.cfg.Highlight)

	app.bottomBar = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)
}

// styleComponents applies styling to all components
func (app *Application) styleComponents() {
	app.requests.SetBorder(true).SetTitle(" Requests ").SetTitleAlign(tview.AlignCenter).SetBorderColor(tcell.ColorTeal)
	app.requests.SetSelectedBackgroundColor(tcell.ColorDarkBlue)
	app.requests.SetSelectedTextColor(tcell.ColorYellow)
	app.requests.SetMainTextColor(tcell.ColorWhite)

	app.detail.SetBorder(true).SetTitle(" Details ").SetTitleAlign(tview.AlignCenter).SetBorderColor(tcell.ColorDarkCyan)
}
