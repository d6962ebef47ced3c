package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// setupEventHandling configures all event handlers
func (app *Application) setupEventHandling() {
	// The search term is the highlight term: every edit re-filters and re-renders
	app.searchInput.SetChangedFunc(func(text string) {
		app.filterState.SetTerm(text)
		app.updateRequestsList()
		app.updateBottomBar()
	})

	app.searchInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape || key == tcell.KeyEnter {
			app.focusList()
		}
	})

	app.searchInput.SetFocusFunc(func() {
		app.searchInput.SetTitle(" Searching... ")
		app.searchInput.SetBorderColor(tcell.ColorYellow)
	})

	app.searchInput.SetBlurFunc(func() {
		app.searchInput.SetTitle(" Search ")
		app.searchInput.SetBorderColor(tcell.ColorGreen)
	})

	app.requests.SetChangedFunc(app.onRequestChanged)

	app.app.SetInputCapture(app.handleInput)
}

// startAnimationLoop ticks the status bar so messages pulse and expire
func (app *Application) startAnimationLoop() {
	go func() {
		ticker := time.NewTicker(animationIntervalMs * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			app.app.QueueUpdateDraw(func() {
				app.animationFrame++
				app.updateBottomBar()
			})
		}
	}()
}
