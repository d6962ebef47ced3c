package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = `[yellow]reqview - Command Help[-]

[yellow]Navigation:[-]
  [cyan]j/k[-]          Move up/down in focused panel
  [cyan]g/G[-]          Go to first/last request
  [cyan]i[-]            Switch focus between requests and details
  [cyan]Tab/S-Tab[-]    Cycle through detail panels
  [cyan]Esc[-]          Back to the request list

[yellow]Search & Filtering:[-]
  [cyan]/[-]            Search; matches are highlighted in the details
  [cyan]e[-]            Toggle errors-only view (4xx/5xx, no response)
  [cyan]a[-]            Reset all filters

[yellow]Clipboard:[-]
  [cyan]y[-]            Copy focused body (or selected header value)
  [cyan]Y[-]            Copy selected header value
  [cyan]m[-]            Copy markdown report
  [cyan]c[-]            Copy as cURL command

  [cyan]?[-]            Toggle this help
  [cyan]q[-]            Quit application`

// showHelpModal displays the help modal
func (app *Application) showHelpModal() {
	helpView := tview.NewTextView()
	helpView.SetDynamicColors(true)
	helpView.SetText(helpText)
	helpView.SetTextAlign(tview.AlignLeft)
	helpView.SetBorder(true)
	helpView.SetTitle(" Help ")
	helpView.SetTitleAlign(tview.AlignCenter)
	helpView.SetBorderColor(tcell.ColorYellow)

	helpContainer := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(helpView, 0, 2, true).
			AddItem(nil, 0, 1, false),
			0, 2, true).
		AddItem(nil, 0, 1, false)

	previous := app.app.GetFocus()
	helpContainer.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' || event.Rune() == '?' || event.Key() == tcell.KeyEscape {
			app.helpOpen = false
			app.app.SetRoot(app.layout, true)
			app.app.SetFocus(previous)
			return nil
		}
		return event
	})

	app.helpOpen = true
	app.app.SetRoot(helpContainer, true)
	app.app.SetFocus(helpContainer)
}
