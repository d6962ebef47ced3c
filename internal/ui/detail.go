package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cnharrison/reqview/internal/config"
	"github.com/cnharrison/reqview/internal/details"
	"github.com/cnharrison/reqview/internal/jsonview"
)

const (
	// Header tables never take more rows than this before scrolling
	maxHeaderTableHeight = 12
	// Key column takes 30% of the table width
	keyColumnExpansion   = 3
	valueColumnExpansion = 7
)

// detailItem is one rendered panel
type detailItem struct {
	heading   string
	primitive tview.Primitive
	box       *tview.Box
	table     *tview.Table
	rows      []details.HighlightedRow
	body      *details.Body
}

// DetailView stacks the details panels of the selected exchange. It
// implements details.Renderer.
type DetailView struct {
	*tview.Flex
	highlightTag string
	items        []detailItem
	focused      int
}

// NewDetailView creates an empty details view
func NewDetailView(highlight config.Highlight) *DetailView {
	d := &DetailView{
		Flex:         tview.NewFlex().SetDirection(tview.FlexRow),
		highlightTag: fmt.Sprintf("[%s:%s]", highlight.Foreground, highlight.Background),
	}
	return d
}

// Reset removes all panels
func (d *DetailView) Reset() {
	d.Flex.Clear()
	d.items = nil
	d.focused = 0
}

// ShowMessage replaces the panels with a single dim message
func (d *DetailView) ShowMessage(msg string) {
	d.Reset()
	text := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	text.SetText("[gray]" + tview.Escape(msg) + "[-]")
	d.Flex.AddItem(text, 0, 1, false)
}

// HeaderTable adds a key/value table panel
func (d *DetailView) HeaderTable(heading string, rows []details.HighlightedRow) {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	table.SetBorder(true).SetTitle(" " + heading + " ").SetTitleAlign(tview.AlignLeft)

	table.SetCell(0, 0, headerCell("Key", keyColumnExpansion))
	table.SetCell(0, 1, headerCell("Value", valueColumnExpansion))
	for i, row := range rows {
		table.SetCell(i+1, 0, tview.NewTableCell(renderSegments(row.Key, d.highlightTag)).
			SetTextColor(tcell.ColorTeal).
			SetExpansion(keyColumnExpansion))
		table.SetCell(i+1, 1, tview.NewTableCell(renderSegments(row.Value, d.highlightTag)).
			SetExpansion(valueColumnExpansion))
	}
	if len(rows) > 0 {
		table.Select(1, 0)
	}

	height := len(rows) + 3
	if height > maxHeaderTableHeight {
		height = maxHeaderTableHeight
	}
	d.items = append(d.items, detailItem{heading: heading, primitive: table, box: table.Box, table: table, rows: rows})
	d.Flex.AddItem(table, height, 0, false)
}

// BodyView adds a body panel. Bodies that failed to parse show the
// invalid-JSON fallback.
func (d *DetailView) BodyView(heading string, body *details.Body, segments []jsonview.Segment) {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true).
		SetScrollable(true)
	view.SetBorder(true).SetTitleAlign(tview.AlignLeft)

	if body.Valid() {
		view.SetTitle(" " + heading + " [gray]" + tview.Escape("[y] Copy") + "[-] ")
		view.SetText(renderSegments(segments, d.highlightTag) + "\n")
	} else {
		view.SetTitle(" " + heading + " ")
		view.SetText("[red]" + details.InvalidJSONMessage + "[-]")
	}

	d.items = append(d.items, detailItem{heading: heading, primitive: view, box: view.Box, body: body})
	d.Flex.AddItem(view, 0, 1, false)
}

// Len returns the number of panels
func (d *DetailView) Len() int {
	return len(d.items)
}

// Focused returns the panel that has detail focus
func (d *DetailView) Focused() (detailItem, bool) {
	if d.focused < 0 || d.focused >= len(d.items) {
		return detailItem{}, false
	}
	return d.items[d.focused], true
}

// Cycle moves detail focus by delta panels and returns the newly focused primitive
func (d *DetailView) Cycle(delta int) tview.Primitive {
	if len(d.items) == 0 {
		return nil
	}
	d.focused = (d.focused + delta + len(d.items)) % len(d.items)
	return d.items[d.focused].primitive
}

// MarkFocus colors the focused panel's border when active is true
func (d *DetailView) MarkFocus(active bool) {
	for i, item := range d.items {
		if active && i == d.focused {
			item.box.SetBorderColor(tcell.ColorYellow)
		} else {
			item.box.SetBorderColor(tcell.ColorDarkCyan)
		}
	}
}

// SelectedRow returns the header row selected in the focused table
func (item detailItem) SelectedRow() (details.Row, bool) {
	if item.table == nil {
		return details.Row{}, false
	}
	r, _ := item.table.GetSelection()
	if r < 1 || r > len(item.rows) {
		return details.Row{}, false
	}
	return item.rows[r-1].Row, true
}

func headerCell(text string, expansion int) *tview.TableCell {
	return tview.NewTableCell("[::b]" + text + "[::-]").
		SetSelectable(false).
		SetExpansion(expansion)
}

// renderSegments converts highlight segments to tview markup. Segment text is
// escaped so captured payloads cannot inject color tags.
func renderSegments(segments []jsonview.Segment, highlightTag string) string {
	var b strings.Builder
	for _, seg := range segments {
		text := tview.Escape(seg.Text)
		if seg.Matched {
			b.WriteString(highlightTag)
			b.WriteString(text)
			b.WriteString("[-:-:-]")
			continue
		}
		b.WriteString(text)
	}
	return b.String()
}
