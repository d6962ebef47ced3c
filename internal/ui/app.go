package ui

import (
	"time"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/cnharrison/reqview/internal/config"
	"github.com/cnharrison/reqview/internal/details"
	"github.com/cnharrison/reqview/internal/filter"
	"github.com/cnharrison/reqview/internal/har"
	"github.com/cnharrison/reqview/pkg/clipboard"
)

const (
	// Animation and timing constants
	animationIntervalMs      = 500
	statusMessageDurationSec = 3
	pulseCycleFrames         = 2

	// Layout constants
	searchInputWidthRatio = 2
	searchBoxHeight       = 3
	detailWidthRatio      = 2
	maxPathDisplayLength  = 50
	pathTruncateOffset    = 3

	// HTTP status code thresholds
	statusCodeSuccess     = 200
	statusCodeRedirect    = 300
	statusCodeClientError = 400
)

// Application is the reqview terminal UI
type Application struct {
	capture     *har.File
	filename    string
	cfg         *config.Config
	logger      zerolog.Logger
	app         *tview.Application
	filterState *filter.State
	copier      *details.Copier

	// UI state
	filteredEntries []int
	focusOnDetails  bool
	helpOpen        bool
	animationFrame  int
	matchCount      int

	// Confirmation/status messages
	statusMessage string
	statusEnd     time.Time

	// UI components
	requests    *tview.List
	detail      *DetailView
	topBar      *tview.TextView
	bottomBar   *tview.TextView
	searchInput *tview.InputField
	layout      *tview.Flex
}

// NewApplication creates the UI for a loaded capture
func NewApplication(capture *har.File, filename string, cfg *config.Config, logger zerolog.Logger) *Application {
	app := &Application{
		capture:     capture,
		filename:    filename,
		cfg:         cfg,
		logger:      logger,
		app:         tview.NewApplication(),
		filterState: filter.NewState(cfg.Indent),
	}
	app.copier = details.NewCopier(clipboard.Write, app.showStatusMessage, logger)
	return app
}

// Run starts the TUI and blocks until it exits
func (app *Application) Run() error {
	app.setupUI()
	app.setupEventHandling()
	app.startAnimationLoop()

	app.updateRequestsList()
	app.updateFocusStyles()
	app.updateBottomBar()

	app.logger.Info().Str("file", app.filename).Int("entries", len(app.entries())).Msg("capture opened")
	return app.app.SetRoot(app.layout, true).Run()
}

// entries returns the entries of the loaded capture
func (app *Application) entries() []har.Entry {
	if app.capture == nil {
		return nil
	}
	return app.capture.Log.Entries
}

// showStatusMessage shows a temporary status message
func (app *Application) showStatusMessage(msg string) {
	app.statusMessage = msg
	app.statusEnd = time.Now().Add(statusMessageDurationSec * time.Second)
	if app.bottomBar != nil {
		app.updateBottomBar()
	}
}
