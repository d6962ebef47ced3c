package details

import (
	"errors"

	"github.com/rs/zerolog"
)

// CopiedMessage is the notification shown after a successful copy
const CopiedMessage = "Copied !"

var errNothingToCopy = errors.New("body has no pretty rendering")

// Copier puts panel content on the clipboard. Failures are logged and never
// reported to the user; success is announced through notify.
type Copier struct {
	write  func(string) error
	notify func(string)
	logger zerolog.Logger
}

// NewCopier creates a copier writing through write and announcing through notify
func NewCopier(write func(string) error, notify func(string), logger zerolog.Logger) *Copier {
	return &Copier{write: write, notify: notify, logger: logger}
}

// CopyBody copies the pretty rendering of body
func (c *Copier) CopyBody(heading string, body *Body) bool {
	if !body.Valid() {
		err := errNothingToCopy
		if body != nil && body.Err != nil {
			err = body.Err
		}
		c.logger.Error().Err(err).Str("panel", heading).Msg("failed to copy JSON")
		return false
	}
	return c.CopyText(heading, body.Pretty)
}

// CopyHeader copies a header row's copy text
func (c *Copier) CopyHeader(heading string, row Row) bool {
	return c.CopyText(heading, row.CopyText)
}

// CopyText copies arbitrary text
func (c *Copier) CopyText(label, text string) bool {
	if err := c.write(text); err != nil {
		c.logger.Error().Err(err).Str("panel", label).Msg("clipboard write failed")
		return false
	}
	c.logger.Debug().Str("panel", label).Int("bytes", len(text)).Msg("copied to clipboard")
	if c.notify != nil {
		c.notify(CopiedMessage)
	}
	return true
}
