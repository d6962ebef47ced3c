package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cnharrison/reqview/internal/config"
	"github.com/cnharrison/reqview/internal/details"
	"github.com/cnharrison/reqview/internal/jsonview"
)

// ansiColors maps the tview color names used in config to terminal colors
var ansiColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"purple":  "5",
	"cyan":    "6",
	"teal":    "6",
	"white":   "7",
	"gray":    "8",
}

// NewPrettyCommand creates the pretty command.
func NewPrettyCommand(opts *options) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "pretty [file|-]",
		Short: "Pretty print a JSON document",
		Long: `Pretty print a JSON document from a file or stdin, keeping key order.
Occurrences of --search are highlighted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			raw, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			pretty, err := jsonview.Pretty(raw, cfg.Indent)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), details.InvalidJSONMessage)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderHighlights(jsonview.Highlight(pretty, search), highlightStyle(cfg.Highlight)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Highlight occurrences of this text")

	return cmd
}

// readInput reads the named file, or stdin when the argument is missing or "-"
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file not found: %s", args[0])
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func highlightStyle(h config.Highlight) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	fg, fgOK := ansiColors[strings.ToLower(h.Foreground)]
	bg, bgOK := ansiColors[strings.ToLower(h.Background)]
	if !fgOK && !bgOK {
		return style.Reverse(true)
	}
	if fgOK {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bgOK {
		style = style.Background(lipgloss.Color(bg))
	}
	return style
}

// renderHighlights joins segments, styling the matched ones
func renderHighlights(segments []jsonview.Segment, style lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Matched {
			b.WriteString(style.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
