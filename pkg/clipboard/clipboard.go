package clipboard

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// fallbackCommands are tried when the native clipboard is unavailable
var fallbackCommands = [][]string{
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
	{"wl-copy"},
}

// Write copies text to the system clipboard
func Write(text string) error {
	nativeErr := clipboard.WriteAll(text)
	if nativeErr == nil {
		return nil
	}

	for _, args := range fallbackCommands {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no clipboard available: %w", nativeErr)
}
