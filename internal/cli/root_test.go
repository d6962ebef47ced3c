package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnharrison/reqview/internal/config"
	"github.com/cnharrison/reqview/internal/jsonview"
)

// isolate points the default config location at an empty directory
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCommandWithStderr(t, stdin, args...)
	return out, err
}

func runCommandWithStderr(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand("1.0.0")
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewRootCommand(t *testing.T) {
	t.Run("creates root command", func(t *testing.T) {
		cmd := NewRootCommand("1.0.0")
		assert.NotNil(t, cmd)
		assert.Equal(t, "reqview <file.har>", cmd.Use)
		assert.Equal(t, "1.0.0", cmd.Version)
	})

	t.Run("has persistent flags", func(t *testing.T) {
		cmd := NewRootCommand("1.0.0")
		for _, name := range []string{"config", "indent", "log-file", "log-level"} {
			assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
		}
		assert.Equal(t, "c", cmd.PersistentFlags().Lookup("config").Shorthand)
	})

	t.Run("has pretty subcommand", func(t *testing.T) {
		cmd := NewRootCommand("1.0.0")
		prettyCmd, _, err := cmd.Find([]string{"pretty"})
		require.NoError(t, err)
		assert.Contains(t, prettyCmd.Use, "pretty")
		assert.NotNil(t, prettyCmd.Flags().Lookup("search"))
	})

	t.Run("requires a capture file", func(t *testing.T) {
		isolate(t)
		_, err := runCommand(t, "")
		assert.Error(t, err)
	})

	t.Run("missing capture file fails before the UI starts", func(t *testing.T) {
		isolate(t)
		_, err := runCommand(t, "", filepath.Join(t.TempDir(), "missing.har"))
		assert.Error(t, err)
	})
}

func TestCommandErrorsAreLeftToCaller(t *testing.T) {
	t.Run("root runtime error", func(t *testing.T) {
		isolate(t)
		out, errOut, err := runCommandWithStderr(t, "", filepath.Join(t.TempDir(), "missing.har"))
		require.Error(t, err)
		assert.Empty(t, errOut)
		assert.NotContains(t, out, "Usage:")
	})

	t.Run("pretty invalid input", func(t *testing.T) {
		isolate(t)
		out, errOut, err := runCommandWithStderr(t, "[1,", "pretty")
		require.Error(t, err)
		assert.Empty(t, errOut)
		assert.Equal(t, "Invalid JSON\n", out)
	})
}

func TestOptionsLoad(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		isolate(t)
		cmd := NewRootCommand("1.0.0")
		require.NoError(t, cmd.ParseFlags(nil))
		opts := &options{}
		cfg, err := opts.load(cmd)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("flags override config file", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("indent: 4\nlog:\n  level: debug\n"), 0644))

		cmd := NewRootCommand("1.0.0")
		require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--indent", "0"}))
		opts := &options{configPath: path, indent: 0}
		cfg, err := opts.load(cmd)
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Indent)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("rejects out of range indent flag", func(t *testing.T) {
		isolate(t)
		cmd := NewRootCommand("1.0.0")
		require.NoError(t, cmd.ParseFlags([]string{"--indent", "11"}))
		opts := &options{indent: 11}
		_, err := opts.load(cmd)
		assert.Error(t, err)
	})
}

func TestPrettyCommand(t *testing.T) {
	t.Run("pretty prints stdin keeping key order", func(t *testing.T) {
		isolate(t)
		out, err := runCommand(t, `{"b":1,"a":[true,null]}`, "pretty")
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null\n  ]\n}\n", out)
	})

	t.Run("reads a file with custom indent", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "doc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"x":{"y":2}}`), 0644))

		out, err := runCommand(t, "", "pretty", "--indent", "0", path)
		require.NoError(t, err)
		assert.Equal(t, "{\"x\":{\"y\":2}}\n", out)
	})

	t.Run("invalid JSON prints fallback", func(t *testing.T) {
		isolate(t)
		out, err := runCommand(t, "{not json", "pretty", "-")
		assert.ErrorIs(t, err, jsonview.ErrInvalidJSON)
		assert.Equal(t, "Invalid JSON\n", out)
	})

	t.Run("missing file", func(t *testing.T) {
		isolate(t)
		_, err := runCommand(t, "", "pretty", filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file not found")
	})
}

func TestRenderHighlights(t *testing.T) {
	style := highlightStyle(config.Highlight{Foreground: "black", Background: "yellow"})
	segments := jsonview.Highlight(`{"name": "JSON"}`, "json")

	out := renderHighlights(segments, style)
	assert.Contains(t, out, `{"name": "`)
	assert.Contains(t, out, "JSON")
	assert.Equal(t, 1, jsonview.MatchCount(segments))
}
