package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, "black", cfg.Highlight.Foreground)
	assert.Equal(t, "yellow", cfg.Highlight.Background)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "indent: 4\nhighlight:\n  background: red\nlog:\n  file: /tmp/reqview.log\n  level: debug\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Indent)
		assert.Equal(t, "black", cfg.Highlight.Foreground)
		assert.Equal(t, "red", cfg.Highlight.Background)
		assert.Equal(t, "/tmp/reqview.log", cfg.Log.File)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("default path may be missing", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "indent: [\n"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "indent: 20\n"))
		assert.ErrorContains(t, err, "indent")

		_, err = Load(writeConfig(t, "log:\n  level: loud\n"))
		assert.ErrorContains(t, err, "log level")
	})
}
