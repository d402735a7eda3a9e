package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), *s)
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "console", s.Output.Format)
	assert.Equal(t, "CAD", s.Output.Currency)
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "logging:\n  level: info\n  format: json\noutput:\n  format: html\n  directory: reports\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("TCO_LOGGING_LEVEL", "debug")
	t.Setenv("TCO_OUTPUT_FORMAT", "csv")
	t.Setenv("TCO_OUTPUT_CURRENCY", "EUR")
	t.Setenv("TCO_LOGGING_MAX_BACKUPS", "3")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.Equal(t, "json", s.Logging.Format)
	assert.Equal(t, "stderr", s.Logging.Output)
	assert.Equal(t, "csv", s.Output.Format)
	assert.Equal(t, "reports", s.Output.Directory)
	assert.Equal(t, "EUR", s.Output.Currency)
	assert.Equal(t, 3, s.Logging.MaxBackups)
}

func TestLoadSettings_InvalidLevel(t *testing.T) {
	t.Setenv("TCO_LOGGING_LEVEL", "chatty")
	_, err := LoadSettings("")
	assert.Error(t, err)
}
