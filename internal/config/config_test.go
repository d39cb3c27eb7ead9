package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.InputDirectory = t.TempDir()
	cfg.OutputDirectory = filepath.Join(cfg.InputDirectory, "sorted")
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ModeCLI, cfg.Mode)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "YYYY", cfg.DateFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int64(100*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, "document-classifier-renamer", cfg.ServerName)
	assert.NotEmpty(t, cfg.InputDirectory)
	assert.NotEmpty(t, cfg.OutputDirectory)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := validTestConfig(t)
	assert.NoError(t, cfg.Validate())
}

func TestValidateMode(t *testing.T) {
	cfg := validTestConfig(t)

	cfg.Mode = "daemon"
	assert.ErrorContains(t, cfg.Validate(), "mode must be")

	cfg.Mode = ModeStdio
	assert.NoError(t, cfg.Validate())
}

func TestValidateLocale(t *testing.T) {
	cfg := validTestConfig(t)

	cfg.Locale = "fr"
	assert.ErrorContains(t, cfg.Validate(), "unsupported locale")

	cfg.Locale = "de"
	assert.NoError(t, cfg.Validate())
}

func TestValidateDateFormat(t *testing.T) {
	cfg := validTestConfig(t)

	cfg.DateFormat = "DD-MM-YYYY"
	assert.ErrorContains(t, cfg.Validate(), "invalid date format")

	cfg.DateFormat = "YYYYMMDD"
	assert.NoError(t, cfg.Validate())
}

func TestValidateInputDirectory(t *testing.T) {
	cfg := validTestConfig(t)

	cfg.InputDirectory = ""
	assert.ErrorContains(t, cfg.Validate(), "input directory cannot be empty")

	cfg.InputDirectory = filepath.Join(t.TempDir(), "missing")
	assert.ErrorContains(t, cfg.Validate(), "cannot access input directory")

	file := filepath.Join(t.TempDir(), "file.pdf")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	cfg.InputDirectory = file
	assert.ErrorContains(t, cfg.Validate(), "not a directory")
}

func TestValidateInputDirectorySkippedInStdioMode(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.Mode = ModeStdio
	cfg.InputDirectory = filepath.Join(t.TempDir(), "missing")

	// Stdio mode never touches the input directory.
	assert.NoError(t, cfg.Validate())
}

func TestValidateCustomRulesPath(t *testing.T) {
	cfg := validTestConfig(t)

	cfg.CustomRulesPath = filepath.Join(t.TempDir(), "rules.json")
	assert.ErrorContains(t, cfg.Validate(), "cannot access custom rules file")

	require.NoError(t, os.WriteFile(cfg.CustomRulesPath, []byte("[]"), 0o600))
	assert.NoError(t, cfg.Validate())
}

func TestValidateMaxFileSize(t *testing.T) {
	cfg := validTestConfig(t)

	cfg.MaxFileSize = 0
	assert.ErrorContains(t, cfg.Validate(), "must be positive")

	cfg.MaxFileSize = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateLogLevel(t *testing.T) {
	cfg := validTestConfig(t)

	cfg.LogLevel = "trace"
	assert.ErrorContains(t, cfg.Validate(), "invalid log level")

	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg.LogLevel = level
		assert.NoError(t, cfg.Validate(), "level %s", level)
	}
}

func TestModeHelpers(t *testing.T) {
	cfg := &Config{Mode: ModeCLI, LogLevel: "debug"}
	assert.True(t, cfg.IsCLIMode())
	assert.False(t, cfg.IsStdioMode())
	assert.True(t, cfg.IsDebug())

	cfg = &Config{Mode: ModeStdio, LogLevel: "info"}
	assert.False(t, cfg.IsCLIMode())
	assert.True(t, cfg.IsStdioMode())
	assert.False(t, cfg.IsDebug())
}

func TestString(t *testing.T) {
	cfg := validTestConfig(t)
	s := cfg.String()

	assert.Contains(t, s, "Mode: cli")
	assert.Contains(t, s, "Locale: en")
	assert.NotContains(t, s, "ServerName")
}
