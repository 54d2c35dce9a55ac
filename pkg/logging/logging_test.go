package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLoggerWithOutput(tt.verbosity, &bytes.Buffer{})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "dotfile-manager", "dotfile-manager.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestSetupLoggerWritesToConsole(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var buf bytes.Buffer
	SetupLoggerWithOutput(1, &buf)

	logger := GetLogger("repo")
	logger.Info().Str("project", "vim").Msg("Installing project")

	out := buf.String()
	assert.Contains(t, out, "Installing project")
	assert.Contains(t, out, "component=repo")
	assert.NotContains(t, out, "\x1b[", "non-terminal output must not be colored")
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")

		got := filepath.ToSlash(getLogFilePath())
		assert.Equal(t, "/custom/state/dotfile-manager/dotfile-manager.log", got)
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")

		got := filepath.ToSlash(getLogFilePath())
		assert.True(t, strings.HasSuffix(got, "dotfile-manager/dotfile-manager.log"), got)
	})
}

func TestLogOperationStart(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var buf bytes.Buffer
	SetupLoggerWithOutput(2, &buf)

	done := LogOperationStart(GetLogger("test"), "setup")
	done()

	out := buf.String()
	require.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "operation=setup")
}
