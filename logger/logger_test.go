package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/config"
	"library/models"
)

func Test_ParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
		ok       bool
	}{
		{name: "Debug", level: "debug", expected: zerolog.DebugLevel, ok: true},
		{name: "Upper case", level: "INFO", expected: zerolog.InfoLevel, ok: true},
		{name: "Warning alias", level: "WARNING", expected: zerolog.WarnLevel, ok: true},
		{name: "Critical alias", level: "critical", expected: zerolog.FatalLevel, ok: true},
		{name: "Trace", level: "Trace", expected: zerolog.TraceLevel, ok: true},
		{name: "Disabled", level: "disabled", expected: zerolog.Disabled, ok: true},
		{name: "Unknown", level: "verbose", ok: false},
		{name: "Empty", level: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := ParseLevel(tt.level)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, level)
			}
		})
	}
}

func Test_LevelName(t *testing.T) {
	assert.Equal(t, "INFO", LevelName(zerolog.InfoLevel))
	assert.Equal(t, "WARN", LevelName(zerolog.WarnLevel))
	assert.Equal(t, "DISABLED", LevelName(zerolog.Disabled))
}

func Test_Registry_Levels(t *testing.T) {
	registry := NewRegistryWithOutput(config.DefaultConfig(), &bytes.Buffer{})

	assert.Equal(t, []string{BooksLoggerName, RequestLoggerName}, registry.Names())

	level, err := registry.LevelOf(RequestLoggerName)
	require.NoError(t, err)
	assert.Equal(t, "INFO", level)

	applied, err := registry.SetLevel(BooksLoggerName, "debug")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", applied)

	level, err = registry.LevelOf(BooksLoggerName)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", level)

	level, err = registry.LevelOf(RequestLoggerName)
	require.NoError(t, err)
	assert.Equal(t, "INFO", level)
}

func Test_Registry_Errors(t *testing.T) {
	registry := NewRegistryWithOutput(config.DefaultConfig(), &bytes.Buffer{})

	_, err := registry.LevelOf("missing-logger")
	assert.ErrorIs(t, err, models.ErrLoggerNotFound)

	_, err = registry.SetLevel("missing-logger", "verbose")
	assert.ErrorIs(t, err, models.ErrLoggerNotFound)

	_, err = registry.SetLevel(RequestLoggerName, "verbose")
	assert.ErrorIs(t, err, models.ErrInvalidLevel)

	level, err := registry.LevelOf(RequestLoggerName)
	require.NoError(t, err)
	assert.Equal(t, "INFO", level)
}

func Test_NamedLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	registry := NewRegistryWithOutput(config.DefaultConfig(), &buf)
	books := registry.Books()

	books.Info().Int64(RequestField, 7).Str(RequestIdField, "abc").Msg("Creating new Book with Title [Dune]")
	books.Debug().Int64(RequestField, 7).Msg("hidden at info")

	out := buf.String()
	assert.Contains(t, out, "INFO: Creating new Book with Title [Dune] | request #7")
	assert.NotContains(t, out, "hidden at info")
	assert.NotContains(t, out, "abc")

	books.SetLevel(zerolog.DebugLevel)
	books.Debug().Int64(RequestField, 8).Msg("visible at debug")
	assert.Contains(t, buf.String(), "DEBUG: visible at debug | request #8")
}

func Test_NamedLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Log.Format = JSONFormat
	registry := NewRegistryWithOutput(cfg, &buf)

	registry.Requests().Info().Int64(RequestField, 1).Msg("Incoming request")

	assert.Contains(t, buf.String(), `"request":1`)
	assert.Contains(t, buf.String(), `"message":"Incoming request"`)
}

func Test_NewRegistry_Files(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Dir = filepath.Join(t.TempDir(), "logs")

	registry, err := NewRegistry(cfg)
	require.NoError(t, err)

	registry.Books().Info().Int64(RequestField, 2).Msg("Removing book [Dune]")
	require.NoError(t, registry.Close())

	data, err := os.ReadFile(filepath.Join(cfg.Log.Dir, booksLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Removing book [Dune] | request #2")

	_, err = os.Stat(filepath.Join(cfg.Log.Dir, requestsLogFile))
	assert.NoError(t, err)
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}
