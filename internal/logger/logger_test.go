package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.With("intent", "main", "variant", "filled")
	log.Info("attributes published", "enabled", true)

	entry := decode(t, buf)
	require.Equal(t, "attributes published", entry["message"])
	require.Equal(t, "main", entry["intent"])
	require.Equal(t, "filled", entry["variant"])
	require.Equal(t, true, entry["enabled"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Component("config").Error(errors.New("boom"), "theme rejected", "path", "dark.yaml")

	entry := decode(t, buf)
	require.Equal(t, "theme rejected", entry["message"])
	require.Equal(t, "config", entry["component"])
	require.Equal(t, "dark.yaml", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerDanglingKeyIsKept(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Warn("odd fields", "lonely")

	entry := decode(t, buf)
	require.Equal(t, "lonely", entry["extra"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.With("k", "v").Debug("ignored")
		log.Component("shell").Error(errors.New("x"), "ignored")
		Nop().Info("ignored")
	})
}
