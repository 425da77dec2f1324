package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: "debug", Output: &buf})
	require.NoError(t, err)

	logger.With("component", "hierarchy").Debug("node added", "row", 4, "label", "Akten 1", "err", errors.New("boom"))

	line := buf.String()
	assert.Contains(t, line, " DEBUG hierarchy: node added ")
	assert.Contains(t, line, "row=4")
	assert.Contains(t, line, `label="Akten 1"`)
	assert.Contains(t, line, "err=boom")
	assert.NotContains(t, line, "component=")
}

func TestConsoleGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Output: &buf})
	require.NoError(t, err)

	logger.WithGroup("record").Info("done", slog.String("id", "U1"))
	assert.Contains(t, buf.String(), "record.id=U1")
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN shown")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Info("imported", "records", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "imported", entry["msg"])
	assert.EqualValues(t, 3, entry["records"])
	assert.Contains(t, entry, "ts")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "import.log")
	var buf bytes.Buffer
	logger, closeLog, err := New(Options{Output: &buf, File: path})
	require.NoError(t, err)

	logger.Info("written twice")
	require.NoError(t, closeLog())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written twice")
	assert.Contains(t, buf.String(), "written twice")
}

func TestInvalidOptions(t *testing.T) {
	_, _, err := New(Options{Format: "xml"})
	assert.Error(t, err)
	_, _, err = New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestCloseWithoutFile(t *testing.T) {
	_, closeLog, err := New(Options{Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.NoError(t, closeLog())
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() { NewNop().Error("ignored") })
}
