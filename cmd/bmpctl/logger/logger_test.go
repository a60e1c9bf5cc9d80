package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestInitWritesDatedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug}))
	t.Cleanup(func() { _ = Init(Options{}) })

	L.Debug("decoded header", "path", "test.bmp")

	name := logPrefix + time.Now().Format("2006-01-02") + logSuffix
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"decoded header"`)
	assert.Contains(t, string(data), `"path":"test.bmp"`)
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	old := filepath.Join(dir, "bmpctl-2026-08-01.log")
	recent := filepath.Join(dir, "bmpctl-2026-10-10.log")
	other := filepath.Join(dir, "notes-2020-01-01.log")
	for _, p := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}

	cleanOldLogs(dir, now)

	assert.NoFileExists(t, old)
	assert.FileExists(t, recent)
	assert.FileExists(t, other)
}

func TestInitClosesPreviousFile(t *testing.T) {
	first := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: first}))
	t.Cleanup(func() { _ = Close() })
	prev := logFile
	require.NotNil(t, prev)

	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir()}))
	assert.NotSame(t, prev, logFile)

	_, err := prev.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)

	require.NoError(t, Init(Options{}))
	assert.Nil(t, logFile)
}
