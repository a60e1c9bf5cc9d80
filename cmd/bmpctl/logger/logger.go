// Package logger holds the process-wide slog logger for bmpctl.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L *slog.Logger = slog.New(slog.DiscardHandler)

// logFile is the file behind L when logging to LogDir, nil otherwise.
var logFile *os.File

const (
	logPrefix     = "bmpctl-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Empty logs to stderr
	Level   slog.Level // Minimum log level
}

// Init configures logging. Call before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}

	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return nil
	}

	if opts.LogDir == "" {
		L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.Level}))
		return nil
	}

	if err := os.MkdirAll(opts.LogDir, 0755); err != nil {
		return err
	}

	// Clean up old logs (best-effort, ignore errors)
	cleanOldLogs(opts.LogDir, time.Now())

	filename := filepath.Join(opts.LogDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	logFile = f
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Close releases the log file opened by Init, if any, and resets L to discard.
func Close() error {
	if logFile == nil {
		return nil
	}
	L = slog.New(slog.DiscardHandler)
	err := logFile.Close()
	logFile = nil
	return err
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// bmpctl-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}
