// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gnames/rolecheck/pkg/config"
)

// LogFile is the name of the log file created in the log directory.
const LogFile = "rolecheck.log"

var (
	mu sync.Mutex
	// logFile is the file behind the default logger, nil for std streams.
	logFile *os.File
)

// Init initializes the global slog logger with the given configuration.
// Appends to rolecheck.log in logDir if destination is "file".
// A log file opened by a previous Init is closed.
func Init(logDir string, cfg config.LogConfig) error {
	var writer io.Writer
	var file *os.File

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		var err error
		file, err = os.OpenFile(
			logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644,
		)
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}

	slog.SetDefault(New(writer, cfg))
	return swapFile(file)
}

// Close closes the current log file, if there is one.
func Close() error {
	return swapFile(nil)
}

func swapFile(file *os.File) error {
	mu.Lock()
	prev := logFile
	logFile = file
	mu.Unlock()

	if prev == nil || prev == file {
		return nil
	}
	return prev.Close()
}

// New creates a logger writing to w with the level and format from
// the config. Unknown formats fall back to JSON.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text", "tint":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level.
// Invalid levels default to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
