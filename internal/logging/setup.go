// Package logging configures the process-wide slog handler backed by
// charmbracelet/log for text output or the stdlib JSON handler.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// FormatText and FormatJSON are the accepted log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// TextHandler returns a charmbracelet text handler for the given level
// string. The "trace" level enables caller and timestamp reporting on top of
// debug output.
func TextHandler(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	reportCaller := false
	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		reportTimestamp = true
		lvl = log.DebugLevel
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "info":
		lvl = log.InfoLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
	})
}

// JSONHandler returns a stdlib JSON slog handler for the given level string.
func JSONHandler(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	addSource := false
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "trace":
		addSource = true
		level = slog.LevelDebug
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
}

// Handler selects a handler implementation based on the format string.
// Unknown formats fall back to text.
func Handler(logLevel, format string, writer io.Writer) slog.Handler {
	if strings.ToLower(format) == FormatJSON {
		return JSONHandler(logLevel, writer)
	}
	return TextHandler(logLevel, writer)
}

// Setup installs the selected handler as the process default logger.
func Setup(logLevel, format string) {
	slog.SetDefault(slog.New(Handler(logLevel, format, nil)))
}
