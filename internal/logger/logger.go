// Package logger wraps charmbracelet/log with publishing-specific helpers.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger emits structured diagnostics, normally on stderr so primary output
// stays pipeable.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w. Verbose enables debug-level
// diagnostics; warnings are always reported.
func New(w io.Writer, verbose bool) *Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that drops all output.
func Discard() *Logger {
	return New(io.Discard, false)
}

// NoteSkipped logs a note that could not be read.
func (l *Logger) NoteSkipped(path string, err error) {
	l.Warn("note skipped", "path", path, "error", err)
}

// LinkCreated logs a successful symlink.
func (l *Logger) LinkCreated(name, source string) {
	l.Debug("link created", "name", name, "source", source)
}

// LinkConflict logs a destination that already points elsewhere.
func (l *Logger) LinkConflict(err error) {
	l.Warn("link conflict, not overwritten", "error", err)
}

// MissingSource logs a link source that does not exist on disk.
func (l *Logger) MissingSource(err error) {
	l.Warn("link source missing, skipped", "error", err)
}

// LinkSummary logs the outcome of a batch link operation.
func (l *Logger) LinkSummary(destDir string, linked, skipped int) {
	l.Info("linking finished", "dest", destDir, "linked", linked, "skipped", skipped)
}
