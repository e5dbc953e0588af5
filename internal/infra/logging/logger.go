// Package logging provides file-based logging for goalkeeper.
// Entries go to a global log file (<data>/logs/goalkeeper.log) and, when
// tied to a goal, to that goal's log file (<data>/logs/goal-N.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/goalkeeper/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled log lines to files under the data directory.
// Fields are ordered to minimize memory padding.
type Logger struct {
	clock      domain.Clock
	globalFile *os.File
	goalFiles  map[int]*os.File
	dataDir    string
	mu         sync.Mutex
	level      slog.Level
}

// New creates a new Logger that writes to the data directory's logs folder.
// If dataDir is empty, logging is disabled.
func New(dataDir string, level slog.Level) *Logger {
	return NewWithClock(dataDir, level, domain.RealClock{})
}

// NewWithClock creates a Logger that stamps entries using clock.
func NewWithClock(dataDir string, level slog.Level, clock domain.Clock) *Logger {
	return &Logger{
		clock:     clock,
		dataDir:   dataDir,
		level:     level,
		goalFiles: make(map[int]*os.File),
	}
}

// ParseLevel parses a log level string into slog.Level.
// Unknown values fall back to info and report false.
func ParseLevel(levelStr string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// openAppend opens a log file for appending, creating the logs directory.
// Caller must hold mu.
func (l *Logger) openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// writers returns the files an entry for goalID goes to. Caller must hold mu.
func (l *Logger) writers(goalID int) []io.Writer {
	var ws []io.Writer

	if l.globalFile == nil {
		if f, err := l.openAppend(domain.GlobalLogPath(l.dataDir)); err == nil {
			l.globalFile = f
		}
	}
	if l.globalFile != nil {
		ws = append(ws, l.globalFile)
	}

	if goalID > 0 {
		f, ok := l.goalFiles[goalID]
		if !ok {
			var err error
			if f, err = l.openAppend(domain.GoalLogPath(l.dataDir, goalID)); err == nil {
				l.goalFiles[goalID] = f
			}
		}
		if f != nil {
			ws = append(ws, f)
		}
	}
	return ws
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for id, f := range l.goalFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.goalFiles, id)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2026-01-30 09:32:51] [INFO] [goal-1] [category] message
func formatLog(t time.Time, level slog.Level, goalID int, category, msg string) string {
	scope := "global"
	if goalID > 0 {
		scope = fmt.Sprintf("goal-%d", goalID)
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		level.String(),
		scope,
		category,
		strings.ReplaceAll(msg, "\n", `\n`),
	)
}

// log writes an entry to the global log and, if goalID > 0, the goal's log.
func (l *Logger) log(level slog.Level, goalID int, category, msg string) {
	if l.dataDir == "" || level < l.level {
		return
	}

	entry := formatLog(l.clock.Now(), level, goalID, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.writers(goalID) {
		_, _ = io.WriteString(w, entry)
	}
}

// Info logs an info message.
func (l *Logger) Info(goalID int, category, msg string) {
	l.log(slog.LevelInfo, goalID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(goalID int, category, msg string) {
	l.log(slog.LevelDebug, goalID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(goalID int, category, msg string) {
	l.log(slog.LevelWarn, goalID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(goalID int, category, msg string) {
	l.log(slog.LevelError, goalID, category, msg)
}
