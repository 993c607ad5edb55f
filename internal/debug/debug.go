// Package debug writes the demo's diagnostic log next to its state file.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"throbber/pkg/config"
)

// DebugLogger manages debug output using Go's standard logging
type DebugLogger struct {
	logger  *log.Logger
	logFile *os.File
	path    string
}

// LogPath returns where the debug log is written.
func LogPath() string {
	dir, err := config.GetConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "debug.log")
}

// NewDebugLogger opens the debug log in the config directory, falling back
// to stderr when the file cannot be created.
func NewDebugLogger() *DebugLogger {
	if err := config.EnsureConfigDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create config directory: %v\n", err)
	}

	path := LogPath()
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile = os.Stderr
	}

	d := newLogger(logFile)
	d.logFile = logFile
	d.path = path
	d.logger.Println("=== Debug session started ===")
	return d
}

func newLogger(w io.Writer) *DebugLogger {
	return &DebugLogger{
		logger: log.New(w, "[DEBUG] ", log.LstdFlags|log.Lshortfile),
	}
}

// Path returns the log file path, or "" when logging to stderr.
func (d *DebugLogger) Path() string {
	if d == nil || d.logFile == os.Stderr {
		return ""
	}
	return d.path
}

// Log adds a message using Go's standard logger
func (d *DebugLogger) Log(format string, args ...interface{}) {
	if d == nil {
		return
	}
	// Depth 3 points Lshortfile at the DebugLog caller.
	_ = d.logger.Output(3, fmt.Sprintf(format, args...))
}

// Close closes the debug log file
func (d *DebugLogger) Close() {
	if d == nil {
		return
	}
	d.logger.Println("=== Debug session ended ===")

	if d.logFile != nil && d.logFile != os.Stderr {
		if err := d.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close debug log file: %v\n", err)
		}
	}
}

// Global debug logger instance
var globalDebugLogger *DebugLogger

// DebugLog logs a message to the global debug logger
func DebugLog(format string, args ...interface{}) {
	globalDebugLogger.Log(format, args...)
}

// InitDebugLogger initializes the global debug logger
func InitDebugLogger() *DebugLogger {
	globalDebugLogger = NewDebugLogger()
	return globalDebugLogger
}
