// Package logger writes the client's debug log. The terminal belongs to the UI, so every
// entry goes to a file under the user's home directory.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
)

const maxLogSize = 10 * 1024 * 1024

var (
	debugLog *os.File
	logPath  string
	std      = logrus.New()
)

// Options controls where and how verbosely the logger writes.
type Options struct {
	Dir   string // defaults to ~/.lexio
	Level string // logrus level name, defaults to info
}

// Init initializes the debug logger
func Init(opts Options) error {
	logDir := opts.Dir
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		logDir = filepath.Join(homeDir, ".lexio")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath = filepath.Join(logDir, "debug.log")
	f, err := openRotated(logDir, logPath)
	if err != nil {
		return err
	}
	debugLog = f

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Configure(debugLog, level)

	LogInfo("Logger initialized, log file: %s", logPath)
	return nil
}

// openRotated opens path for appending, moving it aside first when it grew past 10MB.
func openRotated(logDir, path string) (*os.File, error) {
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		backupPath := filepath.Join(logDir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(path, backupPath)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// Configure points the logger at w. Tests use it to capture output.
func Configure(w io.Writer, level logrus.Level) {
	std.SetOutput(w)
	std.SetLevel(level)
	std.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})
}

// Close closes the debug log file
func Close() {
	if debugLog != nil {
		_ = debugLog.Close()
		debugLog = nil
	}
}

// LogInfo logs an info message
func LogInfo(format string, args ...any) {
	std.Infof(format, args...)
}

// LogDebug logs a debug message
func LogDebug(format string, args ...any) {
	std.Debugf(format, args...)
}

// LogError logs an error message
func LogError(format string, args ...any) {
	std.Errorf(format, args...)
}

// LogPanic logs a panic with stack trace
func LogPanic(r any) {
	std.WithField("stack", string(debug.Stack())).Errorf("panic: %v", r)
}

// WithSession returns an entry tagged with the session id.
func WithSession(id string) *logrus.Entry {
	return std.WithField("session", id)
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
