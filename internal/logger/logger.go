package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with application-specific helpers
type Logger struct {
	*slog.Logger
}

// LogLevel represents the available log levels
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Config holds logger configuration
type Config struct {
	Level  LogLevel
	Output io.Writer
	// Verbose forces debug-level output regardless of Level
	Verbose bool
}

// New creates a logger writing "2006/01/02 15:04:05 [LEVEL] msg key=value"
// lines to the configured output (stderr by default)
func New(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	level := parseLevel(config.Level)
	if config.Verbose {
		level = slog.LevelDebug
	}

	handler := &consoleHandler{
		output: config.Output,
		level:  level,
	}

	return &Logger{Logger: slog.New(handler)}
}

func parseLevel(level LogLevel) slog.Level {
	switch strings.ToLower(string(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Infof provides printf-style logging at info level
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

// Debugf provides printf-style logging at debug level
func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

// Warnf provides printf-style logging at warn level
func (l *Logger) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

// Errorf provides printf-style logging at error level
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}
