package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// consoleHandler implements slog.Handler with a compact console format:
// "2025/09/18 11:55:11 [INFO] loaded catalog courses=12"
type consoleHandler struct {
	output io.Writer
	level  slog.Level
	attrs  []slog.Attr
}

// Enabled reports whether the handler logs at the given level
func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes one log record
func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder

	if !record.Time.IsZero() {
		b.WriteString(record.Time.Format("2006/01/02 15:04:05"))
		b.WriteByte(' ')
	}

	b.WriteByte('[')
	b.WriteString(levelString(record.Level))
	b.WriteString("] ")
	b.WriteString(record.Message)

	for _, attr := range h.attrs {
		writeAttr(&b, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, attr)
		return true
	})

	b.WriteByte('\n')
	_, err := io.WriteString(h.output, b.String())
	return err
}

// WithAttrs returns a handler that prepends the given attributes to every record
func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &consoleHandler{
		output: h.output,
		level:  h.level,
		attrs:  merged,
	}
}

// WithGroup is accepted but not rendered; the console format stays flat
func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

func writeAttr(b *strings.Builder, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s=%v", attr.Key, attr.Value)
}

func levelString(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
