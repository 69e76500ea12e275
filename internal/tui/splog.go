package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

const (
	warnPrefix  = "⚠️  "
	errorPrefix = "❌ "
	tipPrefix   = "💡 "
)

// Splog prints command output to the console. When a log file is configured
// every record, including debug output hidden from the console, is mirrored
// into it with a timestamp.
type Splog struct {
	out     io.Writer
	console *consoleHandler
	logger  *slog.Logger
	file    *slog.Logger
	closer  io.Closer
}

// consoleHandler prints bare messages. Records are dropped while quiet is set.
type consoleHandler struct {
	w     io.Writer
	level slog.Level
	quiet atomic.Bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level && !h.quiet.Load()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.w, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *consoleHandler) WithGroup(string) slog.Handler      { return h }

// fanout delivers each record to every handler that accepts it
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, record.Level) {
			errs = append(errs, h.Handle(ctx, record.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// NewSplog creates a console-only splog on stdout
func NewSplog() *Splog {
	splog, _ := NewSplogWithWriter(os.Stdout, "")
	return splog
}

// NewSplogWithConfig creates a splog on stdout that also writes to logFilePath
func NewSplogWithConfig(logFilePath string) (*Splog, error) {
	return NewSplogWithWriter(os.Stdout, logFilePath)
}

// NewSplogWithWriter creates a splog that prints to w. An empty logFilePath
// disables the file log. Debug messages reach the console only when DEBUG
// is set.
func NewSplogWithWriter(w io.Writer, logFilePath string) (*Splog, error) {
	console := &consoleHandler{w: w, level: slog.LevelInfo}
	if os.Getenv("DEBUG") != "" {
		console.level = slog.LevelDebug
	}

	s := &Splog{out: w, console: console}
	handlers := fanout{console}

	if logFilePath != "" {
		logFile, err := openLogFile(logFilePath, RotationFromEnv())
		if err != nil {
			return nil, err
		}
		fileHandler := slog.NewTextHandler(logFile, &slog.HandlerOptions{
			Level:       slog.LevelDebug,
			ReplaceAttr: formatFileTime,
		}).WithAttrs([]slog.Attr{slog.Int("pid", os.Getpid())})

		handlers = append(handlers, fileHandler)
		s.file = slog.New(fileHandler)
		s.closer = logFile
	}

	s.logger = slog.New(handlers)
	return s, nil
}

func formatFileTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))
	}
	return a
}

// SetQuiet suppresses console output while set. The file log keeps recording.
func (s *Splog) SetQuiet(quiet bool) {
	s.console.quiet.Store(quiet)
}

// IsQuiet reports whether console output is suppressed
func (s *Splog) IsQuiet() bool {
	return s.console.quiet.Load()
}

func (s *Splog) emit(level slog.Level, prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, prefix+msg)
}

// Info writes a message
func (s *Splog) Info(format string, args ...interface{}) {
	s.emit(slog.LevelInfo, "", format, args)
}

// Warn writes a message with a warning marker
func (s *Splog) Warn(format string, args ...interface{}) {
	s.emit(slog.LevelWarn, warnPrefix, format, args)
}

// Error writes a message with an error marker
func (s *Splog) Error(format string, args ...interface{}) {
	s.emit(slog.LevelError, errorPrefix, format, args)
}

// Tip writes a hint for the next step
func (s *Splog) Tip(format string, args ...interface{}) {
	s.emit(slog.LevelInfo, tipPrefix, format, args)
}

// Debug writes a message shown on the console only in debug mode
func (s *Splog) Debug(format string, args ...interface{}) {
	s.emit(slog.LevelDebug, "", format, args)
}

// Trace records a message in the log file only
func (s *Splog) Trace(format string, args ...interface{}) {
	if s.file == nil {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.file.Debug(msg)
}

// Newline writes an empty line to the console
func (s *Splog) Newline() {
	if s.IsQuiet() {
		return
	}
	_, _ = fmt.Fprintln(s.out)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
