package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog with a small key/value API. A nil *Logger is valid
// and discards everything, so components can take one optionally.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger}, nil
}

// Nop returns a logger that drops every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger that always writes the supplied key/value pairs.
func (l *Logger) With(fields ...any) *Logger {
	if l == nil {
		return nil
	}

	ctx := l.base.With()
	for key, value := range pairs(fields) {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{base: ctx.Logger()}
}

// Component tags every entry with the emitting component name.
func (l *Logger) Component(name string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("component", name).Logger()}
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string, fields ...any) {
	if l == nil {
		return
	}
	write(l.base.Debug(), msg, fields)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string, fields ...any) {
	if l == nil {
		return
	}
	write(l.base.Info(), msg, fields)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string, fields ...any) {
	if l == nil {
		return
	}
	write(l.base.Warn(), msg, fields)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string, fields ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	write(event, msg, fields)
}

func write(event *zerolog.Event, msg string, fields []any) {
	if event == nil {
		return
	}
	for key, value := range pairs(fields) {
		event = event.Interface(key, value)
	}
	event.Msg(msg)
}

// pairs walks fields as key/value pairs. A dangling key is reported under
// "extra" rather than dropped.
func pairs(fields []any) func(yield func(string, any) bool) {
	return func(yield func(string, any) bool) {
		for i := 0; i < len(fields); i += 2 {
			if i+1 >= len(fields) {
				yield("extra", fields[i])
				return
			}
			if !yield(fmt.Sprint(fields[i]), fields[i+1]) {
				return
			}
		}
	}
}
