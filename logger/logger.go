package logger

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Logger names exposed through the log level endpoints
const (
	RequestLoggerName = "request-logger"
	BooksLoggerName   = "books-logger"
)

// Field names shared by every named logger
const (
	RequestField   = "request"
	RequestIdField = "request_id"
)

// Logger configuration constants
const (
	ConsoleFormat = "console"
	JSONFormat    = "json"

	TimeFormat = "02-01-2006 15:04:05.000"
)

var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"critical": zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
}

// Logger is a named logger whose level can change while the service runs
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	Name() string
	Level() zerolog.Level
	SetLevel(level zerolog.Level)
}

// NamedLogger represents a logger implementation using zerolog
type NamedLogger struct {
	name  string
	log   zerolog.Logger
	level atomic.Int32
}

func newNamedLogger(name string, output io.Writer, level zerolog.Level) *NamedLogger {
	l := &NamedLogger{
		name: name,
		log:  zerolog.New(output).With().Timestamp().Logger(),
	}
	l.level.Store(int32(level))

	return l
}

func (l *NamedLogger) current() *zerolog.Logger {
	lg := l.log.Level(l.Level())
	return &lg
}

// Debug returns a debug level Event for logging debug messages
func (l *NamedLogger) Debug() *zerolog.Event {
	return l.current().Debug()
}

// Info returns an info level Event for logging informational messages
func (l *NamedLogger) Info() *zerolog.Event {
	return l.current().Info()
}

// Warn returns a warn level Event for logging warning messages
func (l *NamedLogger) Warn() *zerolog.Event {
	return l.current().Warn()
}

// Error returns an error level Event for logging error messages
func (l *NamedLogger) Error() *zerolog.Event {
	return l.current().Error()
}

func (l *NamedLogger) Name() string {
	return l.name
}

func (l *NamedLogger) Level() zerolog.Level {
	return zerolog.Level(l.level.Load())
}

func (l *NamedLogger) SetLevel(level zerolog.Level) {
	l.level.Store(int32(level))
}

// ParseLevel converts a level name to a zerolog.Level, case-insensitively.
// WARNING and CRITICAL are accepted as aliases of WARN and FATAL.
func ParseLevel(name string) (zerolog.Level, bool) {
	level, ok := levels[strings.ToLower(strings.TrimSpace(name))]
	return level, ok
}

// LevelName renders a level the way the log level endpoints report it
func LevelName(level zerolog.Level) string {
	return strings.ToUpper(level.String())
}

// newConsoleWriter renders "timestamp LEVEL: message | request #N"
func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       true,
		TimeFormat:    TimeFormat,
		FieldsExclude: []string{RequestIdField},
		FormatLevel: func(i interface{}) string {
			if s, ok := i.(string); ok {
				return strings.ToUpper(s) + ":"
			}

			return "???:"
		},
		FormatFieldName: func(i interface{}) string {
			if s, ok := i.(string); ok && s == RequestField {
				return "| request #"
			}

			return fmt.Sprintf("%s=", i)
		},
		FormatFieldValue: func(i interface{}) string {
			return fmt.Sprintf("%v", i)
		},
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
	}
}
