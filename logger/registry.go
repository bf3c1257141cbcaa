package logger

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"library/config"
	"library/models"
)

const (
	requestsLogFile = "requests.log"
	booksLogFile    = "books.log"
)

// Registry maps logger names to their loggers and owns any opened log files
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*NamedLogger
	files   []*os.File
}

// NewRegistry creates the request and books loggers. The request logger writes to
// stdout and <log dir>/requests.log, the books logger to <log dir>/books.log only.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	if err := os.MkdirAll(cfg.Log.Dir, 0o755); err != nil {
		return nil, err
	}

	requestsFile, err := openLogFile(filepath.Join(cfg.Log.Dir, requestsLogFile))
	if err != nil {
		return nil, err
	}

	booksFile, err := openLogFile(filepath.Join(cfg.Log.Dir, booksLogFile))
	if err != nil {
		requestsFile.Close()
		return nil, err
	}

	r := newRegistry(cfg, map[string]io.Writer{
		RequestLoggerName: zerolog.MultiLevelWriter(
			formatOutput(cfg, os.Stdout),
			formatOutput(cfg, requestsFile),
		),
		BooksLoggerName: formatOutput(cfg, booksFile),
	})
	r.files = []*os.File{requestsFile, booksFile}

	return r, nil
}

// NewRegistryWithOutput creates a registry where every logger writes to output
func NewRegistryWithOutput(cfg *config.Config, output io.Writer) *Registry {
	w := formatOutput(cfg, output)

	return newRegistry(cfg, map[string]io.Writer{
		RequestLoggerName: w,
		BooksLoggerName:   w,
	})
}

func newRegistry(cfg *config.Config, outputs map[string]io.Writer) *Registry {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	level, ok := ParseLevel(cfg.Log.Level)
	if !ok {
		level = zerolog.InfoLevel
	}

	r := &Registry{loggers: make(map[string]*NamedLogger, len(outputs))}
	for name, output := range outputs {
		r.loggers[name] = newNamedLogger(name, output, level)
	}

	return r
}

func formatOutput(cfg *config.Config, out io.Writer) io.Writer {
	if cfg.Log.Format == JSONFormat {
		return out
	}

	return newConsoleWriter(out)
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Get returns the named logger
func (r *Registry) Get(name string) (Logger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.loggers[name]
	if !ok {
		return nil, models.LoggerNotFoundError(name)
	}

	return l, nil
}

// MustGet is Get for the names this package defines
func (r *Registry) MustGet(name string) Logger {
	l, err := r.Get(name)
	if err != nil {
		panic(err)
	}

	return l
}

// Requests returns the logger used for request arrival and duration lines
func (r *Registry) Requests() Logger {
	return r.MustGet(RequestLoggerName)
}

// Books returns the logger used for inventory operations
func (r *Registry) Books() Logger {
	return r.MustGet(BooksLoggerName)
}

// LevelOf reports the current level name of a logger
func (r *Registry) LevelOf(name string) (string, error) {
	l, err := r.Get(name)
	if err != nil {
		return "", err
	}

	return LevelName(l.Level()), nil
}

// SetLevel changes a logger's level and returns the applied level name.
// An unknown logger wins over an unknown level.
func (r *Registry) SetLevel(name, levelName string) (string, error) {
	l, err := r.Get(name)
	if err != nil {
		return "", err
	}

	level, ok := ParseLevel(levelName)
	if !ok {
		return "", models.InvalidLevelError(levelName)
	}

	l.SetLevel(level)

	return LevelName(level), nil
}

// Names lists the registered loggers in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Close closes the log files opened by NewRegistry
func (r *Registry) Close() error {
	var errs []error
	for _, f := range r.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.files = nil

	return errors.Join(errs...)
}
