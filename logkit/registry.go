package logkit

import (
	"io"
	"os"
	"reflect"
	"strings"
	"sync"
)

// Registry is the single source of truth mapping component names to
// Logger instances. Loggers are created on first request and cached
// for the process lifetime; there is no eviction, since the set of
// component names is small and bounded (one per architectural
// component, not per object).
//
// A Registry is an explicit value: construct one and inject it into
// every component that needs logging rather than reaching for a
// shared static. The package-level Default registry exists for
// callers without an injected one.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger

	sink      *sink
	formatter *Formatter
	level     Level
}

// New creates a registry writing to the output stream named by cfg
// (stderr by default).
func New(cfg Config) *Registry {
	cfg.ApplyDefaults()
	return NewWithWriter(outputWriter(cfg.Output), cfg)
}

// NewWithWriter creates a registry writing to w, ignoring cfg.Output.
// Useful for tests and for embedding the facility behind a custom
// sink.
func NewWithWriter(w io.Writer, cfg Config) *Registry {
	cfg.ApplyDefaults()
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = InfoLevel
	}
	return &Registry{
		loggers:   make(map[string]*Logger),
		sink:      &sink{w: w},
		formatter: &Formatter{NoColor: cfg.NoColor},
		level:     level,
	}
}

// LoggerFor returns the logger registered under name, creating and
// caching it on first use. Calls are idempotent: the same name always
// yields the identical instance, and concurrent first calls for one
// name still create exactly one Logger.
func (r *Registry) LoggerFor(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[name]; ok {
		return l
	}
	l := &Logger{
		progname:  name,
		level:     r.level,
		formatter: r.formatter,
		sink:      r.sink,
	}
	r.loggers[name] = l
	return l
}

// Named lets a component override the logger name derived from its
// type, for example to group related types under one log stream.
type Named interface {
	LoggerName() string
}

// LoggerForSelf returns the logger for a component value. If the
// component implements Named the override wins; otherwise the
// component's concrete type name is used, so every instance of a type
// shares one logger.
func (r *Registry) LoggerForSelf(component any) *Logger {
	return r.LoggerFor(prognameOf(component))
}

// prognameOf resolves the registry key for a component value.
func prognameOf(component any) string {
	if n, ok := component.(Named); ok {
		return n.LoggerName()
	}
	t := reflect.TypeOf(component)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}
	if name := t.Name(); name != "" {
		return name
	}
	// Unnamed types (funcs, maps, anonymous structs) stringify with
	// package paths and punctuation; strip to something readable.
	return strings.ReplaceAll(t.String(), " ", "")
}

func outputWriter(output string) *os.File {
	if output == "stdout" {
		return os.Stdout
	}
	return os.Stderr
}

// --- Default registry ---

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// DefaultRegistry returns the process-wide default registry, creating
// one with default configuration on first use.
func DefaultRegistry() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = New(Config{})
	}
	return defaultRegistry
}

// SetDefault replaces the process-wide default registry. Call early in
// startup, before components grab loggers from it.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// For returns a named logger from the default registry.
func For(name string) *Logger {
	return DefaultRegistry().LoggerFor(name)
}
