package logkit

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// sink serializes writes to a shared output stream so concurrent log
// calls never interleave mid-line. Every Logger created by one
// Registry shares the same sink.
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) writeLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line)
	return err
}

// Logger is a named handle bound to a registry's sink and formatter.
// Loggers are created by Registry.LoggerFor, live for the process
// lifetime, and are safe for concurrent use.
type Logger struct {
	progname  string
	level     Level
	formatter *Formatter
	sink      *sink
}

// Progname returns the component name this logger was registered under.
func (l *Logger) Progname() string {
	return l.progname
}

// Log emits one formatted line at the given level. Records below the
// logger's level are dropped. A failed write to the sink is returned
// to the caller; it is never retried or swallowed.
func (l *Logger) Log(level Level, msg string) error {
	if level < l.level {
		return nil
	}
	return l.sink.writeLine(l.formatter.Format(level.String(), time.Now(), l.progname, msg))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) error { return l.Log(DebugLevel, msg) }

// Info logs an info message.
func (l *Logger) Info(msg string) error { return l.Log(InfoLevel, msg) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string) error { return l.Log(WarnLevel, msg) }

// Error logs an error message.
func (l *Logger) Error(msg string) error { return l.Log(ErrorLevel, msg) }

// Fatal logs a fatal message. It does not terminate the process:
// FATAL is a severity here, not an exit path.
func (l *Logger) Fatal(msg string) error { return l.Log(FatalLevel, msg) }

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) error {
	if DebugLevel < l.level {
		return nil
	}
	return l.Log(DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...any) error {
	if InfoLevel < l.level {
		return nil
	}
	return l.Log(InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) error {
	if WarnLevel < l.level {
		return nil
	}
	return l.Log(WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...any) error {
	if ErrorLevel < l.level {
		return nil
	}
	return l.Log(ErrorLevel, fmt.Sprintf(format, args...))
}

// Fatalf logs a formatted fatal message.
func (l *Logger) Fatalf(format string, args ...any) error {
	return l.Log(FatalLevel, fmt.Sprintf(format, args...))
}
