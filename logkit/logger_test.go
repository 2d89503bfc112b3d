package logkit

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
)

// failingWriter always fails, standing in for an unavailable sink.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("sink gone")
}

func TestLoggerEmitsOneLine(t *testing.T) {
	var buf bytes.Buffer
	reg := NewWithWriter(&buf, Config{Level: "debug", NoColor: true})
	log := reg.LoggerFor("worker")

	if err := log.Info("hello"); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	re := regexp.MustCompile(`^\d{2}:\d{2}:\d{2} \[INFO\] \[worker\]: hello\n$`)
	if !re.MatchString(buf.String()) {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestLoggerLevelGate(t *testing.T) {
	var buf bytes.Buffer
	reg := NewWithWriter(&buf, Config{Level: "warn", NoColor: true})
	log := reg.LoggerFor("worker")

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")
	log.Error("kept")
	log.Fatal("kept")

	if got := strings.Count(buf.String(), "\n"); got != 3 {
		t.Errorf("expected 3 lines, got %d: %q", got, buf.String())
	}
	if strings.Contains(buf.String(), "dropped") {
		t.Errorf("suppressed records reached the sink: %q", buf.String())
	}
}

func TestLoggerFormattedVariants(t *testing.T) {
	var buf bytes.Buffer
	reg := NewWithWriter(&buf, Config{Level: "debug", NoColor: true})
	log := reg.LoggerFor("worker")

	log.Infof("answer=%d", 42)
	if !strings.Contains(buf.String(), "[worker]: answer=42\n") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestLoggerWriteErrorPropagates(t *testing.T) {
	reg := NewWithWriter(failingWriter{}, Config{Level: "debug"})
	log := reg.LoggerFor("worker")

	if err := log.Info("hello"); err == nil {
		t.Error("sink write failure must propagate to the caller")
	}
	// Suppressed records never touch the sink, so no error either.
	reg2 := NewWithWriter(failingWriter{}, Config{Level: "error"})
	if err := reg2.LoggerFor("worker").Debug("x"); err != nil {
		t.Errorf("filtered record should not write: %v", err)
	}
}

func TestLoggerConcurrentWritesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	reg := NewWithWriter(&buf, Config{Level: "debug", NoColor: true})

	const goroutines = 8
	const perGoroutine = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			log := reg.LoggerFor(fmt.Sprintf("g%d", g))
			for i := 0; i < perGoroutine; i++ {
				log.Infof("line %d", i)
			}
		}(g)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != goroutines*perGoroutine {
		t.Fatalf("expected %d lines, got %d", goroutines*perGoroutine, len(lines))
	}
	re := regexp.MustCompile(`^\d{2}:\d{2}:\d{2} \[INFO\] \[g\d\]: line \d+$`)
	for _, line := range lines {
		if !re.MatchString(line) {
			t.Fatalf("interleaved or malformed line: %q", line)
		}
	}
}

func TestLoggersOnOneRegistryShareSink(t *testing.T) {
	var buf bytes.Buffer
	reg := NewWithWriter(&buf, Config{Level: "debug", NoColor: true})

	reg.LoggerFor("a").Info("from a")
	reg.LoggerFor("b").Info("from b")

	out := buf.String()
	if !strings.Contains(out, "[a]: from a") || !strings.Contains(out, "[b]: from b") {
		t.Errorf("expected both loggers to reach the shared sink: %q", out)
	}
}
