package logkit

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

// framedError carries pre-rendered stack frames alongside a message.
type framedError struct {
	msg    string
	frames []string
}

func (e *framedError) Error() string         { return e.msg }
func (e *framedError) StackFrames() []string { return e.frames }

func TestLogErrorOrdering(t *testing.T) {
	var buf bytes.Buffer
	reg := NewWithWriter(&buf, Config{Level: "debug", NoColor: true})
	log := reg.LoggerFor("worker")

	err := &framedError{msg: "boom", frames: []string{"a:1", "b:2"}}
	if werr := log.LogError(err); werr != nil {
		t.Fatalf("unexpected write error: %v", werr)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	wantSuffixes := []string{"[worker]: boom", "[worker]: a:1", "[worker]: b:2"}
	for i, suffix := range wantSuffixes {
		if !strings.HasSuffix(lines[i], suffix) {
			t.Errorf("line %d = %q, expected suffix %q", i, lines[i], suffix)
		}
		if !strings.Contains(lines[i], "[ERROR]") {
			t.Errorf("line %d must carry ERROR severity: %q", i, lines[i])
		}
	}
}

func TestLogErrorWithoutFrames(t *testing.T) {
	var buf bytes.Buffer
	reg := NewWithWriter(&buf, Config{Level: "debug", NoColor: true})
	log := reg.LoggerFor("worker")

	if err := log.LogError(fmt.Errorf("plain failure")); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("expected a single message line, got %d: %q", got, buf.String())
	}
}

func TestLogErrorPkgErrorsStack(t *testing.T) {
	var buf bytes.Buffer
	reg := NewWithWriter(&buf, Config{Level: "debug", NoColor: true})
	log := reg.LoggerFor("worker")

	if err := log.LogError(pkgerrors.New("wrapped failure")); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected message plus frame lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "wrapped failure") {
		t.Errorf("first line must be the message: %q", lines[0])
	}
	// The innermost frame is this test file.
	if !strings.Contains(lines[1], "errdump_test.go") {
		t.Errorf("expected innermost frame first, got %q", lines[1])
	}
}

func TestLogErrorWriteFailure(t *testing.T) {
	reg := NewWithWriter(failingWriter{}, Config{Level: "debug"})
	log := reg.LoggerFor("worker")

	err := &framedError{msg: "boom", frames: []string{"a:1"}}
	if werr := log.LogError(err); werr == nil {
		t.Error("sink write failure must propagate from LogError")
	}
}
