package logkit

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestFormatShape(t *testing.T) {
	f := &Formatter{}
	ts := time.Date(2024, 5, 1, 1, 2, 3, 0, time.UTC)

	line := f.Format("ERROR", ts, "Foo", "bar")

	wantSev := severityColor("ERROR").Colorize("ERROR")
	wantProg := ColorFor("Foo").Colorize("Foo")
	want := "01:02:03 [" + wantSev + "] [" + wantProg + "]: bar\n"
	if line != want {
		t.Errorf("Format() = %q, expected %q", line, want)
	}
}

func TestFormatZeroPadding(t *testing.T) {
	f := &Formatter{NoColor: true}
	ts := time.Date(2024, 5, 1, 1, 2, 3, 0, time.UTC)

	line := f.Format("INFO", ts, "Foo", "bar")
	if !strings.HasPrefix(line, "01:02:03 ") {
		t.Errorf("expected zero-padded time prefix, got %q", line)
	}
}

func TestFormatTrailingNewline(t *testing.T) {
	f := &Formatter{NoColor: true}
	line := f.Format("INFO", time.Now(), "Foo", "bar")

	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("line must end with a newline: %q", line)
	}
	if strings.HasSuffix(line, "\n\n") {
		t.Errorf("line must end with exactly one newline: %q", line)
	}
}

func TestFormatNoColor(t *testing.T) {
	f := &Formatter{NoColor: true}
	ts := time.Date(2024, 5, 1, 13, 14, 15, 0, time.UTC)

	line := f.Format("WARN", ts, "Foo", "bar")
	if line != "13:14:15 [WARN] [Foo]: bar\n" {
		t.Errorf("unexpected NoColor line: %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Errorf("NoColor line contains escape sequences: %q", line)
	}
}

func TestFormatSeverityStability(t *testing.T) {
	f := &Formatter{}
	ts := time.Now()

	errLine := f.Format("ERROR", ts, "Foo", "x")
	fatalLine := f.Format("FATAL", ts, "Foo", "x")
	if !strings.Contains(errLine, severityColor("ERROR").Colorize("ERROR")) {
		t.Errorf("ERROR not rendered with its severity color: %q", errLine)
	}
	if !strings.Contains(fatalLine, severityColor("ERROR").Colorize("FATAL")) {
		t.Errorf("FATAL must use the same color as ERROR: %q", fatalLine)
	}

	// Unrecognized severities stay uncolored.
	traceLine := f.Format("TRACE", ts, "Foo", "x")
	if !strings.Contains(traceLine, "[TRACE]") {
		t.Errorf("unrecognized severity should render plain, got %q", traceLine)
	}
}

func TestFormatMultilineMessageVerbatim(t *testing.T) {
	f := &Formatter{NoColor: true}
	line := f.Format("INFO", time.Now(), "Foo", "first\nsecond")

	// Embedded newlines pass through untouched; only the terminator
	// is added.
	if !strings.HasSuffix(line, ": first\nsecond\n") {
		t.Errorf("message not emitted verbatim: %q", line)
	}
}

func TestFormatLineRegexp(t *testing.T) {
	f := &Formatter{NoColor: true}
	re := regexp.MustCompile(`^\d{2}:\d{2}:\d{2} \[[A-Z]+\] \[[^\]]+\]: .*\n$`)

	line := f.Format("DEBUG", time.Now(), "EchoService", "handled request")
	if !re.MatchString(line) {
		t.Errorf("line does not match expected shape: %q", line)
	}
}
