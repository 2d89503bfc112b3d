package logkit

import (
	"time"
)

// Formatter renders one log record as one terminated line:
//
//	HH:MM:SS [SEVERITY] [progname]: message\n
//
// The severity is colorized from the fixed severity table and the
// progname via ColorFor. A Formatter is stateless and safe for
// concurrent use; it only produces the string, writing is the
// Logger's job.
type Formatter struct {
	// NoColor suppresses all escape sequences, keeping the line
	// shape otherwise identical.
	NoColor bool
}

// Format renders a single record. The timestamp is rendered as local
// wall-clock time without a date. The message is emitted verbatim:
// embedded newlines are not escaped, so a multi-line message produces
// visually joined output. Exactly one newline terminates the line.
func (f *Formatter) Format(severity string, t time.Time, progname, message string) string {
	sev, prog := severity, progname
	if !f.NoColor {
		sev = severityColor(severity).Colorize(severity)
		prog = ColorFor(progname).Colorize(progname)
	}
	return t.Format("15:04:05") + " [" + sev + "] [" + prog + "]: " + message + "\n"
}
