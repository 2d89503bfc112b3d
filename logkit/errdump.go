package logkit

import (
	"fmt"

	"github.com/pkg/errors"
)

// framer is satisfied by errors that carry pre-rendered stack frame
// descriptions.
type framer interface {
	StackFrames() []string
}

// stackTracer matches errors produced by github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackFrames extracts stack frame descriptions from err, innermost
// frame first, or nil if err carries no stack.
func stackFrames(err error) []string {
	if f, ok := err.(framer); ok {
		return f.StackFrames()
	}
	if st, ok := err.(stackTracer); ok {
		trace := st.StackTrace()
		frames := make([]string, 0, len(trace))
		for _, fr := range trace {
			frames = append(frames, fmt.Sprintf("%v", fr))
		}
		return frames
	}
	return nil
}

// LogError emits one ERROR line for err's message, then one ERROR line
// per stack frame in the order the stack was captured (innermost
// first). Frames are taken from a StackFrames() []string method or a
// pkg/errors stack trace; errors without either produce only the
// message line. Frames are never aggregated, truncated, or
// deduplicated. The first failed sink write aborts the dump and is
// returned.
func (l *Logger) LogError(err error) error {
	if werr := l.Error(err.Error()); werr != nil {
		return werr
	}
	for _, frame := range stackFrames(err) {
		if werr := l.Error(frame); werr != nil {
			return werr
		}
	}
	return nil
}
