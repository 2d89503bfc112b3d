package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jackwilsdon/responder/logkit"
	"github.com/jackwilsdon/responder/observability"
)

// RequestLogger returns a middleware that emits one log line per
// request with method, path, status, and duration. Severity follows
// the status class. metrics may be nil; when set, request counters
// and durations are recorded as well.
func RequestLogger(log *logkit.Logger, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		if metrics != nil {
			metrics.RecordRequestStart(c.Request.Context())
		}

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		level := logkit.InfoLevel
		switch {
		case status >= 500:
			level = logkit.ErrorLevel
		case status >= 400:
			level = logkit.WarnLevel
		}

		log.Log(level, requestLine(c.Request.Method, path, status, duration, c.GetString("request_id")))

		if metrics != nil {
			metrics.RecordRequestEnd(c.Request.Context(), c.Request.Method, c.FullPath(), status, duration)
			if status >= 500 {
				metrics.RecordError(c.Request.Context(), "http")
			}
		}
	}
}

func requestLine(method, path string, status int, duration time.Duration, requestID string) string {
	line := fmt.Sprintf("%s %s -> %d (%s)", method, path, status, duration.Round(time.Microsecond))
	if requestID != "" {
		line += " id=" + requestID
	}
	return line
}
