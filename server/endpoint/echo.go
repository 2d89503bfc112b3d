// Package endpoint contains responder's route handlers.
package endpoint

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jackwilsdon/responder/errors"
	"github.com/jackwilsdon/responder/logkit"
)

// Echo answers every request with the status code named by the path
// parameter. It holds its own logger, resolved from its type name.
type Echo struct {
	log *logkit.Logger
}

// NewEcho creates the echo handler with a logger from logs.
func NewEcho(logs *logkit.Registry) *Echo {
	e := &Echo{}
	e.log = logs.LoggerForSelf(e)
	return e
}

// Register mounts the echo routes on the engine: the code route plus
// the bare root, which reports the missing parameter.
func (e *Echo) Register(engine *gin.Engine) {
	engine.GET("/:code", e.Handle)
	engine.GET("/", e.Handle)
}

// Handle resolves the code parameter and responds with it as the
// status code and an empty body, or 400 with a plain-text explanation
// when the parameter is missing, non-integer, negative, or outside
// the writable status range.
func (e *Echo) Handle(c *gin.Context) {
	code, err := parseCode(c.Param("code"))
	if err != nil {
		appErr, ok := apperrors.AsAppError(err)
		if !ok {
			appErr = apperrors.Internal(err)
		}
		e.log.Warnf("rejected code %q: %s", c.Param("code"), appErr.Message)
		c.String(appErr.HTTPStatus, appErr.Message)
		return
	}

	e.log.Debugf("echoing status %d", code)
	c.Status(code)
}

// parseCode validates the raw path parameter.
func parseCode(raw string) (int, error) {
	if raw == "" {
		return 0, apperrors.Validation("code is not an integer")
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Validation("code is not an integer").WithCause(err)
	}
	if code < 0 {
		return 0, apperrors.Validation("code must be greater than zero")
	}
	// net/http panics writing headers outside 100-999. Zero is kept:
	// gin ignores a zero status and the response defaults to 200.
	if code != 0 && (code < 100 || code > 999) {
		return 0, apperrors.Validation("code is not a valid http status")
	}
	return code, nil
}
