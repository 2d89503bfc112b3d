package middleware

import (
	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"

	apperrors "github.com/jackwilsdon/responder/errors"
	"github.com/jackwilsdon/responder/logkit"
)

// Recovery returns a middleware that recovers from handler panics,
// logs the panic with its stack frames, and answers 500.
func Recovery(log *logkit.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				// The wrapped error captures the stack at the
				// panic's recovery point; LogError emits one
				// ERROR line per frame.
				err := pkgerrors.Errorf("panic handling %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				log.LogError(err)
				appErr := apperrors.Internal(err)
				c.String(appErr.HTTPStatus, appErr.Message)
				c.Abort()
			}
		}()
		c.Next()
	}
}
