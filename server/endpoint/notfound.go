package endpoint

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/jackwilsdon/responder/errors"
)

// NoRoute returns the fallback handler for requests matching no route.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		appErr := apperrors.NotFound("route")
		c.String(appErr.HTTPStatus, appErr.Message)
	}
}
