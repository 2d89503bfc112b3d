package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jackwilsdon/responder/version"
)

// Version returns a handler reporting build version information.
func Version() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	}
}
