package middleware

import (
	"io"
	"net/http"

	"miniforum/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts a handler panic into the opaque JSON error document.
// Stack traces stay in the server log and never reach the response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		logger.Error.Printf("panic recovered: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
	})
}
