package middleware

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// ErrorLogger logs errors that handlers attached to the context with
// c.Error. Response bodies never carry them.
func ErrorLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			logger.Error("❌ request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"status", c.Writer.Status(),
				"err", e.Err)
		}
	}
}
