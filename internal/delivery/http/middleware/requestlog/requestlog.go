package http_requestlog_middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// New tags every request with the datastore backend currently in use,
// so logs from a failed-over instance are recognizable at a glance.
func New(dbBackend string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Info("api request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"db", dbBackend,
		)
		c.Next()
	}
}
