package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger records method, path, status and latency for every
// request. Swagger asset requests are skipped to keep the log readable.
func (h *Handler) requestLogger(c *gin.Context) {
	if h.log == nil || c.FullPath() == "/swagger/*any" {
		c.Next()
		return
	}

	start := time.Now()
	c.Next()

	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
}
