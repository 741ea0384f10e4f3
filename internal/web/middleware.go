package web

import (
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/st-little/anshin-meshi/internal/logging"
)

// requestLogger writes one structured entry per request to the log file.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := logging.Logger().WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"bytes":    c.Writer.Size(),
			"encoding": c.Writer.Header().Get("Content-Encoding"),
			"elapsed":  time.Since(start).String(),
		})
		if len(c.Errors) > 0 {
			entry.WithError(c.Errors.Last()).Error("request")
			return
		}
		entry.Info("request")
	}
}
