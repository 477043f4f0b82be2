package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kontroll-dev/kontroll/internal/logging"
)

// requestIDHeader correlates CLI debug output with daemon logs
const requestIDHeader = "X-Request-ID"

// requestIDMiddleware echoes the caller's request id, generating one when absent
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// loggingMiddleware provides request logging
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		// Log using our custom logger
		logging.Info("[%s] \"%s %s %s %d %s \"%s\" %s\" request=%s",
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
			param.Request.Header.Get(requestIDHeader),
		)
		return ""
	})
}
