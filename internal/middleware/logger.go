package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/weatherpulse/internal/logger"
)

// RequestLogger logs one structured line per request after it completes.
//
// Fields: request_id, method, path (route template when matched), status,
// latency_ms, client_ip, bytes. 5xx responses log at error level and 4xx at warn.
//
// Example log output:
//
//	{"level":"info","service":"weatherpulse","request_id":"...","method":"GET","path":"/api/v1/reports/summary","status":200,"latency_ms":3,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()

		ev := logger.L().Info()
		switch {
		case status >= 500:
			ev = logger.L().Error()
		case status >= 400:
			ev = logger.L().Warn()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Str("request_id", RequestIDFrom(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Int("bytes", c.Writer.Size()).
			Msg("http_request")
	}
}
