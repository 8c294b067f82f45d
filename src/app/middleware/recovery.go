package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"remixjokes/src/app/http/response"
	"remixjokes/src/infra/logger"
)

// Recovery turns a panic into the same generic 500 a failed handler writes,
// and logs it with the stack. Register it first so it also covers the other middleware.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			requestID := GetRequestID(c)
			logger.WithRequestID(log, requestID).Error("panic recovered",
				"panic", rec,
				"method", c.Request.Method,
				"route", routeOf(c),
				"stack", string(debug.Stack()),
			)

			response.InternalError(c, requestID)
			c.Abort()
		}()

		c.Next()
	}
}
