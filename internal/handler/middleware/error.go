package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"salon-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the envelope of the last public error when a handler recorded one
// without writing a body. Handlers that abort themselves pass through untouched.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if public := c.Errors.ByType(gin.ErrorTypePublic).Last(); public != nil {
			if resp, ok := public.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.Internal())
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
		}
	}
}

// Recovery turns a panic into a 500 envelope. It must be the outermost middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Error("panic while serving request",
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()))
			if c.Writer.Written() {
				c.Abort()
				return
			}
			resp := httperr.Internal()
			c.AbortWithStatusJSON(resp.Status, resp)
		}()
		c.Next()
	}
}
