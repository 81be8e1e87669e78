package observability

import (
	"context"

	"github.com/gin-gonic/gin"

	"go-appmanager/internal/logging"
)

// LoggerContextMiddleware 将 trace_id / user_id 注入 logger，并放入请求 context
// handler 通过 logging.FromContext(c.Request.Context()) 取回带字段 logger
func LoggerContextMiddleware(base *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if v, ok := c.Get(TraceIDKey); ok {
			ctx = context.WithValue(ctx, "trace_id", v)
		}
		if uid, ok := c.Get("user_id"); ok {
			ctx = context.WithValue(ctx, "user_id", uid)
		}
		c.Request = c.Request.WithContext(base.IntoContext(ctx))
		c.Next()
	}
}
