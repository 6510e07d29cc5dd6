package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yuzuhara/task-tracker-api/internal/apierrors"
)

// Timeout attaches a deadline to the request context. Store calls run
// through this context, so a hung database no longer hangs the request.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			apierrors.Timeout(c, "")
			c.Abort()
		}
	}
}
