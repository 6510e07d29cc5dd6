package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/yuzuhara/task-tracker-api/internal/apierrors"
	"github.com/yuzuhara/task-tracker-api/internal/constants"
	"github.com/yuzuhara/task-tracker-api/internal/models"
)

// RequireAuth resolves the session cookie to an identity snapshot before
// any store access. Requests without a valid session are rejected with
// 401; browser navigation is redirected to the login page instead.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := SessionUser(c)
		if !ok {
			if prefersHTML(c) {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store the snapshot in context for easy access in handlers
		c.Set(constants.SessionKeyUser, current)
		c.Next()
	}
}

// RequireAdmin rejects authenticated callers whose snapshot role is not
// admin. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := CurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !current.IsAdmin() {
			apierrors.Forbidden(c, "Admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser retrieves the identity snapshot placed in the request
// context by RequireAuth.
func CurrentUser(c *gin.Context) (models.SessionUser, bool) {
	value, exists := c.Get(constants.SessionKeyUser)
	if !exists {
		return models.SessionUser{}, false
	}

	current, ok := value.(models.SessionUser)
	return current, ok
}

// SessionUser reads the identity snapshot directly from the session.
// Used on public routes where RequireAuth does not run.
func SessionUser(c *gin.Context) (models.SessionUser, bool) {
	value := sessions.Default(c).Get(constants.SessionKeyUser)
	if value == nil {
		return models.SessionUser{}, false
	}

	current, ok := value.(models.SessionUser)
	return current, ok
}

func prefersHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
