package constants

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "task_session"

	// SessionKeyUser is the session/context key holding the identity snapshot.
	SessionKeyUser = "current_user"

	// SessionMaxAge is the fixed session lifetime in seconds (24 hours).
	// Sessions are not refreshed on activity.
	SessionMaxAge = 86400
)
