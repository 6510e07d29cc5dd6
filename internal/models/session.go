package models

import "encoding/gob"

func init() {
	// Session values are gob-encoded by the session store.
	gob.Register(SessionUser{})
}

// SessionUser is the identity snapshot written to the session at login or
// registration time. It is never re-read from the database during the
// session's lifetime, so a role change takes effect on the next login.
type SessionUser struct {
	ID    uint64   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// NewSessionUser captures the snapshot for a freshly authenticated user.
func NewSessionUser(user User) SessionUser {
	return SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// IsAdmin reports whether the snapshot carries the admin role.
func (s SessionUser) IsAdmin() bool {
	return s.Role == RoleAdmin
}
