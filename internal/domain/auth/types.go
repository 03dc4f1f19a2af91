package auth

// Package auth contains domain-level types for the client-trusted session.
// It is pure and free of transport/storage concerns.

import "strings"

// Role represents the application's authorization role.
// Keep string form for easy persistence. Roles come from the mocked login
// and are client-declared: the admin gate they drive is a convenience
// mirror of the view layer, not a security boundary.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// GuestUserID is both the sentinel user ID and the guest role's string form.
const GuestUserID = "guest"

// Valid reports whether the role is supported.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(value string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(value)))
	if r.Valid() {
		return r, true
	}
	return "", false
}

// Session is the single live session: a role and the acting user ID.
// Hydrated from the store at startup, mutated only by login and logout.
type Session struct {
	Role   Role   `json:"role"`
	UserID string `json:"user_id"`
}

// GuestSession returns the logged-out sentinel session.
func GuestSession() Session {
	return Session{Role: RoleGuest, UserID: GuestUserID}
}

// IsGuest reports whether the session denotes the guest identity.
func (s Session) IsGuest() bool {
	return s.Role == RoleGuest || s.UserID == GuestUserID || s.UserID == ""
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
