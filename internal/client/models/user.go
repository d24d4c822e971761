// Package models defines the client-side view models mirroring API payloads.
// None of them is owned or persisted by the client except the session token.
package models

import "github.com/dmitrijs2005/tribunal/internal/timex"

// Known user roles.
const (
	RoleCitizen = "citizen"
	RoleLawyer  = "lawyer"
	RoleJudge   = "judge"
	RoleAdmin   = "admin"
)

// User is the authenticated identity as returned by the API.
type User struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	CreatedAt timex.Timestamp `json:"created_at"`
	IsActive  bool            `json:"is_active"`
}

// Session is the authenticated user together with the bearer token.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// RegisterRequest creates a new account. Role is optional; the API defaults
// it to citizen.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// ProfileUpdate changes the caller's own profile. Empty fields are omitted
// and therefore left unchanged.
type ProfileUpdate struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}
