package domain

import "time"

// Identity is the resolved principal behind a request, produced by the identity verifier.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"isActive"`
}

// Caller is passed explicitly into every service operation.
// A nil Identity means the request is anonymous.
type Caller struct {
	Identity  *Identity
	IPAddress string
}

// Anonymous returns a caller with no identity.
func Anonymous(ip string) Caller {
	return Caller{IPAddress: ip}
}

// Authenticated returns a caller for the given identity.
func Authenticated(id *Identity, ip string) Caller {
	return Caller{Identity: id, IPAddress: ip}
}

// UserID returns the caller's user id, or "" when anonymous.
func (c Caller) UserID() string {
	if c.Identity == nil {
		return ""
	}
	return c.Identity.UserID
}

// AuthResult is returned by a successful sign-in or registration.
type AuthResult struct {
	User      User
	Token     string
	ExpiresAt time.Time
}
