package domain

import "time"

// User represents an account in the domain.
type User struct {
	UserID       string     `json:"userID"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"fullName"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	Timestamps
}

// Identity returns the caller identity view of the account.
func (u *User) Identity() *Identity {
	return &Identity{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
