package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		FullName:     d.FullName,
		Role:         string(d.Role),
		IsActive:     d.IsActive,
		LastLogin:    d.LastLogin,
		Timestamps:   ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainUser converts a model User to a domain User.
// Unrecognised roles degrade to the user role.
func ToDomainUser(m models.User) domain.User {
	role, err := domain.ParseRole(m.Role)
	if err != nil {
		role = domain.RoleUser
	}
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Role:         role,
		IsActive:     m.IsActive,
		LastLogin:    m.LastLogin,
		Timestamps:   ToDomainTimestamps(m.Timestamps),
	}
}
