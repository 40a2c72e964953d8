package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// UserResponse is the public view of an account. The password hash never leaves the service.
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// IdentityResponse is returned by the token verification endpoint.
type IdentityResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func ToIdentityResponse(id *domain.Identity) IdentityResponse {
	return IdentityResponse{ID: id.UserID, Username: id.Username, Email: id.Email, Role: string(id.Role)}
}

// UserStatsResponse pairs an account with its transaction totals.
type UserStatsResponse struct {
	UserResponse
	Summary SummaryResponse `json:"summary"`
}

func ToUserStatsResponse(s domain.UserStats) UserStatsResponse {
	return UserStatsResponse{UserResponse: ToUserResponse(&s.User), Summary: ToSummaryResponse(s.Summary)}
}

func ToUserStatsResponseList(stats []domain.UserStats) []UserStatsResponse {
	out := make([]UserStatsResponse, len(stats))
	for i, s := range stats {
		out[i] = ToUserStatsResponse(s)
	}
	return out
}

// UserDetailResponse is the admin view of a single account.
type UserDetailResponse struct {
	User         UserResponse              `json:"user"`
	Transactions []TransactionResponse     `json:"transactions"`
	Summary      SummaryResponse           `json:"summary"`
	Categories   []CategorySummaryResponse `json:"categories"`
	Activities   []ActivityResponse        `json:"activities"`
}

func ToUserDetailResponse(d *domain.UserDetail) UserDetailResponse {
	return UserDetailResponse{
		User:         ToUserResponse(&d.User),
		Transactions: ToTransactionResponseList(d.Transactions),
		Summary:      ToSummaryResponse(d.Summary),
		Categories:   ToCategorySummaryResponseList(d.Categories),
		Activities:   ToActivityResponseList(d.Activities),
	}
}
