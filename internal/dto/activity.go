package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// ListActivitiesParams are the query parameters of the activity log listing.
type ListActivitiesParams struct {
	UserID    string `form:"userId" validate:"omitempty,uuid"`
	Action    string `form:"action" validate:"omitempty,max=50"`
	StartDate string `form:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit" validate:"omitempty,min=0,max=1000"`
}

type ActivityResponse struct {
	ID          string    `json:"id"`
	UserID      *string   `json:"userId"`
	Username    *string   `json:"username,omitempty"`
	FullName    *string   `json:"fullName,omitempty"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	IPAddress   string    `json:"ipAddress"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToActivityResponseList(rs []domain.ActivityRecord) []ActivityResponse {
	out := make([]ActivityResponse, len(rs))
	for i, r := range rs {
		out[i] = ActivityResponse{
			ID:          r.ActivityID,
			UserID:      r.UserID,
			Username:    r.Username,
			FullName:    r.FullName,
			Action:      string(r.Action),
			Description: r.Description,
			IPAddress:   r.IPAddress,
			CreatedAt:   r.CreatedAt,
		}
	}
	return out
}

type ActivityStatResponse struct {
	Action string `json:"action"`
	Count  int64  `json:"count"`
}

func ToActivityStatResponseList(stats []domain.ActivityStat) []ActivityStatResponse {
	out := make([]ActivityStatResponse, len(stats))
	for i, s := range stats {
		out[i] = ActivityStatResponse{Action: string(s.Action), Count: s.Count}
	}
	return out
}
