package domain

import "time"

// ActivityAction tags an activity record.
type ActivityAction string

const (
	ActionLogin             ActivityAction = "LOGIN"
	ActionLogout            ActivityAction = "LOGOUT"
	ActionRegister          ActivityAction = "REGISTER"
	ActionUpdateProfile     ActivityAction = "UPDATE_PROFILE"
	ActionCreateTransaction ActivityAction = "CREATE_TRANSACTION"
	ActionUpdateTransaction ActivityAction = "UPDATE_TRANSACTION"
	ActionDeleteTransaction ActivityAction = "DELETE_TRANSACTION"
	ActionToggleUserStatus  ActivityAction = "TOGGLE_USER_STATUS"
	ActionDeleteUser        ActivityAction = "DELETE_USER"
)

// ActivityRecord is an append-only audit entry.
// UserID is nil once the acting account has been deleted.
type ActivityRecord struct {
	ActivityID  string         `json:"activityID"`
	UserID      *string        `json:"userID"`
	Action      ActivityAction `json:"action"`
	Description string         `json:"description"`
	IPAddress   string         `json:"ipAddress"`
	CreatedAt   time.Time      `json:"createdAt"`

	Username *string `json:"username,omitempty"`
	FullName *string `json:"fullName,omitempty"`
}

// ActivityStat counts records per action tag.
type ActivityStat struct {
	Action ActivityAction `json:"action"`
	Count  int64          `json:"count"`
}
