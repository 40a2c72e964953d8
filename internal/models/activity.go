package models

import "time"

// ActivityLog is the activity_logs table row, optionally joined with users.
type ActivityLog struct {
	ActivityID  string    `db:"activity_id"`
	UserID      *string   `db:"user_id"`
	Action      string    `db:"action"`
	Description string    `db:"description"`
	IPAddress   string    `db:"ip_address"`
	CreatedAt   time.Time `db:"created_at"`
	Username    *string   `db:"username"`
	FullName    *string   `db:"full_name"`
}
