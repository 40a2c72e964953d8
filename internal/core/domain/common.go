package domain

import "time"

// Timestamps holds the standard row timestamps shared by domain entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DateLayout is the calendar-date wire format used for transaction dates and date filters.
const DateLayout = "2006-01-02"
