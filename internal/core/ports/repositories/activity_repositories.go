package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// ActivityWriter appends audit records. There is no update or delete.
type ActivityWriter interface {
	AppendActivity(ctx context.Context, record domain.ActivityRecord) error
}

// ActivityReader defines read operations for the activity log
type ActivityReader interface {
	// ListActivities applies the filter, newest first.
	ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityRecord, error)

	// ListRecentActivities returns the n newest records.
	ListRecentActivities(ctx context.Context, n int) ([]domain.ActivityRecord, error)

	// CountActivitiesToday counts records created since the start of the current day.
	CountActivitiesToday(ctx context.Context) (int64, error)

	// ActivityStatsByAction counts records per action, largest first.
	ActivityStatsByAction(ctx context.Context) ([]domain.ActivityStat, error)
}

// ActivityRepositoryFacade combines all activity-related repository interfaces
type ActivityRepositoryFacade interface {
	ActivityWriter
	ActivityReader
}
