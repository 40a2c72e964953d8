package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelActivityLog converts a domain ActivityRecord to a model ActivityLog
func ToModelActivityLog(d domain.ActivityRecord) models.ActivityLog {
	return models.ActivityLog{
		ActivityID:  d.ActivityID,
		UserID:      d.UserID,
		Action:      string(d.Action),
		Description: d.Description,
		IPAddress:   d.IPAddress,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainActivityRecord converts a model ActivityLog to a domain ActivityRecord
func ToDomainActivityRecord(m models.ActivityLog) domain.ActivityRecord {
	return domain.ActivityRecord{
		ActivityID:  m.ActivityID,
		UserID:      m.UserID,
		Action:      domain.ActivityAction(m.Action),
		Description: m.Description,
		IPAddress:   m.IPAddress,
		CreatedAt:   m.CreatedAt,
		Username:    m.Username,
		FullName:    m.FullName,
	}
}

func ToDomainActivityRecordSlice(ms []models.ActivityLog) []domain.ActivityRecord {
	ds := make([]domain.ActivityRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainActivityRecord(m)
	}
	return ds
}
