package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivityRepository struct {
	BaseRepository
}

func newPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepositoryFacade {
	return &PgxActivityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ActivityRepositoryFacade = (*PgxActivityRepository)(nil)

func (r *PgxActivityRepository) AppendActivity(ctx context.Context, record domain.ActivityRecord) error {
	m := mapping.ToModelActivityLog(record)
	query := `
		INSERT INTO activity_logs (activity_id, user_id, action, description, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.ActivityID, m.UserID, m.Action, m.Description, m.IPAddress, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append activity %s: %w", record.Action, err)
	}
	return nil
}

func (r *PgxActivityRepository) query(ctx context.Context, query string, args ...any) ([]domain.ActivityRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	logs := []models.ActivityLog{}
	for rows.Next() {
		var m models.ActivityLog
		err := rows.Scan(
			&m.ActivityID,
			&m.UserID,
			&m.Action,
			&m.Description,
			&m.IPAddress,
			&m.CreatedAt,
			&m.Username,
			&m.FullName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		logs = append(logs, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", rows.Err())
	}
	return mapping.ToDomainActivityRecordSlice(logs), nil
}

func (r *PgxActivityRepository) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityRecord, error) {
	query, args := buildActivityListQuery(filter)
	return r.query(ctx, query, args...)
}

func (r *PgxActivityRepository) ListRecentActivities(ctx context.Context, n int) ([]domain.ActivityRecord, error) {
	return r.query(ctx, activitySelect+` ORDER BY a.created_at DESC LIMIT $1;`, n)
}

func (r *PgxActivityRepository) CountActivitiesToday(ctx context.Context) (int64, error) {
	var total int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM activity_logs WHERE created_at >= CURRENT_DATE;`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count today's activities: %w", err)
	}
	return total, nil
}

func (r *PgxActivityRepository) ActivityStatsByAction(ctx context.Context) ([]domain.ActivityStat, error) {
	rows, err := r.Pool.Query(ctx, `SELECT action, COUNT(*) AS count FROM activity_logs GROUP BY action ORDER BY count DESC, action;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.ActivityStat{}
	for rows.Next() {
		var action string
		var s domain.ActivityStat
		if err := rows.Scan(&action, &s.Count); err != nil {
			return nil, fmt.Errorf("failed to scan activity stat row: %w", err)
		}
		s.Action = domain.ActivityAction(action)
		stats = append(stats, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating activity stat rows: %w", rows.Err())
	}
	return stats, nil
}
