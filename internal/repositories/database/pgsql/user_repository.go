package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, email, password_hash, full_name, role, is_active, last_login, created_at, updated_at`

func scanUser(row rowScanner) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.FullName,
		&m.Role,
		&m.IsActive,
		&m.LastLogin,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxUserRepository) findOne(ctx context.Context, column, value string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, value))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", column, err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id", userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username", username)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (domain.UserCounts, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE role = 'admin'),
		       COUNT(*) FILTER (WHERE role = 'user')
		FROM users;
	`
	var c domain.UserCounts
	if err := r.Pool.QueryRow(ctx, query).Scan(&c.Total, &c.Admins, &c.Users); err != nil {
		return domain.UserCounts{}, fmt.Errorf("failed to count users: %w", err)
	}
	return c, nil
}

func (r *PgxUserRepository) ListUserStats(ctx context.Context) ([]domain.UserStats, error) {
	query := `
		SELECT u.user_id, u.username, u.email, u.password_hash, u.full_name, u.role, u.is_active,
		       u.last_login, u.created_at, u.updated_at,
		       COUNT(t.transaction_id),
		       COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'inflow'), 0),
		       COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'outflow'), 0)
		FROM users u
		LEFT JOIN transactions t ON t.user_id = u.user_id
		GROUP BY u.user_id
		ORDER BY u.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.UserStats{}
	for rows.Next() {
		var m models.User
		var s domain.Summary
		err := rows.Scan(
			&m.UserID, &m.Username, &m.Email, &m.PasswordHash, &m.FullName, &m.Role, &m.IsActive,
			&m.LastLogin, &m.CreatedAt, &m.UpdatedAt,
			&s.TransactionCount, &s.TotalInflow, &s.TotalOutflow,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user stats row: %w", err)
		}
		s.Balance = s.TotalInflow.Sub(s.TotalOutflow)
		stats = append(stats, domain.UserStats{User: mapping.ToDomainUser(m), Summary: s})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user stats rows: %w", rows.Err())
	}
	return stats, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.PasswordHash,
		m.FullName,
		m.Role,
		m.IsActive,
		m.LastLogin,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %q already exists: %w", user.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET email = $1, full_name = $2, password_hash = $3, updated_at = $4
		WHERE user_id = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Email, m.FullName, m.PasswordHash, m.UpdatedAt, m.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email already in use: %w", apperrors.ErrDuplicate)
		}
		if isNoRows(err) {
			return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE users SET last_login = $1 WHERE user_id = $2;`, at, userID)
	if err != nil {
		if isNoRows(err) {
			return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ToggleUserActive(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		UPDATE users
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE user_id = $1 AND role <> 'admin'
		RETURNING ` + userColumns + `;
	`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("non-admin user %s not found: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to toggle user status: %w", err)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

// DeleteUser removes the account inside a transaction so the cascade and the
// activity_logs null-out commit together.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1 AND role <> 'admin';`, userID)
	if err != nil {
		if isNoRows(err) {
			return fmt.Errorf("non-admin user %s not found: %w", userID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("non-admin user %s not found: %w", userID, apperrors.ErrNotFound)
	}
	return r.Commit(ctx, tx)
}
