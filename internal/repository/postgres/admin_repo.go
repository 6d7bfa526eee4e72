package postgres

import (
	"context"
	"time"

	"cv360-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

// GetStats runs the dashboard aggregates in one round trip. Counts are never
// cached.
func (r *adminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	query := `SELECT
        (SELECT COUNT(*) FROM users WHERE role = 'worker'),
        (SELECT COUNT(*) FROM users WHERE role = 'employer'),
        (SELECT COUNT(*) FROM jobs),
        (SELECT COUNT(*) FROM applications),
        (SELECT COUNT(*) FROM jobs WHERE is_approved = FALSE)`

	var stats domain.AdminStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalWorkers, &stats.TotalEmployers, &stats.TotalJobs,
		&stats.TotalApplications, &stats.PendingJobs,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *adminRepo) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	query := `SELECT id, username, email, role, full_name, phone, location, is_verified, created_at
              FROM users ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserSummary
	for rows.Next() {
		var u domain.UserSummary
		var createdAt time.Time
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.Role, &u.FullName,
			&u.Phone, &u.Location, &u.IsVerified, &createdAt,
		); err != nil {
			return nil, err
		}
		u.CreatedAt = createdAt.Format(time.RFC3339)
		users = append(users, u)
	}
	return users, rows.Err()
}
