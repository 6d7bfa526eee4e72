package postgres

import (
	"context"
	"errors"

	"cv360-backend/internal/domain"
	"cv360-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, worker_id, message)
              VALUES ($1, $2, $3)
              RETURNING id, status, applied_at`
	err := r.db.QueryRow(ctx, query, app.JobID, app.WorkerID, app.Message).
		Scan(&app.ID, &app.Status, &app.AppliedAt)

	if err != nil {
		// The unique constraint on (job_id, worker_id) is what actually
		// closes the concurrent-apply race; the usecase's pre-check only
		// gives a friendlier fast path.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Already applied for this job")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *applicationRepo) CheckExists(ctx context.Context, jobID, workerID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND worker_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, workerID).Scan(&exists)
	return exists, err
}
