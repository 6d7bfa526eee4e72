package postgres

import (
	"context"
	"errors"

	"cv360-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, title, description, location, salary_range, job_type, requirements, is_international, deadline)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              RETURNING id, is_approved, created_at`
	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Location,
		job.SalaryRange, job.JobType, job.Requirements, job.IsInternational, job.Deadline,
	).Scan(&job.ID, &job.IsApproved, &job.CreatedAt)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, employer_id, title, description, location, salary_range, job_type, requirements, is_international, is_approved, deadline, created_at
              FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
		&job.SalaryRange, &job.JobType, &job.Requirements, &job.IsInternational,
		&job.IsApproved, &job.Deadline, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) FetchApproved(ctx context.Context) ([]domain.JobWithEmployer, error) {
	query := `SELECT j.id, j.employer_id, j.title, j.description, j.location, j.salary_range, j.job_type, j.requirements, j.is_international, j.is_approved, j.deadline, j.created_at, u.full_name
              FROM jobs j
              JOIN users u ON j.employer_id = u.id
              WHERE j.is_approved = TRUE
              ORDER BY j.created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobsWithEmployer(rows)
}

func (r *jobRepo) FetchByEmployer(ctx context.Context, employerID int64) ([]domain.JobWithEmployer, error) {
	query := `SELECT j.id, j.employer_id, j.title, j.description, j.location, j.salary_range, j.job_type, j.requirements, j.is_international, j.is_approved, j.deadline, j.created_at, u.full_name
              FROM jobs j
              JOIN users u ON j.employer_id = u.id
              WHERE j.employer_id = $1
              ORDER BY j.created_at DESC`
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobsWithEmployer(rows)
}

func scanJobsWithEmployer(rows pgx.Rows) ([]domain.JobWithEmployer, error) {
	var jobs []domain.JobWithEmployer
	for rows.Next() {
		var job domain.JobWithEmployer
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
			&job.SalaryRange, &job.JobType, &job.Requirements, &job.IsInternational,
			&job.IsApproved, &job.Deadline, &job.CreatedAt, &job.EmployerName,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
