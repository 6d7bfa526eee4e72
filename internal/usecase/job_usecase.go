package usecase

import (
	"context"

	"cv360-backend/internal/domain"
	"cv360-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// ListJobs branches on the caller's role: employers see only their own jobs
// in every approval state, everyone else sees only approved jobs. Both lists
// come back newest first, annotated with the employer's display name.
func (u *jobUsecase) ListJobs(ctx context.Context, callerID int64) ([]domain.JobWithEmployer, error) {
	role := roleFromContext(ctx)
	if role == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	if role == domain.RoleEmployer {
		return u.jobRepo.FetchByEmployer(ctx, callerID)
	}
	return u.jobRepo.FetchApproved(ctx)
}

// CreateJob stores a new posting owned by the calling employer. New jobs
// always start unapproved; approval is an admin workflow outside this API.
func (u *jobUsecase) CreateJob(ctx context.Context, callerID int64, job *domain.Job) error {
	if roleFromContext(ctx) != domain.RoleEmployer {
		return apperror.Forbidden("Only employers can create jobs")
	}

	required := []struct {
		value string
		name  string
	}{
		{job.Title, "title"},
		{job.Description, "description"},
		{job.Location, "location"},
		{job.SalaryRange, "salary_range"},
		{job.JobType, "job_type"},
	}
	for _, f := range required {
		if f.value == "" {
			return apperror.BadRequest(f.name + " is required")
		}
	}

	job.EmployerID = callerID
	job.IsApproved = false

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
