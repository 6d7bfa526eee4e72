package usecase

import (
	"context"
	"errors"

	"cv360-backend/internal/domain"
	"cv360-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// Apply records a worker's interest in a job. A worker may apply to a given
// job at most once; the pre-check gives a friendly error on the common path
// and the store's unique constraint settles concurrent duplicates.
func (u *applicationUsecase) Apply(ctx context.Context, callerID, jobID int64, message string) (*domain.Application, error) {
	if roleFromContext(ctx) != domain.RoleWorker {
		return nil, apperror.Forbidden("Only workers can apply for jobs")
	}

	if jobID == 0 {
		return nil, apperror.BadRequest("job_id is required")
	}

	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	exists, err := u.applicationRepo.CheckExists(ctx, jobID, callerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("Already applied for this job")
	}

	app := &domain.Application{
		JobID:    jobID,
		WorkerID: callerID,
		Status:   domain.ApplicationStatusPending,
		Message:  message,
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}
