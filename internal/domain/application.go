package domain

import (
	"context"
	"time"
)

// Application status values. Transitions past "pending" belong to a future
// review workflow; no endpoint mutates status today.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application is a worker's expression of interest in a Job. A worker may
// apply to a given job at most once.
type Application struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"job_id"`
	WorkerID  int64     `json:"worker_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	AppliedAt time.Time `json:"applied_at"`
}

type ApplicationRepository interface {
	// Create inserts the application. The (job_id, worker_id) unique
	// constraint is the authoritative duplicate check, even under concurrent
	// requests; a violation surfaces as a Conflict error.
	Create(ctx context.Context, app *Application) error
	CheckExists(ctx context.Context, jobID, workerID int64) (bool, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, callerID, jobID int64, message string) (*Application, error)
}
