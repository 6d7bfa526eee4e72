package domain

import (
	"context"
	"time"
)

type Job struct {
	ID              int64      `json:"id"`
	EmployerID      int64      `json:"employer_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	SalaryRange     string     `json:"salary_range"`
	JobType         string     `json:"job_type"`
	Requirements    string     `json:"requirements"`
	IsInternational bool       `json:"is_international"`
	IsApproved      bool       `json:"is_approved"`
	Deadline        *time.Time `json:"deadline"`
	CreatedAt       time.Time  `json:"created_at"`
}

// JobWithEmployer annotates a Job with the owning employer's display name for
// list responses.
type JobWithEmployer struct {
	Job
	EmployerName string `json:"employer_name"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// FetchApproved returns approved jobs only, newest first.
	FetchApproved(ctx context.Context) ([]JobWithEmployer, error)
	// FetchByEmployer returns every job owned by the employer regardless of
	// approval state, newest first.
	FetchByEmployer(ctx context.Context, employerID int64) ([]JobWithEmployer, error)
}

type JobUsecase interface {
	// ListJobs branches on the caller's role: employers see their own jobs in
	// every approval state, everyone else sees approved jobs only.
	ListJobs(ctx context.Context, callerID int64) ([]JobWithEmployer, error)
	CreateJob(ctx context.Context, callerID int64, job *Job) error
}
