package domain

import "context"

// AdminStats contains dashboard statistics. Counts are always computed fresh
// from the store.
type AdminStats struct {
	TotalWorkers      int64 `json:"total_workers"`
	TotalEmployers    int64 `json:"total_employers"`
	TotalJobs         int64 `json:"total_jobs"`
	TotalApplications int64 `json:"total_applications"`
	PendingJobs       int64 `json:"pending_jobs"`
}

// UserSummary is a user's public-ish view for admin listings. It never
// carries the password hash.
type UserSummary struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	IsVerified bool   `json:"is_verified"`
	CreatedAt  string `json:"created_at"`
}

type AdminRepository interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context) ([]UserSummary, error)
}

type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context) ([]UserSummary, error)
	// ExportUsers renders the user listing as an XLSX workbook.
	ExportUsers(ctx context.Context) ([]byte, string, error)
}
