package usecase

import (
	"context"

	"cv360-backend/internal/domain"
)

// roleFromContext resolves the caller's role. The auth middleware stores it
// under a string key (gin's c.Set), plain contexts use the typed key; check
// both so usecases behave the same under gin and in unit tests.
func roleFromContext(ctx context.Context) string {
	if r, ok := ctx.Value(string(domain.KeyUserRole)).(string); ok {
		return r
	}
	if r, ok := ctx.Value(domain.KeyUserRole).(string); ok {
		return r
	}
	return ""
}
