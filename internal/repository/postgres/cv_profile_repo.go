package postgres

import (
	"context"
	"errors"

	"cv360-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type cvProfileRepo struct {
	db *pgxpool.Pool
}

func NewCVProfileRepository(db *pgxpool.Pool) domain.CVProfileRepository {
	return &cvProfileRepo{db: db}
}

func (r *cvProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CVProfile, error) {
	query := `SELECT id, user_id, bio, skills, experience, education, certifications, voice_cv_path, is_approved, created_at
              FROM cv_profiles WHERE user_id = $1`
	var p domain.CVProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Bio, &p.Skills, &p.Experience, &p.Education,
		&p.Certifications, &p.VoiceCVPath, &p.IsApproved, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
