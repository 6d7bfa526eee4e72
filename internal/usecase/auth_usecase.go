package usecase

import (
	"context"
	"errors"

	"cv360-backend/internal/domain"
	"cv360-backend/pkg/apperror"
	"cv360-backend/pkg/auth"
)

type authUsecase struct {
	userRepo domain.UserRepository
	cvRepo   domain.CVProfileRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, cvRepo domain.CVProfileRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		cvRepo:   cvRepo,
		tokens:   tokens,
	}
}

// Register creates the user and returns a fresh session token. The role is
// fixed here for the lifetime of the account. Uniqueness of username/email is
// enforced by the store's constraints; a violation surfaces as Conflict.
func (u *authUsecase) Register(ctx context.Context, user *domain.User, password string) (string, error) {
	if !domain.ValidRole(user.Role) {
		return "", apperror.BadRequest("Invalid role")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", apperror.Internal(err)
	}
	user.PasswordHash = hash

	if err := u.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return token, nil
}

// Login authenticates by username or email. Unknown user and wrong password
// are deliberately indistinguishable to the caller.
func (u *authUsecase) Login(ctx context.Context, usernameOrEmail, password string) (string, *domain.User, error) {
	user, err := u.userRepo.GetByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, apperror.Unauthorized("Invalid credentials")
		}
		return "", nil, apperror.Internal(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	return token, user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// GetProfile returns the user together with their CV profile; cv_profile is
// null when the worker has not created one yet.
func (u *authUsecase) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	profile := &domain.Profile{User: *user}

	cv, err := u.cvRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	profile.CVProfile = cv

	return profile, nil
}
