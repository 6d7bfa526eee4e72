package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Roles are fixed at registration and never change in this system.
const (
	RoleWorker   = "worker"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the three allowed roles.
func ValidRole(role string) bool {
	return role == RoleWorker || role == RoleEmployer || role == RoleAdmin
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone"`
	FullName     string    `json:"full_name"`
	Location     string    `json:"location"`
	ProfilePhoto string    `json:"profile_photo"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CVProfile is an optional 1:1 extension of a worker User. At most one per
// user, enforced by a unique constraint on user_id.
type CVProfile struct {
	ID             int64     `json:"-"`
	UserID         int64     `json:"-"`
	Bio            string    `json:"bio"`
	Skills         string    `json:"skills"`
	Experience     string    `json:"experience"`
	Education      string    `json:"education"`
	Certifications string    `json:"certifications"`
	VoiceCVPath    string    `json:"voice_cv_path,omitempty"`
	IsApproved     bool      `json:"is_approved"`
	CreatedAt      time.Time `json:"-"`
}

// Profile is the GET /profile payload: the user plus their CV profile, which
// is null when no profile exists yet.
type Profile struct {
	User
	CVProfile *CVProfile `json:"cv_profile"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*User, error)
}

type CVProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*CVProfile, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, password string) (token string, err error)
	Login(ctx context.Context, usernameOrEmail, password string) (token string, user *User, err error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
}
