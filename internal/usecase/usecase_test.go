package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cv360-backend/internal/domain"
	"cv360-backend/internal/usecase"
	"cv360-backend/pkg/apperror"
	"cv360-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCVProfileRepo struct {
	mock.Mock
}

func (m *MockCVProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CVProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CVProfile), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchApproved(ctx context.Context) ([]domain.JobWithEmployer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithEmployer), args.Error(1)
}
func (m *MockJobRepo) FetchByEmployer(ctx context.Context, employerID int64) ([]domain.JobWithEmployer, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithEmployer), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, jobID, workerID int64) (bool, error) {
	args := m.Called(ctx, jobID, workerID)
	return args.Bool(0), args.Error(1)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}
func (m *MockAdminRepo) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

func ctxWithRole(role string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserRole, role)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("unit-test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	t.Run("Should reject an unknown role without touching the store", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockUsers, new(MockCVProfileRepo), testTokens())

		_, err := uc.Register(context.Background(), &domain.User{Role: "superuser"}, "secret123")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "Invalid role")
		mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should surface a duplicate user as Conflict", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockUsers.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("User already exists"))
		uc := usecase.NewAuthUsecase(mockUsers, new(MockCVProfileRepo), testTokens())

		_, err := uc.Register(context.Background(), &domain.User{Role: domain.RoleWorker}, "secret123")
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})

	t.Run("Should hash the password and issue a verifiable token", func(t *testing.T) {
		tokens := testTokens()
		mockUsers := new(MockUserRepo)
		mockUsers.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			u.ID = 42
			assert.NotEmpty(t, u.PasswordHash)
			assert.NotEqual(t, "secret123", u.PasswordHash)
		}).Return(nil)
		uc := usecase.NewAuthUsecase(mockUsers, new(MockCVProfileRepo), tokens)

		token, err := uc.Register(context.Background(), &domain.User{Role: domain.RoleWorker, Username: "aibek"}, "secret123")
		assert.NoError(t, err)

		userID, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Should not reveal whether the user exists", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockUsers.On("GetByUsernameOrEmail", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
		uc := usecase.NewAuthUsecase(mockUsers, new(MockCVProfileRepo), testTokens())

		_, _, err := uc.Login(context.Background(), "ghost", "whatever")
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("Should reject a wrong password with the same message", func(t *testing.T) {
		hash, _ := auth.HashPassword("right-password")
		mockUsers := new(MockUserRepo)
		mockUsers.On("GetByUsernameOrEmail", mock.Anything, "aibek").Return(&domain.User{ID: 7, PasswordHash: hash}, nil)
		uc := usecase.NewAuthUsecase(mockUsers, new(MockCVProfileRepo), testTokens())

		_, _, err := uc.Login(context.Background(), "aibek", "wrong-password")
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
		assert.Contains(t, err.Error(), "Invalid credentials")
	})

	t.Run("Should return token and user on valid credentials", func(t *testing.T) {
		tokens := testTokens()
		hash, _ := auth.HashPassword("right-password")
		mockUsers := new(MockUserRepo)
		mockUsers.On("GetByUsernameOrEmail", mock.Anything, "aibek@example.com").Return(&domain.User{ID: 7, Username: "aibek", PasswordHash: hash}, nil)
		uc := usecase.NewAuthUsecase(mockUsers, new(MockCVProfileRepo), tokens)

		token, user, err := uc.Login(context.Background(), "aibek@example.com", "right-password")
		assert.NoError(t, err)
		assert.Equal(t, "aibek", user.Username)

		userID, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("Should return a null cv_profile when none exists", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockCVs := new(MockCVProfileRepo)
		mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Username: "aibek"}, nil)
		mockCVs.On("GetByUserID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewAuthUsecase(mockUsers, mockCVs, testTokens())

		profile, err := uc.GetProfile(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, "aibek", profile.Username)
		assert.Nil(t, profile.CVProfile)
	})

	t.Run("Should attach the cv_profile when one exists", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockCVs := new(MockCVProfileRepo)
		mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
		mockCVs.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.CVProfile{UserID: 7, Skills: "welding"}, nil)
		uc := usecase.NewAuthUsecase(mockUsers, mockCVs, testTokens())

		profile, err := uc.GetProfile(context.Background(), 7)
		assert.NoError(t, err)
		assert.NotNil(t, profile.CVProfile)
		assert.Equal(t, "welding", profile.CVProfile.Skills)
	})
}

func TestListJobs(t *testing.T) {
	t.Run("Should fail safely when the role is missing", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))

		_, err := uc.ListJobs(context.Background(), 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("Employers see their own jobs regardless of approval", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		own := []domain.JobWithEmployer{{Job: domain.Job{ID: 1, EmployerID: 9, IsApproved: false}}}
		mockJobs.On("FetchByEmployer", mock.Anything, int64(9)).Return(own, nil)
		uc := usecase.NewJobUsecase(mockJobs)

		jobs, err := uc.ListJobs(ctxWithRole(domain.RoleEmployer), 9)
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		mockJobs.AssertNotCalled(t, "FetchApproved", mock.Anything)
	})

	t.Run("Workers and admins see only approved jobs", func(t *testing.T) {
		for _, role := range []string{domain.RoleWorker, domain.RoleAdmin} {
			mockJobs := new(MockJobRepo)
			mockJobs.On("FetchApproved", mock.Anything).Return([]domain.JobWithEmployer{}, nil)
			uc := usecase.NewJobUsecase(mockJobs)

			_, err := uc.ListJobs(ctxWithRole(role), 1)
			assert.NoError(t, err)
			mockJobs.AssertNotCalled(t, "FetchByEmployer", mock.Anything, mock.Anything)
		}
	})
}

func TestCreateJob(t *testing.T) {
	validJob := func() *domain.Job {
		return &domain.Job{
			Title:       "Welder",
			Description: "TIG welding on site",
			Location:    "Almaty",
			SalaryRange: "300000-400000 KZT",
			JobType:     "full-time",
		}
	}

	t.Run("Should forbid non-employers without touching the store", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockJobs)

		err := uc.CreateJob(ctxWithRole(domain.RoleWorker), 3, validJob())
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		mockJobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should name the missing field", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))

		job := validJob()
		job.SalaryRange = ""
		err := uc.CreateJob(ctxWithRole(domain.RoleEmployer), 9, job)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "salary_range is required")
	})

	t.Run("Should force ownership and start unapproved", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("Create", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewJobUsecase(mockJobs)

		job := validJob()
		job.EmployerID = 999 // client supplied value must be ignored
		job.IsApproved = true
		err := uc.CreateJob(ctxWithRole(domain.RoleEmployer), 9, job)
		assert.NoError(t, err)
		assert.Equal(t, int64(9), job.EmployerID)
		assert.False(t, job.IsApproved)
	})
}

func TestApply(t *testing.T) {
	t.Run("Should forbid non-workers", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockApps, new(MockJobRepo))

		_, err := uc.Apply(ctxWithRole(domain.RoleEmployer), 3, 1, "")
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should 404 on an unknown job", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockJobs.On("GetByID", mock.Anything, int64(55)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), mockJobs)

		_, err := uc.Apply(ctxWithRole(domain.RoleWorker), 3, 55, "")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should conflict on a repeat application", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockApps := new(MockApplicationRepo)
		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1}, nil)
		mockApps.On("CheckExists", mock.Anything, int64(1), int64(3)).Return(true, nil)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs)

		_, err := uc.Apply(ctxWithRole(domain.RoleWorker), 3, 1, "")
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		assert.Contains(t, err.Error(), "Already applied")
	})

	t.Run("Should create a pending application", func(t *testing.T) {
		mockJobs := new(MockJobRepo)
		mockApps := new(MockApplicationRepo)
		mockJobs.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1}, nil)
		mockApps.On("CheckExists", mock.Anything, int64(1), int64(3)).Return(false, nil)
		mockApps.On("Create", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs)

		app, err := uc.Apply(ctxWithRole(domain.RoleWorker), 3, 1, "I can start Monday")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, int64(3), app.WorkerID)
		assert.Equal(t, "I can start Monday", app.Message)
	})
}

func TestAdminPrivilege(t *testing.T) {
	t.Run("Should fail safely when keys are missing", func(t *testing.T) {
		mockAdmin := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(mockAdmin)

		_, err := uc.GetStats(context.Background())
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		assert.Contains(t, err.Error(), "Admin access required")
		mockAdmin.AssertNotCalled(t, "GetStats", mock.Anything)
	})

	t.Run("Should fail if role is not admin", func(t *testing.T) {
		uc := usecase.NewAdminUsecase(new(MockAdminRepo))

		_, err := uc.ListUsers(ctxWithRole(domain.RoleEmployer))
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("Should return stats for an admin", func(t *testing.T) {
		mockAdmin := new(MockAdminRepo)
		mockAdmin.On("GetStats", mock.Anything).Return(&domain.AdminStats{TotalWorkers: 12, PendingJobs: 3}, nil)
		uc := usecase.NewAdminUsecase(mockAdmin)

		stats, err := uc.GetStats(ctxWithRole(domain.RoleAdmin))
		assert.NoError(t, err)
		assert.Equal(t, int64(12), stats.TotalWorkers)
		assert.Equal(t, int64(3), stats.PendingJobs)
	})
}

func TestExportUsers(t *testing.T) {
	t.Run("Should produce a dated xlsx for an admin", func(t *testing.T) {
		mockAdmin := new(MockAdminRepo)
		mockAdmin.On("ListUsers", mock.Anything).Return([]domain.UserSummary{
			{ID: 1, Username: "aibek", Email: "aibek@example.com", Role: domain.RoleWorker},
		}, nil)
		uc := usecase.NewAdminUsecase(mockAdmin)

		data, filename, err := uc.ExportUsers(ctxWithRole(domain.RoleAdmin))
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.Equal(t, "users_"+time.Now().Format("2006-01-02")+".xlsx", filename)
	})

	t.Run("Should forbid non-admins", func(t *testing.T) {
		uc := usecase.NewAdminUsecase(new(MockAdminRepo))

		_, _, err := uc.ExportUsers(ctxWithRole(domain.RoleWorker))
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})
}
