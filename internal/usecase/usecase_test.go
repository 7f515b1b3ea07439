package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-manpower-backend/internal/domain"
	"go-manpower-backend/internal/usecase"
	"go-manpower-backend/pkg/apperror"
	"go-manpower-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
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
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) CreateWithSkills(ctx context.Context, job *domain.Job, skillNames []string) error {
	return m.Called(ctx, job, skillNames).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobSearchFilter) ([]domain.JobWithSkills, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithSkills), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, id int64, upd domain.JobUpdate) (*domain.Job, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetApplicantsByJobID(ctx context.Context, jobID int64) ([]domain.Applicant, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Applicant), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile, skillNames []string) error {
	return m.Called(ctx, profile, skillNames).Error(0)
}
func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.ProfileWithSkills, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileWithSkills), args.Error(1)
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject unknown role", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		_, _, err := uc.Register(ctx, "Eve", "eve@example.com", "secret1", "superuser")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Role must be")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject short password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		_, _, err := uc.Register(ctx, "Eve", "eve@example.com", "12345", domain.RoleEmployer)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 6 characters")
	})

	t.Run("Should map duplicate email to conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrConflict)

		_, _, err := uc.Register(ctx, "Eve", "eve@example.com", "secret1", domain.RoleEmployer)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Should hash password and issue token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			u.ID = 42
			assert.NotEqual(t, "secret1", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
		})

		user, token, err := uc.Register(ctx, "Eve", "eve@example.com", "secret1", domain.RoleJobSeeker)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int64(42), user.ID)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	stored := &domain.User{ID: 1, Email: "eve@example.com", PasswordHash: string(hash), Role: domain.RoleEmployer}

	t.Run("Should not reveal whether the email exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, _, errUnknown := uc.Login(ctx, "ghost@example.com", "whatever")

		mockRepo.On("GetByEmail", ctx, "eve@example.com").Return(stored, nil)
		_, _, errWrongPass := uc.Login(ctx, "eve@example.com", "wrongpass")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("Should issue token on valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", ctx, "eve@example.com").Return(stored, nil)

		user, token, err := uc.Login(ctx, "eve@example.com", "secret1")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int64(1), user.ID)
	})
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject impossible field values", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		cases := []domain.Job{
			{Description: "d", Location: "l", DurationDays: 5, Salary: 100},
			{Title: "t", Description: "d", Location: "l", DurationDays: 0, Salary: 100},
			{Title: "t", Description: "d", Location: "l", DurationDays: 5, Salary: -1},
		}
		for _, job := range cases {
			j := job
			err := uc.CreateJob(ctx, 1, &j, nil)
			assert.Error(t, err)
		}
		mockRepo.AssertNotCalled(t, "CreateWithSkills")
	})

	t.Run("Should force employer from the authenticated caller", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("CreateWithSkills", ctx, mock.AnythingOfType("*domain.Job"), []string{"welding"}).
			Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, int64(7), j.EmployerID)
			assert.True(t, j.IsActive)
		})

		job := &domain.Job{EmployerID: 999, Title: "Welder", Description: "d", Location: "Oslo", DurationDays: 30, Salary: 5000}
		err := uc.CreateJob(ctx, 7, job, []string{"welding"})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestJobOwnership(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Job{ID: 10, EmployerID: 7, Title: "Welder", IsActive: true}

	t.Run("Should forbid editing another employer's job", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(owned, nil)

		title := "Hijacked"
		_, err := uc.UpdateJob(ctx, 8, domain.RoleEmployer, 10, domain.JobUpdate{Title: &title})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should let admins edit any job", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		title := "Moderated"
		mockRepo.On("GetByID", ctx, int64(10)).Return(owned, nil)
		mockRepo.On("Update", ctx, int64(10), domain.JobUpdate{Title: &title}).
			Return(&domain.Job{ID: 10, Title: title}, nil)

		updated, err := uc.UpdateJob(ctx, 999, domain.RoleAdmin, 10, domain.JobUpdate{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, title, updated.Title)
	})

	t.Run("Should forbid deleting another employer's job", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(owned, nil)

		err := uc.DeleteJob(ctx, 8, domain.RoleEmployer, 10)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}

func TestApplyToJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should hide inactive jobs from applicants", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", ctx, int64(10)).Return(&domain.Job{ID: 10, IsActive: false}, nil)

		_, err := uc.ApplyToJob(ctx, 3, 10, "")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		mockAppRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should map duplicate application to conflict", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", ctx, int64(10)).Return(&domain.Job{ID: 10, IsActive: true}, nil)
		mockAppRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrConflict)

		_, err := uc.ApplyToJob(ctx, 3, 10, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Already applied")
	})

	t.Run("Should store empty cover letter as null", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", ctx, int64(10)).Return(&domain.Job{ID: 10, IsActive: true}, nil)
		mockAppRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			a := args.Get(1).(*domain.Application)
			assert.Nil(t, a.CoverLetter)
			assert.Equal(t, domain.ApplicationStatusPending, a.Status)
		})

		app, err := uc.ApplyToJob(ctx, 3, 10, "")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), app.JobSeekerID)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should only accept terminal statuses", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))

		for _, status := range []string{"pending", "hired", ""} {
			err := uc.UpdateApplicationStatus(ctx, 7, 1, status)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "accepted or rejected")
		}
		mockAppRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Should forbid updating applications to other employers' jobs", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))

		mockAppRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.Application{ID: 1, JobEmployerID: 7}, nil)

		err := uc.UpdateApplicationStatus(ctx, 8, 1, domain.ApplicationStatusAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your jobs")
		mockAppRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Should update status for the owning employer", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, new(MockJobRepo))

		mockAppRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.Application{ID: 1, JobEmployerID: 7}, nil)
		mockAppRepo.On("UpdateStatus", ctx, int64(1), domain.ApplicationStatusRejected).Return(nil)

		err := uc.UpdateApplicationStatus(ctx, 7, 1, domain.ApplicationStatusRejected)
		assert.NoError(t, err)
		mockAppRepo.AssertExpectations(t)
	})
}

func TestListApplicants(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid listing applicants on someone else's job", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockJobRepo := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockJobRepo)

		mockJobRepo.On("GetByID", ctx, int64(10)).Return(&domain.Job{ID: 10, EmployerID: 7}, nil)

		_, err := uc.ListApplicants(ctx, 8, 10)
		assert.Error(t, err)
		mockAppRepo.AssertNotCalled(t, "GetApplicantsByJobID")
	})
}

func TestUpsertProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should key the profile on the authenticated caller", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		availability := "weekends"
		mockRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Profile"), []string{"Plumbing", "plumbing"}).
			Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, int64(3), p.UserID)
		})

		profile, err := uc.UpsertProfile(ctx, 3, &availability, nil, []string{"Plumbing", "plumbing"})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), profile.UserID)
		mockRepo.AssertExpectations(t)
	})
}
