package usecase

import (
	"context"
	"errors"
	"time"

	"go-manpower-backend/internal/domain"
	"go-manpower-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// CreateJob persists a job and its required skills atomically. Field shape is
// validated at the delivery boundary; impossible values are still rejected
// here so the repository never sees them.
func (u *jobUsecase) CreateJob(ctx context.Context, employerID int64, job *domain.Job, skillNames []string) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}
	if job.Location == "" {
		return apperror.BadRequest("Location is required")
	}
	if job.DurationDays <= 0 {
		return apperror.BadRequest("Duration must be a positive number of days")
	}
	if job.Salary < 0 {
		return apperror.BadRequest("Salary cannot be negative")
	}

	job.EmployerID = employerID
	job.IsActive = true
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.CreateWithSkills(ctx, job, skillNames); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobSearchFilter) ([]domain.JobWithSkills, error) {
	jobs, err := u.jobRepo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, actorID int64, actorRole string, id int64, upd domain.JobUpdate) (*domain.Job, error) {
	if upd.Title != nil && *upd.Title == "" {
		return nil, apperror.BadRequest("Title cannot be empty")
	}
	if upd.DurationDays != nil && *upd.DurationDays <= 0 {
		return nil, apperror.BadRequest("Duration must be a positive number of days")
	}
	if upd.Salary != nil && *upd.Salary < 0 {
		return nil, apperror.BadRequest("Salary cannot be negative")
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if actorRole == domain.RoleEmployer && job.EmployerID != actorID {
		return nil, apperror.Forbidden("Can only edit your own jobs")
	}

	updated, err := u.jobRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, actorID int64, actorRole string, id int64) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	if actorRole == domain.RoleEmployer && job.EmployerID != actorID {
		return apperror.Forbidden("Can only delete your own jobs")
	}

	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
