package usecase

import (
	"context"
	"errors"

	"go-manpower-backend/internal/domain"
	"go-manpower-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// ApplyToJob lets a job seeker apply once to an active job.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, userID, jobID int64, coverLetter string) (*domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job unavailable")
		}
		return nil, apperror.Internal(err)
	}
	// Inactive jobs are indistinguishable from missing ones to applicants
	if !job.IsActive {
		return nil, apperror.NotFound("Job unavailable")
	}

	var coverLetterPtr *string
	if coverLetter != "" {
		coverLetterPtr = &coverLetter
	}

	app := &domain.Application{
		JobID:       jobID,
		JobSeekerID: userID,
		CoverLetter: coverLetterPtr,
		Status:      domain.ApplicationStatusPending,
	}

	// The unique index decides duplicates; no exists-then-insert race here
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Already applied to this job")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// GetMyApplications returns all applications submitted by the current user
func (uc *applicationUsecase) GetMyApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListApplicants returns applicants for a job the employer owns
func (uc *applicationUsecase) ListApplicants(ctx context.Context, employerID, jobID int64) ([]domain.Applicant, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.EmployerID != employerID {
		return nil, apperror.Forbidden("Can only view applicants for your jobs")
	}

	applicants, err := uc.applicationRepo.GetApplicantsByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applicants, nil
}

// UpdateApplicationStatus lets the owning employer accept or reject
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, employerID, applicationID int64, status string) error {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return apperror.BadRequest("Status must be accepted or rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	if app.JobEmployerID != employerID {
		return apperror.Forbidden("Can only update applications for your jobs")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
