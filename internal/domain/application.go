package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application links a job and a job seeker. One row per (job, seeker) pair.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	JobSeekerID int64     `json:"job_seeker_id"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle     *string  `json:"job_title,omitempty"`
	JobLocation  *string  `json:"job_location,omitempty"`
	JobSalary    *float64 `json:"job_salary,omitempty"`
	EmployerName *string  `json:"employer_name,omitempty"`

	// Joined for ownership checks, not serialized
	JobEmployerID int64 `json:"-"`
}

// Applicant is an application row joined with the seeker and their profile.
type Applicant struct {
	ApplicationID int64     `json:"id"`
	Status        string    `json:"status"`
	CoverLetter   *string   `json:"cover_letter,omitempty"`
	AppliedAt     time.Time `json:"applied_at"`
	JobSeekerID   int64     `json:"job_seeker_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Availability  *string   `json:"availability"`
	Experience    *string   `json:"experience"`
}

type ApplicationRepository interface {
	// Create inserts an application; returns ErrConflict when the seeker
	// already applied to the job.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByUserID(ctx context.Context, userID int64) ([]Application, error)
	GetApplicantsByJobID(ctx context.Context, jobID int64) ([]Applicant, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Job seeker operations
	ApplyToJob(ctx context.Context, userID, jobID int64, coverLetter string) (*Application, error)
	GetMyApplications(ctx context.Context, userID int64) ([]Application, error)

	// Employer operations
	ListApplicants(ctx context.Context, employerID, jobID int64) ([]Applicant, error)
	UpdateApplicationStatus(ctx context.Context, employerID, applicationID int64, status string) error
}
