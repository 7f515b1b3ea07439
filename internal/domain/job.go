package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)

type Job struct {
	ID           int64     `json:"id"`
	EmployerID   int64     `json:"employer_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	DurationDays int       `json:"duration_days"`
	Salary       float64   `json:"salary"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JobWithSkills extends Job with the employer name and its distinct skill names
type JobWithSkills struct {
	Job
	EmployerName string   `json:"employer_name"`
	Skills       []string `json:"skills"`
}

// JobSearchFilter holds the optional search criteria. Zero values mean
// "filter not present"; present filters combine with AND.
type JobSearchFilter struct {
	Location    string   // case-insensitive substring match
	MinSalary   *float64 // inclusive lower bound
	MaxDuration *int     // inclusive upper bound on duration_days
	Skill       string   // requires at least one matching skill
	Query       string   // case-insensitive substring over title or description
}

// JobUpdate describes a partial update; nil fields are left untouched.
type JobUpdate struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location"`
	DurationDays *int     `json:"duration_days"`
	Salary       *float64 `json:"salary"`
	IsActive     *bool    `json:"is_active"`
}

type JobRepository interface {
	// CreateWithSkills inserts the job and replaces its skill set in one transaction.
	CreateWithSkills(ctx context.Context, job *Job, skillNames []string) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Search(ctx context.Context, filter JobSearchFilter) ([]JobWithSkills, error)
	Update(ctx context.Context, id int64, upd JobUpdate) (*Job, error)
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, employerID int64, job *Job, skillNames []string) error
	SearchJobs(ctx context.Context, filter JobSearchFilter) ([]JobWithSkills, error)
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	UpdateJob(ctx context.Context, actorID int64, actorRole string, id int64, upd JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, actorID int64, actorRole string, id int64) error
}
