package postgres

import (
	"context"
	"errors"
	"time"

	"go-manpower-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique (job_id, job_seeker_id) index
// guards against duplicate applications; the violation maps to ErrConflict
// so callers never need a racy exists-then-insert check.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, job_seeker_id, cover_letter, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, applied_at, updated_at`

	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.JobSeekerID, app.CoverLetter, app.Status,
	).Scan(&app.ID, &app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID retrieves an application joined with the owning job's employer,
// so callers can check ownership without a second query.
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.job_seeker_id, a.cover_letter, a.status,
		       a.applied_at, a.updated_at, j.employer_id
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.JobSeekerID, &app.CoverLetter, &app.Status,
		&app.AppliedAt, &app.UpdatedAt, &app.JobEmployerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByUserID retrieves a seeker's applications with job and employer context
func (r *applicationRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.job_seeker_id, a.cover_letter, a.status,
		       a.applied_at, a.updated_at,
		       j.title, j.location, j.salary, u.name AS employer_name
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = j.employer_id
		WHERE a.job_seeker_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.JobSeekerID, &app.CoverLetter, &app.Status,
			&app.AppliedAt, &app.UpdatedAt,
			&app.JobTitle, &app.JobLocation, &app.JobSalary, &app.EmployerName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetApplicantsByJobID retrieves applications for a job joined with the
// seeker and their profile (if any)
func (r *applicationRepo) GetApplicantsByJobID(ctx context.Context, jobID int64) ([]domain.Applicant, error) {
	query := `
		SELECT a.id, a.status, a.cover_letter, a.applied_at,
		       u.id AS job_seeker_id, u.name, u.email,
		       p.availability, p.experience
		FROM applications a
		JOIN users u ON u.id = a.job_seeker_id
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []domain.Applicant
	for rows.Next() {
		var a domain.Applicant
		if err := rows.Scan(
			&a.ApplicationID, &a.Status, &a.CoverLetter, &a.AppliedAt,
			&a.JobSeekerID, &a.Name, &a.Email,
			&a.Availability, &a.Experience,
		); err != nil {
			return nil, err
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}

// UpdateStatus updates the status of an application and sets updated_at
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
