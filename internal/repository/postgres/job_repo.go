package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-manpower-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// CreateWithSkills inserts the job row and its skill associations as one
// atomic unit. Any failure rolls back the whole write, so a job is never
// visible without its skills.
func (r *jobRepo) CreateWithSkills(ctx context.Context, job *domain.Job, skillNames []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO jobs (employer_id, title, description, location, duration_days, salary, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err = tx.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Location,
		job.DurationDays, job.Salary, job.IsActive,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	if err := replaceSkillsTx(ctx, tx, domain.SkillOwnerJob, job.ID, skillNames); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, employer_id, title, description, location, duration_days, salary, is_active, created_at, updated_at
	          FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
		&job.DurationDays, &job.Salary, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// buildJobSearchQuery translates the filter into a parameterized query.
// Every active filter contributes exactly one placeholder-bound clause;
// with no filters there is no WHERE clause at all. The GROUP BY collapses
// the skill join fan-out so each job appears exactly once.
func buildJobSearchQuery(filter domain.JobSearchFilter) (string, []any) {
	var clauses []string
	var args []any

	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		clauses = append(clauses, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}
	if filter.MinSalary != nil {
		args = append(args, *filter.MinSalary)
		clauses = append(clauses, fmt.Sprintf("j.salary >= $%d", len(args)))
	}
	if filter.MaxDuration != nil {
		args = append(args, *filter.MaxDuration)
		clauses = append(clauses, fmt.Sprintf("j.duration_days <= $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		clauses = append(clauses, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", len(args), len(args)))
	}
	if filter.Skill != "" {
		args = append(args, normalizeSkillName(filter.Skill))
		clauses = append(clauses, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM job_skills js2
			JOIN skills s2 ON s2.id = js2.skill_id
			WHERE js2.job_id = j.id AND s2.name = $%d
		)`, len(args)))
	}

	whereClause := ""
	if len(clauses) > 0 {
		whereClause = "WHERE " + strings.Join(clauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT
			j.id, j.employer_id, j.title, j.description, j.location,
			j.duration_days, j.salary, j.is_active, j.created_at, j.updated_at,
			u.name AS employer_name,
			COALESCE(array_remove(array_agg(DISTINCT s.name), NULL), '{}') AS skills
		FROM jobs j
		JOIN users u ON u.id = j.employer_id
		LEFT JOIN job_skills js ON js.job_id = j.id
		LEFT JOIN skills s ON s.id = js.skill_id
		%s
		GROUP BY j.id, u.name
		ORDER BY j.created_at DESC`, whereClause)

	return query, args
}

func (r *jobRepo) Search(ctx context.Context, filter domain.JobSearchFilter) ([]domain.JobWithSkills, error) {
	query, args := buildJobSearchQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobWithSkills{}
	for rows.Next() {
		var job domain.JobWithSkills
		var skills []string
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
			&job.DurationDays, &job.Salary, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
			&job.EmployerName, pq.Array(&skills),
		); err != nil {
			return nil, err
		}
		job.Skills = skills
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Update applies a partial mutation; nil fields keep their stored value.
func (r *jobRepo) Update(ctx context.Context, id int64, upd domain.JobUpdate) (*domain.Job, error) {
	var sets []string
	var args []any

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		addSet("title", *upd.Title)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}
	if upd.Location != nil {
		addSet("location", *upd.Location)
	}
	if upd.DurationDays != nil {
		addSet("duration_days", *upd.DurationDays)
	}
	if upd.Salary != nil {
		addSet("salary", *upd.Salary)
	}
	if upd.IsActive != nil {
		addSet("is_active", *upd.IsActive)
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("no updates provided")
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE jobs SET %s, updated_at = NOW() WHERE id = $%d
		RETURNING id, employer_id, title, description, location, duration_days, salary, is_active, created_at, updated_at`,
		strings.Join(sets, ", "), len(args))

	var job domain.Job
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
		&job.DurationDays, &job.Salary, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
