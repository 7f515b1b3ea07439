package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-manpower-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

// Upsert writes the profile row and its skill set in one transaction.
// The unique key on user_id makes the whole operation idempotent: running
// it twice with the same input leaves one row and the same skill set.
func (r *profileRepo) Upsert(ctx context.Context, profile *domain.Profile, skillNames []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO profiles (user_id, availability, experience)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET availability = EXCLUDED.availability, experience = EXCLUDED.experience, updated_at = NOW()
		RETURNING id, user_id, availability, experience, created_at, updated_at`

	err = tx.QueryRow(ctx, query, profile.UserID, profile.Availability, profile.Experience).Scan(
		&profile.ID, &profile.UserID, &profile.Availability, &profile.Experience,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	if err := replaceSkillsTx(ctx, tx, domain.SkillOwnerProfile, profile.UserID, skillNames); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.ProfileWithSkills, error) {
	query := `
		SELECT p.id, p.user_id, p.availability, p.experience, p.created_at, p.updated_at,
		       COALESCE(array_remove(array_agg(s.name), NULL), '{}') AS skills
		FROM profiles p
		LEFT JOIN user_skills us ON us.user_id = p.user_id
		LEFT JOIN skills s ON s.id = us.skill_id
		WHERE p.user_id = $1
		GROUP BY p.id`

	var p domain.ProfileWithSkills
	var skills []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Availability, &p.Experience, &p.CreatedAt, &p.UpdatedAt,
		pq.Array(&skills),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}
