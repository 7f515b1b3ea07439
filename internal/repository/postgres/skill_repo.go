package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-manpower-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

// The upsert keeps lookup-or-create atomic under concurrent writers racing to
// register the same name. DO UPDATE (rather than DO NOTHING) makes RETURNING
// yield the existing row's id on conflict.
const ensureSkillQuery = `
	INSERT INTO skills (name) VALUES ($1)
	ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
	RETURNING id`

func normalizeSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// skillPivot resolves the association table and owner column for a kind.
// Table names come from this fixed mapping, never from input.
func skillPivot(owner domain.SkillOwner) (table, column string, err error) {
	switch owner {
	case domain.SkillOwnerJob:
		return "job_skills", "job_id", nil
	case domain.SkillOwnerProfile:
		return "user_skills", "user_id", nil
	default:
		return "", "", fmt.Errorf("unknown skill owner kind: %q", owner)
	}
}

// ensureSkillTx upserts an already-normalized name on the given handle.
func ensureSkillTx(ctx context.Context, q querier, name string) (int64, error) {
	var id int64
	if err := q.QueryRow(ctx, ensureSkillQuery, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to ensure skill %q: %w", name, err)
	}
	return id, nil
}

// replaceSkillsTx replaces the owner's full association set on the given
// handle: delete everything, then re-insert one row per distinct normalized
// name. Duplicate input names collapse via ON CONFLICT DO NOTHING.
func replaceSkillsTx(ctx context.Context, q querier, owner domain.SkillOwner, ownerID int64, names []string) error {
	table, column, err := skillPivot(owner)
	if err != nil {
		return err
	}

	if _, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, column), ownerID); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table, column)
	for _, raw := range names {
		name := normalizeSkillName(raw)
		if name == "" {
			continue
		}
		skillID, err := ensureSkillTx(ctx, q, name)
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, insert, ownerID, skillID); err != nil {
			return fmt.Errorf("failed to attach skill %q: %w", name, err)
		}
	}
	return nil
}

func (r *skillRepo) EnsureSkill(ctx context.Context, name string) (*domain.Skill, error) {
	normalized := normalizeSkillName(name)
	if normalized == "" {
		return nil, fmt.Errorf("skill name is empty")
	}
	id, err := ensureSkillTx(ctx, r.db, normalized)
	if err != nil {
		return nil, err
	}
	return &domain.Skill{ID: id, Name: normalized}, nil
}

func (r *skillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) ReplaceOwnerSkills(ctx context.Context, owner domain.SkillOwner, ownerID int64, names []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := replaceSkillsTx(ctx, tx, owner, ownerID, names); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
