package domain

import "context"

type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SkillOwner discriminates which pivot table an association row belongs to.
type SkillOwner string

const (
	SkillOwnerJob     SkillOwner = "job"
	SkillOwnerProfile SkillOwner = "profile"
)

type SkillRepository interface {
	// EnsureSkill upserts a normalized skill name and returns the stable row.
	EnsureSkill(ctx context.Context, name string) (*Skill, error)
	// ReplaceOwnerSkills replaces the owner's full skill set in its own
	// transaction. Input order and duplicates are irrelevant; an empty
	// list detaches everything.
	ReplaceOwnerSkills(ctx context.Context, owner SkillOwner, ownerID int64, names []string) error
	// List returns every known skill ordered by name.
	List(ctx context.Context) ([]Skill, error)
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
}
