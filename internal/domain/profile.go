package domain

import (
	"context"
	"time"
)

// Profile is the job seeker's one-to-one profile.
type Profile struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Availability *string   `json:"availability"`
	Experience   *string   `json:"experience"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProfileWithSkills struct {
	Profile
	Skills []string `json:"skills"`
}

type ProfileRepository interface {
	// Upsert inserts or updates the profile keyed by user_id and replaces
	// its skill set, all in one transaction.
	Upsert(ctx context.Context, profile *Profile, skillNames []string) error
	GetByUserID(ctx context.Context, userID int64) (*ProfileWithSkills, error)
}

type ProfileUsecase interface {
	UpsertProfile(ctx context.Context, userID int64, availability, experience *string, skillNames []string) (*Profile, error)
	GetMyProfile(ctx context.Context, userID int64) (*ProfileWithSkills, error)
}
