package usecase

import (
	"context"
	"errors"

	"go-manpower-backend/internal/domain"
	"go-manpower-backend/pkg/apperror"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

// UpsertProfile writes the caller's profile and skill set. Repeating the call
// with the same input is a no-op beyond the updated_at bump.
func (u *profileUsecase) UpsertProfile(ctx context.Context, userID int64, availability, experience *string, skillNames []string) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID:       userID,
		Availability: availability,
		Experience:   experience,
	}

	if err := u.profileRepo.Upsert(ctx, profile, skillNames); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, userID int64) (*domain.ProfileWithSkills, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
