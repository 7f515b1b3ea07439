package usecase

import (
	"context"

	"go-manpower-backend/internal/domain"
	"go-manpower-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := u.skillRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}
