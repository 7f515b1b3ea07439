package usecase

import (
	"context"
	"errors"

	"go-manpower-backend/internal/domain"
	"go-manpower-backend/pkg/apperror"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
}

func NewAdminUsecase(adminRepo domain.AdminRepository) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo}
}

func (u *adminUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := u.adminRepo.ListUsers(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

func (u *adminUsecase) RemoveUser(ctx context.Context, id int64) error {
	if err := u.adminRepo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *adminUsecase) RemoveJob(ctx context.Context, id int64) error {
	if err := u.adminRepo.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *adminUsecase) GetStats(ctx context.Context) (*domain.PlatformStats, error) {
	stats, err := u.adminRepo.GetStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}
