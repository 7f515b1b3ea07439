package usecase

import (
	"context"
	"errors"

	"go-manpower-backend/internal/domain"
	"go-manpower-backend/pkg/apperror"
	"go-manpower-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, name, email, password, role string) (*domain.User, string, error) {
	switch role {
	case domain.RoleAdmin, domain.RoleEmployer, domain.RoleJobSeeker:
	default:
		return nil, "", apperror.BadRequest("Role must be admin, employer or job_seeker")
	}
	if len(password) < 6 {
		return nil, "", apperror.BadRequest("Password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, "", apperror.Conflict("Email already in use")
		}
		return nil, "", apperror.Internal(err)
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same response for unknown email and bad password
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
