package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errs "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// ErrUserAlreadyExists reports the idempotent no-op of creating a user whose
// email is already registered.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserService exposes user lifecycle and role operations.
type UserService interface {
	// EnsureUser creates the user on first sign-in. A second creation
	// attempt for the same email stores nothing and returns
	// ErrUserAlreadyExists.
	EnsureUser(ctx context.Context, user *model.User) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, id uint) error
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) EnsureUser(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return existing, ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	if user.Role == "" {
		user.Role = model.RoleNone
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// IsAdmin reports whether the stored role for email is the elevated one.
// An unknown email is simply not an admin, not an error.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("find user: %w", err)
	}
	return user.IsAdmin(), nil
}

func (s *userService) PromoteToAdmin(ctx context.Context, id uint) error {
	if err := s.repo.UpdateRole(ctx, id, model.RoleAdmin); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrNotFound
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
