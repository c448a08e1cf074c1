package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// CartService exposes cart line operations.
type CartService interface {
	AddItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	ListByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	RemoveItem(ctx context.Context, id uuid.UUID) error
}

type cartService struct {
	repo repository.CartRepository
}

// NewCartService builds a CartService.
func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) AddItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *cartService) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *cartService) RemoveItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
