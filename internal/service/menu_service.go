package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bistro/internal/cache"
	errs "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

const (
	menuListCacheKey = "menu:list"
	menuListCacheTTL = 5 * time.Minute
)

// MenuService exposes catalog operations with a read-through list cache.
type MenuService interface {
	ListItems(ctx context.Context) ([]model.MenuItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
	CreateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type menuService struct {
	repo  repository.MenuRepository
	cache *cache.Client
}

// NewMenuService builds a MenuService with repository and cache.
func NewMenuService(repo repository.MenuRepository, cache *cache.Client) MenuService {
	return &menuService{repo: repo, cache: cache}
}

func (s *menuService) ListItems(ctx context.Context) ([]model.MenuItem, error) {
	if data, _ := s.cache.Get(ctx, menuListCacheKey); data != nil {
		var cached []model.MenuItem
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, menuListCacheKey, payload, menuListCacheTTL)
	}
	return items, nil
}

func (s *menuService) GetItem(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *menuService) CreateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, menuListCacheKey)
	return item, nil
}

func (s *menuService) UpdateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if _, err := s.GetItem(ctx, item.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, menuListCacheKey)
	return item, nil
}

func (s *menuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, menuListCacheKey)
	return nil
}
