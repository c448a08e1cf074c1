package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bistro/internal/model"
)

// CartRepository defines cart line persistence operations. Settlement
// deletion happens inside the payment repository's transaction, not here.
type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CartItem, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.CartItem, error)
	FindByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.CartItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []model.CartItem
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) FindByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).Where("customer_email = ?", email).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, "id = ?", id).Error
}
