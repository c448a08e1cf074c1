package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bistro/internal/model"
)

// PaymentRepository defines payment ledger persistence operations.
type PaymentRepository interface {
	// SettleCart persists the payment (with its lines) and deletes the
	// matching cart lines as one database transaction. It returns the
	// number of cart lines actually removed; already-absent ids are not
	// an error.
	SettleCart(ctx context.Context, payment *model.Payment, cartIDs []uuid.UUID) (int64, error)
	FindByEmail(ctx context.Context, email string) ([]model.Payment, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	RevenueByCategory(ctx context.Context) ([]model.CategoryStat, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) SettleCart(ctx context.Context, payment *model.Payment, cartIDs []uuid.UUID) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", cartIDs).Delete(&model.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (r *paymentRepository) FindByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Preload("Lines").
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TotalRevenue sums price across the whole ledger; zero when it is empty.
func (r *paymentRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// RevenueByCategory joins payment lines against the current catalog to
// resolve categories; revenue sums the transacted unit prices stored at
// settlement time.
func (r *paymentRepository) RevenueByCategory(ctx context.Context) ([]model.CategoryStat, error) {
	var stats []model.CategoryStat
	err := r.db.WithContext(ctx).
		Table("payment_lines").
		Select("menu_items.category AS category, COUNT(*) AS quantity, COALESCE(SUM(payment_lines.unit_price), 0) AS revenue").
		Joins("JOIN menu_items ON menu_items.id = payment_lines.menu_item_id").
		Group("menu_items.category").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
