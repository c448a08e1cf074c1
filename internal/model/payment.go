package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is one entry of the append-only payment ledger, created exactly
// once per successful settlement and immutable thereafter.
type Payment struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	CustomerEmail string          `json:"customer_email" gorm:"size:255;not null;index"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	TransactionID string          `json:"transaction_id" gorm:"size:255"`
	CreatedAt     time.Time       `json:"created_at"`

	// Lines back-reference the cart lines redeemed by this payment; the
	// payment does not own the cart lifecycle once they are deleted.
	Lines []PaymentLine `json:"lines" gorm:"foreignKey:PaymentID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PaymentLine records one redeemed cart line. UnitPrice is the transacted
// price captured at settlement time, so analytics stay historically
// accurate when the catalog is repriced later.
type PaymentLine struct {
	ID         uint            `json:"-" gorm:"primaryKey"`
	PaymentID  uuid.UUID       `json:"-" gorm:"type:char(36);not null;index"`
	CartItemID uuid.UUID       `json:"cart_item_id" gorm:"type:char(36);not null"`
	MenuItemID uuid.UUID       `json:"menu_item_id" gorm:"type:char(36);not null;index"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(20,2);not null"`
}

// CategoryStat is one row of the per-category order breakdown.
type CategoryStat struct {
	Category string          `json:"category"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}
