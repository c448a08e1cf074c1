package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one line of a customer's open cart. Lines are destroyed
// either by explicit removal or implicitly by a successful settlement.
type CartItem struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	CustomerEmail string          `json:"customer_email" gorm:"size:255;not null;index"`
	MenuItemID    uuid.UUID       `json:"menu_item_id" gorm:"type:char(36);not null;index"`
	Name          string          `json:"name" gorm:"size:255"`
	Image         string          `json:"image" gorm:"size:512"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}
