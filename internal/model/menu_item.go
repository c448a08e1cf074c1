package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItem represents a catalog entry.
type MenuItem struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Recipe    string          `json:"recipe" gorm:"type:text"`
	Image     string          `json:"image" gorm:"size:512"`
	Category  string          `json:"category" gorm:"size:100;not null;index"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
