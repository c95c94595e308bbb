package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is addressable by SessionCartID while anonymous and by UserID once
// claimed. UserID stays nil until a signed-in user claims the cart; the
// transition is one-way.
type Cart struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	SessionCartID string          `gorm:"uniqueIndex" json:"session_cart_id"`
	UserID        *string         `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items         []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(12,2)" json:"total_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CartID    string          `gorm:"index" json:"cart_id"` // Faster queries
	ProductID string          `gorm:"not null" json:"product_id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
	Qty       int             `json:"qty"`
	AddedAt   time.Time       `json:"added_at"`
}
