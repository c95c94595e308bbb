package models

import "time"

type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null;default:NO_NAME" json:"name"`
	Email         string    `gorm:"uniqueIndex:user_email_idx;not null" json:"email"`
	Password      *string   `json:"-"` // nil for non-credential identities
	Role          string    `gorm:"not null;default:user" json:"role"`
	Address       Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Address model embedded in User
type Address struct {
	FullName      string  `json:"full_name"`
	StreetAddress string  `json:"street_address"`
	City          string  `json:"city"`
	PostalCode    string  `json:"postal_code"`
	Country       string  `json:"country"`
	Lat           float64 `json:"lat,omitempty"`
	Lng           float64 `json:"lng,omitempty"`
}
