package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an outgoing cost attributed to a booking (repairs, fees, etc.).
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string          `gorm:"size:255" json:"description,omitempty"`
	ExpenseDate time.Time       `gorm:"type:date" json:"expense_date"`

	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
