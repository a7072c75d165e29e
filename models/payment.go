package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is money received against a booking.
type Payment struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate time.Time       `gorm:"type:date" json:"payment_date"`
	Method      string          `gorm:"size:30;default:онлайн" json:"method"`
	Status      string          `gorm:"size:20;default:оплачено" json:"status"`

	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
