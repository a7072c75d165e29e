package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Display statuses kept in the UI language of the original back office.
const (
	StatusOccupied = "занято"
	StatusReserved = "забронировано"
	StatusVacant   = "свободно"
)

// Booking is a lease of a spot by a client for a closed date range
// [StartDate, EndDate], with StartDate < EndDate enforced at write time.
//
// Occupancy status is never persisted on the booking: it is a pure function of
// (rent_size, payments as of now) computed when the grid is built.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	RentSize  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"rent_size,omitempty"`
	Utilities *decimal.Decimal `gorm:"type:decimal(10,2)" json:"utilities,omitempty"`
	Notes     string           `gorm:"type:text" json:"notes,omitempty"`

	SpotID   uint `gorm:"not null;index" json:"spot_id"`
	ClientID uint `gorm:"not null;index" json:"client_id"`

	Spot     ParkingSpot `gorm:"foreignKey:SpotID" json:"spot"`
	Client   Client      `gorm:"foreignKey:ClientID" json:"client"`
	Payments []Payment   `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
	Expenses []Expense   `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"expenses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Rent returns the booking's rent with a null column treated as zero.
func (b *Booking) Rent() decimal.Decimal {
	if b.RentSize == nil {
		return decimal.Zero
	}
	return *b.RentSize
}

// TotalAmount is rent plus utilities, nulls treated as zero.
func (b *Booking) TotalAmount() decimal.Decimal {
	total := b.Rent()
	if b.Utilities != nil {
		total = total.Add(*b.Utilities)
	}
	return total
}
