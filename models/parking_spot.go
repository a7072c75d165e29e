package models

import "time"

// ParkingSpot is one rentable unit within a parking lot.
//
// The spot's occupancy status is not stored: it is derived per request by the
// occupancy grid from the spot's bookings and their payments.
type ParkingSpot struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Number    string `gorm:"size:50;not null;uniqueIndex:idx_spot_parking_number" json:"number"`
	ParkingID uint   `gorm:"not null;uniqueIndex:idx_spot_parking_number" json:"parking_id"`

	Parking  Parking   `gorm:"foreignKey:ParkingID" json:"parking"`
	Bookings []Booking `gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
