package models

import "time"

// Parking is a physical parking facility containing rentable spots.
type Parking struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Address string `gorm:"size:200;not null" json:"address"`

	Spots []ParkingSpot `gorm:"foreignKey:ParkingID;constraint:OnDelete:CASCADE" json:"spots,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
