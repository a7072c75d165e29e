package models

import "time"

// Client is a tenant renting one or more parking spots.
type Client struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:150;not null" json:"name"`
	Phone string `gorm:"size:50" json:"phone,omitempty"`
	Notes string `gorm:"type:text" json:"notes,omitempty"`

	Bookings []Booking `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasActiveBooking reports whether any of the client's bookings covers the given day.
func (c *Client) HasActiveBooking(today time.Time) bool {
	for _, b := range c.Bookings {
		if !b.StartDate.After(today) && !b.EndDate.Before(today) {
			return true
		}
	}
	return false
}
