package models

import "time"

// User is a back-office operator account.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:128;not null" json:"-"`
	Role     string `gorm:"size:50;default:user" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
