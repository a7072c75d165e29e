package models

import (
	"time"

	"gorm.io/datatypes"
)

// AppSetting is the single-row back-office configuration: organization name
// shown in the UI plus a free-form preferences blob.
type AppSetting struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	OrganizationName string         `gorm:"size:200" json:"organization_name"`
	Preferences      datatypes.JSON `gorm:"column:preferences" json:"preferences,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
