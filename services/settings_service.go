package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"parking-backend/models"
)

// SettingsService manages the single-row back-office configuration.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the settings row, creating a default one on first access.
func (s *SettingsService) Get() (*models.AppSetting, error) {
	var setting models.AppSetting
	err := s.DB.Order("id ASC").First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.AppSetting{OrganizationName: "Parking Manager"}
		if err := s.DB.Create(&setting).Error; err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
		return &setting, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &setting, nil
}

// Update replaces the organization name and, when supplied, the preferences
// blob. Preferences must be a valid JSON document.
func (s *SettingsService) Update(organizationName string, preferences json.RawMessage) (*models.AppSetting, error) {
	setting, err := s.Get()
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(organizationName); name != "" {
		setting.OrganizationName = name
	}
	if len(preferences) > 0 {
		if !json.Valid(preferences) {
			return nil, errors.New("preferences must be valid JSON")
		}
		setting.Preferences = datatypes.JSON(preferences)
	}

	if err := s.DB.Save(setting).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return setting, nil
}
