package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"parking-backend/models"
)

var (
	ErrAddressRequired    = errors.New("parking address is required")
	ErrSpotNumberRequired = errors.New("spot number is required")
	ErrParkingRequired    = errors.New("parking_id is required")
	ErrParkingNotFound    = errors.New("parking not found")
	ErrSpotExists         = errors.New("spot with this number already exists in the lot")
)

// ParkingService covers lot and spot CRUD. Deleting a lot cascades to its
// spots and, through them, to bookings, payments and expenses.
type ParkingService struct {
	DB *gorm.DB
}

func NewParkingService(db *gorm.DB) *ParkingService {
	return &ParkingService{DB: db}
}

func (s *ParkingService) ListParkings() ([]models.Parking, error) {
	var parkings []models.Parking
	err := s.DB.
		Preload("Spots", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Order("address ASC").
		Find(&parkings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load parkings: %w", err)
	}
	return parkings, nil
}

func (s *ParkingService) CreateParking(address string) (*models.Parking, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrAddressRequired
	}

	parking := models.Parking{Address: address}
	if err := s.DB.Create(&parking).Error; err != nil {
		return nil, fmt.Errorf("failed to create parking: %w", err)
	}
	return &parking, nil
}

func (s *ParkingService) DeleteParking(id uint) error {
	var parking models.Parking
	if err := s.DB.First(&parking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParkingNotFound
		}
		return fmt.Errorf("failed to load parking: %w", err)
	}
	if err := s.DB.Delete(&parking).Error; err != nil {
		return fmt.Errorf("failed to delete parking: %w", err)
	}
	return nil
}

func (s *ParkingService) ListSpots(parkingID *uint) ([]models.ParkingSpot, error) {
	query := s.DB.Preload("Parking").Order("number ASC")
	if parkingID != nil {
		query = query.Where("parking_id = ?", *parkingID)
	}

	var spots []models.ParkingSpot
	if err := query.Find(&spots).Error; err != nil {
		return nil, fmt.Errorf("failed to load spots: %w", err)
	}
	return spots, nil
}

func (s *ParkingService) CreateSpot(parkingID uint, number string) (*models.ParkingSpot, error) {
	number = strings.TrimSpace(number)
	if parkingID == 0 {
		return nil, ErrParkingRequired
	}
	if number == "" {
		return nil, ErrSpotNumberRequired
	}

	var parking models.Parking
	if err := s.DB.First(&parking, parkingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParkingNotFound
		}
		return nil, fmt.Errorf("failed to load parking: %w", err)
	}

	var existing int64
	err := s.DB.Model(&models.ParkingSpot{}).
		Where("parking_id = ? AND number = ?", parkingID, number).
		Count(&existing).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check spot number: %w", err)
	}
	if existing > 0 {
		return nil, ErrSpotExists
	}

	spot := models.ParkingSpot{ParkingID: parkingID, Number: number}
	if err := s.DB.Create(&spot).Error; err != nil {
		return nil, fmt.Errorf("failed to create spot: %w", err)
	}
	return &spot, nil
}

func (s *ParkingService) DeleteSpot(id uint) error {
	var spot models.ParkingSpot
	if err := s.DB.First(&spot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpotNotFound
		}
		return fmt.Errorf("failed to load spot: %w", err)
	}
	if err := s.DB.Delete(&spot).Error; err != nil {
		return fmt.Errorf("failed to delete spot: %w", err)
	}
	return nil
}
