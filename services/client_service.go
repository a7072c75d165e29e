package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"parking-backend/models"
	"parking-backend/utils"
)

var (
	ErrClientNameRequired = errors.New("client name is required")
	ErrClientHasBookings  = errors.New("client still has bookings")
)

// ClientService covers the tenant list and CRUD.
type ClientService struct {
	DB *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{DB: db}
}

// ClientFilter narrows the client list.
type ClientFilter struct {
	Query  string // substring match over name or phone
	Sort   string // "desc" for name descending, anything else ascending
	Active string // "active" / "inactive" by whether a booking covers today
}

// List returns clients matching the filter. The active/inactive filter is
// evaluated in memory against each client's bookings, as the original did.
func (s *ClientService) List(filter ClientFilter) ([]models.Client, error) {
	query := s.DB.Preload("Bookings")

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}
	if filter.Sort == "desc" {
		query = query.Order("name DESC")
	} else {
		query = query.Order("name ASC")
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	if filter.Active == "" {
		return clients, nil
	}

	today := utils.DateOnly(time.Now())
	wantActive := filter.Active == "active"
	filtered := clients[:0]
	for i := range clients {
		if clients[i].HasActiveBooking(today) == wantActive {
			filtered = append(filtered, clients[i])
		}
	}
	return filtered, nil
}

func (s *ClientService) Get(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	return &client, nil
}

func (s *ClientService) Create(name, phone, notes string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrClientNameRequired
	}

	client := models.Client{
		Name:  name,
		Phone: strings.TrimSpace(phone),
		Notes: strings.TrimSpace(notes),
	}
	if err := s.DB.Create(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

func (s *ClientService) Update(id uint, name, phone, notes string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrClientNameRequired
	}

	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	client.Name = name
	client.Phone = strings.TrimSpace(phone)
	client.Notes = strings.TrimSpace(notes)
	if err := s.DB.Save(client).Error; err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// Delete removes a client. A client with bookings cannot be deleted; the
// operator has to clear the bookings first.
func (s *ClientService) Delete(id uint) error {
	client, err := s.Get(id)
	if err != nil {
		return err
	}

	var bookings int64
	if err := s.DB.Model(&models.Booking{}).Where("client_id = ?", client.ID).Count(&bookings).Error; err != nil {
		return fmt.Errorf("failed to count bookings: %w", err)
	}
	if bookings > 0 {
		return ErrClientHasBookings
	}

	if err := s.DB.Delete(client).Error; err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
