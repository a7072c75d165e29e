package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"parking-backend/models"
	"parking-backend/utils"
)

// Client-card validation errors, surfaced to the operator as-is.
var (
	ErrSpotRequired   = errors.New("spot_id is required")
	ErrStartRequired  = errors.New("start_date is required")
	ErrEndRequired    = errors.New("end_date is required")
	ErrRentRequired   = errors.New("rent_size is required")
	ErrClientRequired = errors.New("existing_client_id is required")
	ErrStartNotBefore = errors.New("start_date must be before end_date")
	ErrClientNotFound = errors.New("client not found")
	ErrSpotNotFound   = errors.New("parking spot not found")
)

// BookingService implements the client-card save: one atomic upsert of the
// client's current booking and, optionally, a payment against it.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// ClientCardInput carries the client-card form fields. Creating a new client
// inline is not supported: ExistingClientID must resolve to a stored client.
type ClientCardInput struct {
	ExistingClientID uint             `json:"existing_client_id"`
	SpotID           uint             `json:"spot_id"`
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	RentSize         *decimal.Decimal `json:"rent_size"`
	Notes            string           `json:"notes"`
	PaymentAmount    *decimal.Decimal `json:"payment_amount"`
	PaymentDate      string           `json:"payment_date"`
}

// validate checks required fields and parses the dates. It runs before any
// write so a failing save never touches the database.
func (in *ClientCardInput) validate() (start, end time.Time, err error) {
	if in.SpotID == 0 {
		return start, end, ErrSpotRequired
	}
	if in.StartDate == "" {
		return start, end, ErrStartRequired
	}
	if in.EndDate == "" {
		return start, end, ErrEndRequired
	}
	if in.RentSize == nil {
		return start, end, ErrRentRequired
	}
	if in.ExistingClientID == 0 {
		return start, end, ErrClientRequired
	}

	start, err = utils.ParseDate(in.StartDate)
	if err != nil {
		return start, end, err
	}
	end, err = utils.ParseDate(in.EndDate)
	if err != nil {
		return start, end, err
	}
	if !start.Before(end) {
		return start, end, ErrStartNotBefore
	}
	return start, end, nil
}

// SaveClientCard upserts the client's current booking and optional payment in
// one transaction. The business rule: a client has at most one booking
// editable through this flow — the most recent one by start date. If it
// exists it is updated in place, otherwise a new booking is created.
func (s *BookingService) SaveClientCard(in ClientCardInput) (*models.Booking, error) {
	start, end, err := in.validate()
	if err != nil {
		return nil, err
	}

	var paymentDate *time.Time
	if in.PaymentDate != "" {
		d, err := utils.ParseDate(in.PaymentDate)
		if err != nil {
			return nil, err
		}
		paymentDate = &d
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, in.ExistingClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("failed to load client: %w", err)
		}

		var spot models.ParkingSpot
		if err := tx.First(&spot, in.SpotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSpotNotFound
			}
			return fmt.Errorf("failed to load spot: %w", err)
		}

		err := tx.Where("client_id = ?", client.ID).
			Order("start_date DESC, id DESC").
			First(&booking).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"spot_id":    spot.ID,
				"start_date": start,
				"end_date":   end,
				"rent_size":  in.RentSize,
				"notes":      in.Notes,
			}
			if err := tx.Model(&booking).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update booking: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			booking = models.Booking{
				SpotID:    spot.ID,
				ClientID:  client.ID,
				StartDate: start,
				EndDate:   end,
				RentSize:  in.RentSize,
				Notes:     in.Notes,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return fmt.Errorf("failed to create booking: %w", err)
			}
		default:
			return fmt.Errorf("failed to load booking: %w", err)
		}

		if in.PaymentAmount != nil {
			if err := upsertPayment(tx, booking.ID, *in.PaymentAmount, paymentDate); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// upsertPayment updates the booking's most recent payment, or creates one
// when the booking has none. A missing date defaults to today for new
// payments and is left unchanged on updates.
func upsertPayment(tx *gorm.DB, bookingID uint, amount decimal.Decimal, date *time.Time) error {
	var payment models.Payment
	err := tx.Where("booking_id = ?", bookingID).
		Order("payment_date DESC, id DESC").
		First(&payment).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{"amount": amount}
		if date != nil {
			updates["payment_date"] = *date
		}
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		paymentDate := utils.DateOnly(time.Now())
		if date != nil {
			paymentDate = *date
		}
		payment = models.Payment{
			BookingID:   bookingID,
			Amount:      amount,
			PaymentDate: paymentDate,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
	default:
		return fmt.Errorf("failed to load payment: %w", err)
	}
	return nil
}

// ClientCard is the GET-side prefill: the client's current booking (most
// recent by start date) and that booking's most recent payment, if any.
type ClientCard struct {
	Client  models.Client   `json:"client"`
	Booking *models.Booking `json:"booking,omitempty"`
	Payment *models.Payment `json:"payment,omitempty"`
}

// LoadClientCard returns the edit-form prefill for a client.
func (s *BookingService) LoadClientCard(clientID uint) (*ClientCard, error) {
	var client models.Client
	if err := s.DB.First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	card := &ClientCard{Client: client}

	var booking models.Booking
	err := s.DB.Where("client_id = ?", client.ID).
		Order("start_date DESC, id DESC").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return card, nil
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	card.Booking = &booking

	var payment models.Payment
	err = s.DB.Where("booking_id = ?", booking.ID).
		Order("payment_date DESC, id DESC").
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return card, nil
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	card.Payment = &payment
	return card, nil
}
