package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"parking-backend/models"
	"parking-backend/utils"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrAmountRequired    = errors.New("amount is required")
	ErrAmountNotPositive = errors.New("amount must be positive")
)

// ExpenseService tracks outgoing costs attached to bookings.
type ExpenseService struct {
	DB *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{DB: db}
}

// ExpenseInput is the add-expense form.
type ExpenseInput struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
	ExpenseDate string           `json:"expense_date"`
}

func (s *ExpenseService) ListForBooking(bookingID uint) ([]models.Expense, error) {
	if err := s.requireBooking(bookingID); err != nil {
		return nil, err
	}

	var expenses []models.Expense
	err := s.DB.Where("booking_id = ?", bookingID).
		Order("expense_date ASC, id ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return expenses, nil
}

// Add records an expense against a booking. A missing date defaults to today.
func (s *ExpenseService) Add(bookingID uint, in ExpenseInput) (*models.Expense, error) {
	if in.Amount == nil {
		return nil, ErrAmountRequired
	}
	if !in.Amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	if err := s.requireBooking(bookingID); err != nil {
		return nil, err
	}

	expenseDate := utils.DateOnly(time.Now())
	if in.ExpenseDate != "" {
		d, err := utils.ParseDate(in.ExpenseDate)
		if err != nil {
			return nil, err
		}
		expenseDate = d
	}

	expense := models.Expense{
		BookingID:   bookingID,
		Amount:      *in.Amount,
		Description: strings.TrimSpace(in.Description),
		ExpenseDate: expenseDate,
	}
	if err := s.DB.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

func (s *ExpenseService) Delete(id uint) error {
	var expense models.Expense
	if err := s.DB.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to load expense: %w", err)
	}
	if err := s.DB.Delete(&expense).Error; err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func (s *ExpenseService) requireBooking(bookingID uint) error {
	var count int64
	if err := s.DB.Model(&models.Booking{}).Where("id = ?", bookingID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check booking: %w", err)
	}
	if count == 0 {
		return ErrBookingNotFound
	}
	return nil
}
