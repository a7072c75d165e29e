package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"parking-backend/models"
	"parking-backend/utils"
)

// monthNames are the grid column headers, kept in the UI language.
var monthNames = []string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// OccupancyService builds the per-spot, per-month occupancy grid.
type OccupancyService struct {
	DB *gorm.DB
}

func NewOccupancyService(db *gorm.DB) *OccupancyService {
	return &OccupancyService{DB: db}
}

// GridCell describes the booking covering one month of one spot.
type GridCell struct {
	BookingID  uint      `json:"booking_id"`
	ClientID   uint      `json:"client_id"`
	ClientName string    `json:"client_name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	RentSize   string    `json:"rent_size"`
	SumPaid    string    `json:"sum_paid"`
	Status     string    `json:"status"`
}

// SpotGrid is one row of the grid: a spot and its twelve month cells.
// A nil cell means the spot is vacant that month.
type SpotGrid struct {
	SpotID         uint              `json:"spot_id"`
	Number         string            `json:"number"`
	ParkingID      uint              `json:"parking_id"`
	ParkingAddress string            `json:"parking_address"`
	Status         string            `json:"status"`
	Months         map[int]*GridCell `json:"months"`
}

// Grid is the full occupancy view for one year.
type Grid struct {
	Year     int              `json:"year"`
	Months   []string         `json:"months"`
	Parkings []models.Parking `json:"parkings"`
	Spots    []SpotGrid       `json:"spots"`
}

// BuildGrid computes the occupancy grid for the given year, optionally
// restricted to one parking lot. Statuses are derived from current payment
// state on every call and are never written back.
func (s *OccupancyService) BuildGrid(year int, parkingID *uint) (*Grid, error) {
	var parkings []models.Parking
	if err := s.DB.Order("address").Find(&parkings).Error; err != nil {
		return nil, fmt.Errorf("failed to load parkings: %w", err)
	}

	// Bookings are ordered by start_date then id so the first-match-wins
	// selection below is deterministic when bookings overlap.
	query := s.DB.
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date ASC, id ASC")
		}).
		Preload("Bookings.Client").
		Preload("Parking")
	if parkingID != nil {
		query = query.Where("parking_id = ?", *parkingID)
	}

	var spots []models.ParkingSpot
	if err := query.Order("number").Find(&spots).Error; err != nil {
		return nil, fmt.Errorf("failed to load spots: %w", err)
	}

	paid, err := s.paymentSums()
	if err != nil {
		return nil, err
	}

	grid := &Grid{
		Year:     year,
		Months:   monthNames,
		Parkings: parkings,
		Spots:    make([]SpotGrid, 0, len(spots)),
	}
	for i := range spots {
		grid.Spots = append(grid.Spots, buildSpotGrid(&spots[i], paid, year))
	}
	return grid, nil
}

// paymentSums loads the total paid amount per booking in a single query.
func (s *OccupancyService) paymentSums() (map[uint]decimal.Decimal, error) {
	var rows []struct {
		BookingID uint
		Total     decimal.Decimal
	}
	err := s.DB.Model(&models.Payment{}).
		Select("booking_id, COALESCE(SUM(amount), 0) AS total").
		Group("booking_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payments: %w", err)
	}

	paid := make(map[uint]decimal.Decimal, len(rows))
	for _, r := range rows {
		paid[r.BookingID] = r.Total
	}
	return paid, nil
}

// monthBounds returns the first and last day of the given month as midnight
// UTC dates. Month lengths and leap years come out of calendar arithmetic.
func monthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// bookingCovers reports whether the booking's closed interval intersects
// [monthStart, monthEnd]. Both boundaries are inclusive.
func bookingCovers(b *models.Booking, monthStart, monthEnd time.Time) bool {
	start := utils.DateOnly(b.StartDate)
	end := utils.DateOnly(b.EndDate)
	return !start.After(monthEnd) && !end.Before(monthStart)
}

// activeBookingForMonth selects the first booking covering the month.
// Callers must pass bookings sorted by start_date then id; first match wins.
func activeBookingForMonth(bookings []models.Booking, monthStart, monthEnd time.Time) *models.Booking {
	for i := range bookings {
		if bookingCovers(&bookings[i], monthStart, monthEnd) {
			return &bookings[i]
		}
	}
	return nil
}

// deriveStatus classifies a booking as occupied when it is fully paid up
// (sum of payments covers the rent) and reserved otherwise.
func deriveStatus(sumPaid decimal.Decimal, b *models.Booking) string {
	if sumPaid.GreaterThanOrEqual(b.Rent()) {
		return models.StatusOccupied
	}
	return models.StatusReserved
}

// buildSpotGrid derives the twelve month cells for one spot. The spot-level
// status mirrors the December cell, matching what the original back office
// ended up displaying after evaluating months in order.
func buildSpotGrid(spot *models.ParkingSpot, paid map[uint]decimal.Decimal, year int) SpotGrid {
	row := SpotGrid{
		SpotID:         spot.ID,
		Number:         spot.Number,
		ParkingID:      spot.ParkingID,
		ParkingAddress: spot.Parking.Address,
		Status:         models.StatusVacant,
		Months:         make(map[int]*GridCell, 12),
	}

	for month := 1; month <= 12; month++ {
		monthStart, monthEnd := monthBounds(year, month)
		booking := activeBookingForMonth(spot.Bookings, monthStart, monthEnd)
		if booking == nil {
			row.Months[month] = nil
			row.Status = models.StatusVacant
			continue
		}

		sumPaid := paid[booking.ID]
		status := deriveStatus(sumPaid, booking)
		row.Months[month] = &GridCell{
			BookingID:  booking.ID,
			ClientID:   booking.ClientID,
			ClientName: clientName(booking.Client),
			StartDate:  booking.StartDate,
			EndDate:    booking.EndDate,
			RentSize:   utils.FormatAmountPtr(booking.RentSize),
			SumPaid:    utils.FormatAmount(sumPaid),
			Status:     status,
		}
		row.Status = status
	}
	return row
}
