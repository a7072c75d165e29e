package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"parking-backend/models"
	"parking-backend/utils"
)

// ReportKind selects which financial report to build.
type ReportKind string

const (
	ReportPayments ReportKind = "payments"
	ReportCharges  ReportKind = "charges"
	ReportFinance  ReportKind = "finance"
)

// ReportTable is a rendered tabular report. Totals are only present on the
// finance report.
type ReportTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`

	TotalCharged string `json:"total_charged,omitempty"`
	TotalPaid    string `json:"total_paid,omitempty"`
	TotalBalance string `json:"total_balance,omitempty"`
}

// ReportService aggregates booking charges and payments into report tables.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// Build produces the requested report for [start, end], optionally filtered
// by parking lot. An unrecognized kind yields no table and no error — report
// kind is treated as optional unvalidated input.
func (s *ReportService) Build(kind ReportKind, start, end time.Time, parkingID *uint) (*ReportTable, error) {
	switch kind {
	case ReportPayments:
		return s.payments(start, end, parkingID)
	case ReportCharges:
		return s.charges(start, end, parkingID)
	case ReportFinance:
		return s.finance(start, end, parkingID)
	default:
		return nil, nil
	}
}

// payments selects payments dated within the range, boundaries inclusive.
func (s *ReportService) payments(start, end time.Time, parkingID *uint) (*ReportTable, error) {
	query := s.DB.Model(&models.Payment{}).
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Joins("JOIN parking_spots ON parking_spots.id = bookings.spot_id").
		Where("payments.payment_date >= ? AND payments.payment_date <= ?", start, end).
		Preload("Booking.Client").
		Preload("Booking.Spot.Parking").
		Order("payments.payment_date ASC")
	if parkingID != nil {
		query = query.Where("parking_spots.parking_id = ?", *parkingID)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	return buildPaymentsTable(payments), nil
}

// chargedBookings selects bookings whose entire span falls inside the range.
// This is a containment test, not an overlap test: a booking crossing either
// boundary is excluded.
func (s *ReportService) chargedBookings(start, end time.Time, parkingID *uint, withPayments bool) ([]models.Booking, error) {
	query := s.DB.Model(&models.Booking{}).
		Joins("JOIN parking_spots ON parking_spots.id = bookings.spot_id").
		Where("bookings.start_date >= ? AND bookings.end_date <= ?", start, end).
		Preload("Client").
		Preload("Spot.Parking").
		Order("bookings.start_date ASC")
	if parkingID != nil {
		query = query.Where("parking_spots.parking_id = ?", *parkingID)
	}
	if withPayments {
		query = query.Preload("Payments")
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return bookings, nil
}

func (s *ReportService) charges(start, end time.Time, parkingID *uint) (*ReportTable, error) {
	bookings, err := s.chargedBookings(start, end, parkingID, false)
	if err != nil {
		return nil, err
	}
	return buildChargesTable(bookings), nil
}

func (s *ReportService) finance(start, end time.Time, parkingID *uint) (*ReportTable, error) {
	bookings, err := s.chargedBookings(start, end, parkingID, true)
	if err != nil {
		return nil, err
	}
	return buildFinanceTable(bookings), nil
}

// clientName falls back to a dash when the client row is gone.
func clientName(c models.Client) string {
	if c.ID == 0 {
		return "—"
	}
	return c.Name
}

// parkingAddress falls back to a dash when the spot or lot row is gone.
func parkingAddress(spot models.ParkingSpot) string {
	if spot.ID == 0 || spot.Parking.ID == 0 {
		return "—"
	}
	return spot.Parking.Address
}

func bookingPeriod(b *models.Booking) string {
	return utils.FormatDate(b.StartDate) + " — " + utils.FormatDate(b.EndDate)
}

func buildPaymentsTable(payments []models.Payment) *ReportTable {
	table := &ReportTable{
		Columns: []string{"Дата", "Арендатор", "Парковка", "Сумма"},
		Rows:    make([][]string, 0, len(payments)),
	}
	for i := range payments {
		p := &payments[i]
		table.Rows = append(table.Rows, []string{
			utils.FormatDate(p.PaymentDate),
			clientName(p.Booking.Client),
			parkingAddress(p.Booking.Spot),
			utils.FormatAmount(p.Amount),
		})
	}
	return table
}

func buildChargesTable(bookings []models.Booking) *ReportTable {
	table := &ReportTable{
		Columns: []string{"Период", "Арендатор", "Парковка", "Начислено"},
		Rows:    make([][]string, 0, len(bookings)),
	}
	for i := range bookings {
		b := &bookings[i]
		table.Rows = append(table.Rows, []string{
			bookingPeriod(b),
			clientName(b.Client),
			parkingAddress(b.Spot),
			utils.FormatAmountPtr(b.RentSize),
		})
	}
	return table
}

// buildFinanceTable emits charged/paid/balance per booking plus exact decimal
// running totals, so total_balance always equals total_charged − total_paid.
func buildFinanceTable(bookings []models.Booking) *ReportTable {
	table := &ReportTable{
		Columns: []string{"Период", "Арендатор", "Адрес", "Начислено", "Оплачено", "Остаток"},
		Rows:    make([][]string, 0, len(bookings)),
	}

	totalCharged := decimal.Zero
	totalPaid := decimal.Zero

	for i := range bookings {
		b := &bookings[i]
		charged := b.Rent()

		paid := decimal.Zero
		for _, p := range b.Payments {
			paid = paid.Add(p.Amount)
		}
		balance := charged.Sub(paid)

		totalCharged = totalCharged.Add(charged)
		totalPaid = totalPaid.Add(paid)

		table.Rows = append(table.Rows, []string{
			bookingPeriod(b),
			clientName(b.Client),
			parkingAddress(b.Spot),
			utils.FormatAmount(charged),
			utils.FormatAmount(paid),
			utils.FormatAmount(balance),
		})
	}

	table.TotalCharged = utils.FormatAmount(totalCharged)
	table.TotalPaid = utils.FormatAmount(totalPaid)
	table.TotalBalance = utils.FormatAmount(totalCharged.Sub(totalPaid))
	return table
}
