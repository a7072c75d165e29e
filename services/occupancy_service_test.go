package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"parking-backend/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		start time.Time
		end   time.Time
	}{
		{"january", 2024, 1, date(2024, 1, 1), date(2024, 1, 31)},
		{"february leap year", 2024, 2, date(2024, 2, 1), date(2024, 2, 29)},
		{"february common year", 2023, 2, date(2023, 2, 1), date(2023, 2, 28)},
		{"april 30 days", 2024, 4, date(2024, 4, 1), date(2024, 4, 30)},
		{"december ends dec 31", 2024, 12, date(2024, 12, 1), date(2024, 12, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := monthBounds(tt.year, tt.month)
			if !start.Equal(tt.start) || !end.Equal(tt.end) {
				t.Errorf("monthBounds(%d, %d) = (%v, %v), want (%v, %v)",
					tt.year, tt.month, start, end, tt.start, tt.end)
			}
		})
	}
}

// Month boundaries must partition the year: each month ends the day before
// the next one starts, with no gaps or overlaps.
func TestMonthBoundsPartitionYear(t *testing.T) {
	for _, year := range []int{2023, 2024, 2100} {
		for month := 1; month <= 12; month++ {
			start, end := monthBounds(year, month)
			if end.Before(start) {
				t.Fatalf("year %d month %d: end %v before start %v", year, month, end, start)
			}
			if month < 12 {
				nextStart, _ := monthBounds(year, month+1)
				if !end.AddDate(0, 0, 1).Equal(nextStart) {
					t.Fatalf("year %d month %d: end %v does not abut next start %v",
						year, month, end, nextStart)
				}
			}
		}
	}
}

func TestBookingCovers(t *testing.T) {
	monthStart, monthEnd := monthBounds(2024, 3)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"fully inside", date(2024, 3, 5), date(2024, 3, 20), true},
		{"spans whole month", date(2024, 1, 1), date(2024, 12, 31), true},
		{"ends on first day", date(2024, 2, 1), date(2024, 3, 1), true},
		{"starts on last day", date(2024, 3, 31), date(2024, 4, 15), true},
		{"ends day before month", date(2024, 2, 1), date(2024, 2, 29), false},
		{"starts day after month", date(2024, 4, 1), date(2024, 4, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &models.Booking{StartDate: tt.start, EndDate: tt.end}
			if got := bookingCovers(b, monthStart, monthEnd); got != tt.want {
				t.Errorf("bookingCovers(%v..%v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestActiveBookingForMonthFirstMatchWins(t *testing.T) {
	// Overlapping bookings, already in start_date/id order as loaded.
	bookings := []models.Booking{
		{ID: 7, StartDate: date(2024, 3, 1), EndDate: date(2024, 3, 31)},
		{ID: 9, StartDate: date(2024, 3, 10), EndDate: date(2024, 4, 30)},
	}

	monthStart, monthEnd := monthBounds(2024, 3)
	got := activeBookingForMonth(bookings, monthStart, monthEnd)
	if got == nil || got.ID != 7 {
		t.Fatalf("expected booking 7 to win for March, got %+v", got)
	}

	monthStart, monthEnd = monthBounds(2024, 4)
	got = activeBookingForMonth(bookings, monthStart, monthEnd)
	if got == nil || got.ID != 9 {
		t.Fatalf("expected booking 9 for April, got %+v", got)
	}

	monthStart, monthEnd = monthBounds(2024, 5)
	if got := activeBookingForMonth(bookings, monthStart, monthEnd); got != nil {
		t.Fatalf("expected no booking for May, got %+v", got)
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name    string
		sumPaid decimal.Decimal
		rent    *decimal.Decimal
		want    string
	}{
		{"fully paid", dec("5000.00"), decPtr("5000.00"), models.StatusOccupied},
		{"overpaid", dec("6000.00"), decPtr("5000.00"), models.StatusOccupied},
		{"partially paid", dec("2000.00"), decPtr("5000.00"), models.StatusReserved},
		{"nothing paid", decimal.Zero, decPtr("5000.00"), models.StatusReserved},
		{"null rent counts as zero", decimal.Zero, nil, models.StatusOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &models.Booking{RentSize: tt.rent}
			if got := deriveStatus(tt.sumPaid, b); got != tt.want {
				t.Errorf("deriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSpotGridVacantSpot(t *testing.T) {
	spot := &models.ParkingSpot{ID: 1, Number: "A1"}
	row := buildSpotGrid(spot, map[uint]decimal.Decimal{}, 2024)

	if row.Status != models.StatusVacant {
		t.Errorf("spot status = %q, want %q", row.Status, models.StatusVacant)
	}
	for month := 1; month <= 12; month++ {
		if row.Months[month] != nil {
			t.Errorf("month %d: expected vacant cell, got %+v", month, row.Months[month])
		}
	}
}

func TestBuildSpotGridPaidBooking(t *testing.T) {
	spot := &models.ParkingSpot{
		ID:     1,
		Number: "A1",
		Bookings: []models.Booking{
			{
				ID:        10,
				ClientID:  3,
				Client:    models.Client{ID: 3, Name: "Иванов"},
				StartDate: date(2024, 3, 1),
				EndDate:   date(2024, 3, 31),
				RentSize:  decPtr("5000.00"),
			},
		},
	}

	t.Run("fully paid is occupied", func(t *testing.T) {
		paid := map[uint]decimal.Decimal{10: dec("5000.00")}
		row := buildSpotGrid(spot, paid, 2024)

		cell := row.Months[3]
		if cell == nil {
			t.Fatal("expected a March cell")
		}
		if cell.Status != models.StatusOccupied {
			t.Errorf("march status = %q, want %q", cell.Status, models.StatusOccupied)
		}
		if cell.SumPaid != "5000.00" || cell.RentSize != "5000.00" {
			t.Errorf("cell amounts = %q paid / %q rent", cell.SumPaid, cell.RentSize)
		}
		if row.Months[2] != nil || row.Months[4] != nil {
			t.Error("booking must not leak into adjacent months")
		}
		// December is empty, so the spot-level status is vacant.
		if row.Status != models.StatusVacant {
			t.Errorf("spot status = %q, want %q", row.Status, models.StatusVacant)
		}
	})

	t.Run("partially paid is reserved", func(t *testing.T) {
		paid := map[uint]decimal.Decimal{10: dec("2000.00")}
		row := buildSpotGrid(spot, paid, 2024)

		cell := row.Months[3]
		if cell == nil {
			t.Fatal("expected a March cell")
		}
		if cell.Status != models.StatusReserved {
			t.Errorf("march status = %q, want %q", cell.Status, models.StatusReserved)
		}
	})

	t.Run("no payments at all is reserved", func(t *testing.T) {
		row := buildSpotGrid(spot, map[uint]decimal.Decimal{}, 2024)
		if cell := row.Months[3]; cell == nil || cell.Status != models.StatusReserved {
			t.Errorf("march cell = %+v, want reserved", row.Months[3])
		}
	})
}

func TestBuildSpotGridYearLongBooking(t *testing.T) {
	spot := &models.ParkingSpot{
		ID:     2,
		Number: "B2",
		Bookings: []models.Booking{
			{
				ID:        20,
				StartDate: date(2024, 1, 15),
				EndDate:   date(2024, 12, 20),
				RentSize:  decPtr("1000.00"),
			},
		},
	}

	paid := map[uint]decimal.Decimal{20: dec("1000.00")}
	row := buildSpotGrid(spot, paid, 2024)

	for month := 1; month <= 12; month++ {
		cell := row.Months[month]
		if cell == nil || cell.BookingID != 20 {
			t.Fatalf("month %d: expected booking 20, got %+v", month, cell)
		}
		if cell.Status != models.StatusOccupied {
			t.Errorf("month %d status = %q, want %q", month, cell.Status, models.StatusOccupied)
		}
	}
	// December cell carries the booking, so the spot shows as occupied.
	if row.Status != models.StatusOccupied {
		t.Errorf("spot status = %q, want %q", row.Status, models.StatusOccupied)
	}

	// Other years see the same spot as vacant.
	row = buildSpotGrid(spot, paid, 2025)
	for month := 1; month <= 12; month++ {
		if row.Months[month] != nil {
			t.Errorf("2025 month %d: expected vacant, got %+v", month, row.Months[month])
		}
	}
}

func TestBuildSpotGridMissingClientRendersDash(t *testing.T) {
	spot := &models.ParkingSpot{
		ID:     3,
		Number: "C3",
		Bookings: []models.Booking{
			{
				ID:        30,
				ClientID:  99, // row deleted out from under the booking
				StartDate: date(2024, 5, 1),
				EndDate:   date(2024, 5, 31),
				RentSize:  decPtr("1000.00"),
			},
		},
	}

	row := buildSpotGrid(spot, map[uint]decimal.Decimal{}, 2024)

	cell := row.Months[5]
	if cell == nil {
		t.Fatal("expected a May cell")
	}
	// Same fallback the reports use for orphaned bookings.
	if cell.ClientName != "—" {
		t.Errorf("client name = %q, want %q", cell.ClientName, "—")
	}
}
