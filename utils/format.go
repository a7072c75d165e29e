package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateLayoutISO is the wire format for dates supplied by the frontend.
	DateLayoutISO = "2006-01-02"
	// DateLayoutDisplay is the format dates are rendered with in reports.
	DateLayoutDisplay = "02.01.2006"
)

var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

// ParseDate parses an ISO calendar date and normalizes it to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return DateOnly(t), nil
}

// DateOnly strips the time-of-day and timezone so calendar dates coming from
// different sources (form input, MySQL DATE columns) compare consistently.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date as dd.mm.yyyy for report rows.
func FormatDate(t time.Time) string {
	return t.Format(DateLayoutDisplay)
}

// FormatAmount renders a monetary amount with exactly two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatAmountPtr renders a nullable monetary amount, null as zero.
func FormatAmountPtr(d *decimal.Decimal) string {
	if d == nil {
		return decimal.Zero.StringFixed(2)
	}
	return d.StringFixed(2)
}
