package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBookingTotalAmount(t *testing.T) {
	tests := []struct {
		name      string
		rent      *decimal.Decimal
		utilities *decimal.Decimal
		want      string
	}{
		{"rent plus utilities", amount("5000.00"), amount("750.50"), "5750.50"},
		{"null utilities", amount("5000.00"), nil, "5000.00"},
		{"null rent", nil, amount("300.00"), "300.00"},
		{"both null", nil, nil, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{RentSize: tt.rent, Utilities: tt.utilities}
			if got := b.TotalAmount().StringFixed(2); got != tt.want {
				t.Errorf("TotalAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBookingRentNullAsZero(t *testing.T) {
	b := &Booking{}
	if !b.Rent().IsZero() {
		t.Errorf("Rent() on null rent = %s, want 0", b.Rent())
	}
}

// Relations are plain structs, so they always serialize; clients of the API
// rely on the keys being present even when the relation was not preloaded.
func TestBookingJSONAlwaysCarriesRelations(t *testing.T) {
	raw, err := json.Marshal(&Booking{ID: 1})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got map[string]json.RawMessage
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"spot", "client"} {
		if _, ok := got[key]; !ok {
			t.Errorf("marshaled booking missing %q key", key)
		}
	}
}
