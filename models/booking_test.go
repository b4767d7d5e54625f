package models_test

import (
	"testing"
	"time"

	"hoteljt/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}

func TestBookingNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"two nights", "2024-03-10", "2024-03-12", 2},
		{"one night", "2024-03-10", "2024-03-11", 1},
		{"same day clamps to one", "2024-03-10", "2024-03-10", 1},
		{"full week", "2024-03-01", "2024-03-08", 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := models.Booking{CheckIn: day(t, tc.checkIn), CheckOut: day(t, tc.checkOut)}
			assert.Equal(t, tc.want, b.Nights())
		})
	}
}

func TestBookingComputeAmountExact(t *testing.T) {
	b := models.Booking{CheckIn: day(t, "2024-03-10"), CheckOut: day(t, "2024-03-13")}

	// Fixed-point math keeps cent amounts exact.
	total := b.ComputeAmount(decimal.RequireFromString("110.37"))
	assert.True(t, total.Equal(decimal.RequireFromString("331.11")), "total = %s, want 331.11", total)
}

func TestBookingIsTerminal(t *testing.T) {
	assert.False(t, (&models.Booking{Status: models.BookingStatusReserved}).IsTerminal())
	assert.False(t, (&models.Booking{Status: models.BookingStatusCheckedIn}).IsTerminal())
	assert.True(t, (&models.Booking{Status: models.BookingStatusCheckedOut}).IsTerminal())
	assert.True(t, (&models.Booking{Status: models.BookingStatusCancelled}).IsTerminal())
}

func TestBookingCoversHalfOpenInterval(t *testing.T) {
	b := models.Booking{CheckIn: day(t, "2024-03-10"), CheckOut: day(t, "2024-03-12")}

	assert.False(t, b.Covers(day(t, "2024-03-09")))
	assert.True(t, b.Covers(day(t, "2024-03-10")))
	assert.True(t, b.Covers(day(t, "2024-03-11")))
	assert.False(t, b.Covers(day(t, "2024-03-12")))
}
