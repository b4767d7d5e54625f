package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking status constants
const (
	BookingStatusReserved   = "reserved"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

// ActiveBookingStatuses are the statuses that hold a room for their dates.
var ActiveBookingStatuses = []string{BookingStatusReserved, BookingStatusCheckedIn}

type Booking struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	RoomID      uint            `json:"roomId" gorm:"index;not null"`
	Room        Room            `json:"room" gorm:"foreignKey:RoomID"`
	GuestID     uint            `json:"guestId" gorm:"index;not null"`
	Guest       Guest           `json:"guest" gorm:"foreignKey:GuestID"`
	CheckIn     time.Time       `json:"checkIn" gorm:"type:date;index;not null"`
	CheckOut    time.Time       `json:"checkOut" gorm:"type:date;index;not null"`
	Status      string          `json:"status" gorm:"size:20;not null;default:reserved"`
	Notes       string          `json:"notes" gorm:"type:text"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Nights counts the charged nights of the stay. A stay whose check-out lands
// on the check-in day still charges one night.
func (b *Booking) Nights() int {
	nights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// ComputeAmount prices the stay at the given nightly rate.
func (b *Booking) ComputeAmount(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(b.Nights())))
}

// IsTerminal reports whether no further status transition is permitted.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCheckedOut || b.Status == BookingStatusCancelled
}

// Covers reports whether d falls inside the half-open [CheckIn, CheckOut).
func (b *Booking) Covers(d time.Time) bool {
	return !d.Before(b.CheckIn) && d.Before(b.CheckOut)
}
