package dto

import (
	"time"

	"hoteljt/models"

	"github.com/shopspring/decimal"
)

// BookingRequest is the DTO for creating or editing a booking.
type BookingRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	GuestID  uint   `json:"guestId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required,bookdate"`
	CheckOut string `json:"checkOut" binding:"required,bookdate"`
	Notes    string `json:"notes"`
}

// BookingResponse is the DTO returned for a booking.
type BookingResponse struct {
	ID          uint            `json:"id"`
	RoomID      uint            `json:"roomId"`
	RoomNumber  string          `json:"roomNumber"`
	GuestID     uint            `json:"guestId"`
	GuestName   string          `json:"guestName"`
	CheckIn     string          `json:"checkIn"`
	CheckOut    string          `json:"checkOut"`
	Nights      int             `json:"nights"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func ToBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		RoomID:      b.RoomID,
		RoomNumber:  b.Room.Number,
		GuestID:     b.GuestID,
		GuestName:   b.Guest.Name,
		CheckIn:     b.CheckIn.Format("2006-01-02"),
		CheckOut:    b.CheckOut.Format("2006-01-02"),
		Nights:      b.Nights(),
		Status:      b.Status,
		Notes:       b.Notes,
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
	}
}

func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, ToBookingResponse(b))
	}
	return responses
}
