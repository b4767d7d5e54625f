package dto

import (
	"hoteljt/models"

	"github.com/shopspring/decimal"
)

// RoomResponse is the DTO returned for a room on the catalog map. Status is
// derived from the booking history for the reference date, never stored.
type RoomResponse struct {
	ID       uint            `json:"id"`
	Number   string          `json:"number"`
	RoomType string          `json:"roomType"`
	Rate     decimal.Decimal `json:"rate"`
	Status   string          `json:"status"`
}

// RoomDetailResponse is the DTO for the room detail view.
type RoomDetailResponse struct {
	RoomResponse
	RecentBookings []BookingResponse `json:"recentBookings"`
}

func ToRoomResponse(r models.Room, status string) RoomResponse {
	return RoomResponse{
		ID:       r.ID,
		Number:   r.Number,
		RoomType: r.RoomType,
		Rate:     r.Rate,
		Status:   status,
	}
}
