package dto

import (
	"time"

	"hoteljt/models"
)

// GuestRequest is the DTO for creating or editing a guest.
type GuestRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// GuestResponse is the DTO returned for a guest.
type GuestResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToGuestResponse(g models.Guest) GuestResponse {
	document := ""
	if g.Document != nil {
		document = *g.Document
	}
	return GuestResponse{
		ID:        g.ID,
		Name:      g.Name,
		Document:  document,
		Phone:     g.Phone,
		Email:     g.Email,
		CreatedAt: g.CreatedAt,
	}
}
