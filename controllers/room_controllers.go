package controllers

import (
	"hoteljt/dto"
	"hoteljt/response"
	"hoteljt/services"
	"hoteljt/services/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(db *gorm.DB, clock services.Clock, log logger.Logger) *RoomController {
	return &RoomController{service: services.NewRoomService(db, clock, log)}
}

// GetAllRooms returns the room map: every unit with its derived status for
// today.
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	items, err := rc.service.List()
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]dto.RoomResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.ToRoomResponse(item.Room, item.Status))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

// GetRoomDetail returns one room with its status and recent booking history.
func (rc *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, recent, err := rc.service.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, dto.RoomDetailResponse{
		RoomResponse:   dto.ToRoomResponse(item.Room, item.Status),
		RecentBookings: dto.ToBookingResponses(recent),
	})
}
