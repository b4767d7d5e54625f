package controllers

import (
	"hoteljt/dto"
	"hoteljt/response"
	"hoteljt/services"
	"hoteljt/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GuestController struct {
	service *services.GuestService
}

func NewGuestController(db *gorm.DB) *GuestController {
	return &GuestController{service: services.NewGuestService(db)}
}

// GetGuests lists guests; ?q= filters by name or document, accent- and
// typo-tolerant.
func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.service.Search(c.Query("q"))
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]dto.GuestResponse, 0, len(guests))
	for _, guest := range guests {
		responses = append(responses, dto.ToGuestResponse(guest))
	}
	response.SuccessWithTotal(c, responses, len(responses))
}

func (gc *GuestController) CreateGuest(c *gin.Context) {
	var request dto.GuestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := validator.ValidateGuest(&request); err != nil {
		handleError(c, err)
		return
	}

	guest, err := gc.service.Create(&request)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, dto.ToGuestResponse(*guest))
}

func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	guest, err := gc.service.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, dto.ToGuestResponse(*guest))
}

func (gc *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var request dto.GuestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := validator.ValidateGuest(&request); err != nil {
		handleError(c, err)
		return
	}

	guest, err := gc.service.Update(id, &request)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, dto.ToGuestResponse(*guest))
}
