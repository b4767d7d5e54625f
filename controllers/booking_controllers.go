package controllers

import (
	"hoteljt/dto"
	"hoteljt/models"
	"hoteljt/response"
	"hoteljt/services"
	"hoteljt/validator"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{service: service}
}

// GetBookings lists bookings by most recent check-in; ?status= filters.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.service.List(c.Query("status"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.SuccessWithTotal(c, dto.ToBookingResponses(bookings), len(bookings))
}

func (bc *BookingController) GetBookingDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.service.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, dto.ToBookingResponse(*booking))
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	input, ok := bc.bindInput(c)
	if !ok {
		return
	}

	booking, err := bc.service.Create(input)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, dto.ToBookingResponse(*booking))
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	input, ok := bc.bindInput(c)
	if !ok {
		return
	}

	booking, err := bc.service.Update(id, input)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, dto.ToBookingResponse(*booking))
}

func (bc *BookingController) CheckIn(c *gin.Context) {
	bc.runTransition(c, bc.service.CheckIn)
}

func (bc *BookingController) CheckOut(c *gin.Context) {
	bc.runTransition(c, bc.service.CheckOut)
}

func (bc *BookingController) Cancel(c *gin.Context) {
	bc.runTransition(c, bc.service.Cancel)
}

func (bc *BookingController) runTransition(c *gin.Context, transition func(uint) (*models.Booking, error)) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := transition(id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, dto.ToBookingResponse(*booking))
}

// bindInput binds and validates the booking payload, converting the wire
// dates into UTC-midnight values.
func (bc *BookingController) bindInput(c *gin.Context) (services.BookingInput, bool) {
	var request dto.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid request body, dates must be YYYY-MM-DD")
		return services.BookingInput{}, false
	}

	checkIn, err := validator.ParseDate(request.CheckIn)
	if err != nil {
		handleError(c, err)
		return services.BookingInput{}, false
	}

	checkOut, err := validator.ParseDate(request.CheckOut)
	if err != nil {
		handleError(c, err)
		return services.BookingInput{}, false
	}

	return services.BookingInput{
		RoomID:   request.RoomID,
		GuestID:  request.GuestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Notes:    request.Notes,
	}, true
}
