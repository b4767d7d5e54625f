package controllers

import (
	"strconv"

	"hoteljt/errors"
	"hoteljt/response"

	"github.com/gin-gonic/gin"
)

// handleError maps a service error onto the HTTP surface. Anything that is
// not an AppError is an infrastructure failure and must surface as a 500,
// never be swallowed.
func handleError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeDBNotFound:
		response.NotFound(c)
	case errors.ErrCodeRoomUnavailable:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeInvalidDateRange,
		errors.ErrCodeInvalidTransition,
		errors.ErrCodeValidation,
		errors.ErrCodeRequiredField,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeDBDuplicate:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}

// parseIDParam reads a positive numeric :id path parameter.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
