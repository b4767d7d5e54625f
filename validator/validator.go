package validator

import (
	"regexp"
	"strings"
	"time"

	"hoteljt/dto"
	"hoteljt/errors"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for all dates handled by the API.
const DateLayout = "2006-01-02"

func init() {
	if v, ok := binding.Validator.Engine().(*playground.Validate); ok {
		v.RegisterValidation("bookdate", func(fl playground.FieldLevel) bool {
			_, err := time.Parse(DateLayout, fl.Field().String())
			return err == nil
		})
	}
}

// ParseDate parses a YYYY-MM-DD string into a UTC-midnight date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid date, expected format YYYY-MM-DD", err)
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ValidateDateRange enforces a strictly positive stay.
func ValidateDateRange(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "check-out date must be after check-in date", nil)
	}
	return nil
}

// ValidateGuest validates a guest create/update request.
func ValidateGuest(req *dto.GuestRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "guest name must not be empty", nil)
	}

	if req.Email != "" && !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeValidation, "invalid guest e-mail", nil)
	}

	if req.Phone != "" && !isValidPhone(req.Phone) {
		return errors.NewAppError(errors.ErrCodeValidation, "invalid guest phone number", nil)
	}

	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9()+\- ]{8,20}$`)
	return phoneRegex.MatchString(phone)
}
