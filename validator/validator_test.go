package validator_test

import (
	"testing"
	"time"

	"hoteljt/dto"
	"hoteljt/errors"
	"hoteljt/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := validator.ParseDate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseDateRejectsBadFormats(t *testing.T) {
	for _, value := range []string{"", "10/03/2024", "2024-3-10", "2024-03-10T00:00:00Z", "not-a-date"} {
		_, err := validator.ParseDate(value)
		require.Error(t, err, "value %q", value)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr, "value %q", value)
		assert.Equal(t, errors.ErrCodeInvalidFormat, appErr.Code)
	}
}

func TestValidateDateRange(t *testing.T) {
	checkIn := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, validator.ValidateDateRange(checkIn, checkIn.AddDate(0, 0, 1)))

	err := validator.ValidateDateRange(checkIn, checkIn)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidDateRange, appErr.Code)

	err = validator.ValidateDateRange(checkIn, checkIn.AddDate(0, 0, -1))
	assert.Error(t, err)
}

func TestValidateGuest(t *testing.T) {
	cases := []struct {
		name     string
		req      dto.GuestRequest
		wantCode errors.ErrorCode
	}{
		{"valid full", dto.GuestRequest{Name: "Ana Souza", Email: "ana@example.com", Phone: "+55 11 99999-0000"}, ""},
		{"valid name only", dto.GuestRequest{Name: "Ana Souza"}, ""},
		{"blank name", dto.GuestRequest{Name: "   "}, errors.ErrCodeRequiredField},
		{"bad email", dto.GuestRequest{Name: "Ana Souza", Email: "not-an-email"}, errors.ErrCodeValidation},
		{"bad phone", dto.GuestRequest{Name: "Ana Souza", Phone: "abc"}, errors.ErrCodeValidation},
		{"short phone", dto.GuestRequest{Name: "Ana Souza", Phone: "1234"}, errors.ErrCodeValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateGuest(&tc.req)
			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tc.wantCode, appErr.Code)
		})
	}
}
