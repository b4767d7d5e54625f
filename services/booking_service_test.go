package services_test

import (
	"testing"

	"hoteljt/errors"
	"hoteljt/models"
	"hoteljt/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateBookingComputesAmount(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	booking, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusReserved, booking.Status)
	assert.Equal(t, 2, booking.Nights())
	assert.True(t, booking.TotalAmount.Equal(decimal.RequireFromString("220.00")),
		"amount = %s, want 220.00", booking.TotalAmount)
}

func TestCreateBookingRejectsInvalidDateRange(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	for _, checkOut := range []string{"2024-03-10", "2024-03-09"} {
		_, err := svc.Create(services.BookingInput{
			RoomID:   room.ID,
			GuestID:  guest.ID,
			CheckIn:  date(t, "2024-03-10"),
			CheckOut: date(t, checkOut),
		})
		requireCode(t, err, errors.ErrCodeInvalidDateRange)
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	room := createRoom(t, db, "101", "110.00")
	first := createGuest(t, db, "Ana Souza")
	second := createGuest(t, db, "Bruno Lima")

	_, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  first.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	_, err = svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  second.ID,
		CheckIn:  date(t, "2024-03-11"),
		CheckOut: date(t, "2024-03-13"),
	})
	requireCode(t, err, errors.ErrCodeRoomUnavailable)
	assert.Contains(t, err.Error(), "Ana Souza", "conflict must name the holding guest")
	assert.Contains(t, err.Error(), "2024-03-10")
}

func TestCreateBookingAllowsBackToBackStays(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	_, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	// Half-open intervals: a new check-in on the previous check-out day is
	// not a conflict.
	_, err = svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-12"),
		CheckOut: date(t, "2024-03-14"),
	})
	assert.NoError(t, err)
}

func TestCreateBookingOtherRoomUnaffected(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	roomA := createRoom(t, db, "101", "110.00")
	roomB := createRoom(t, db, "102", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	_, err := svc.Create(services.BookingInput{
		RoomID:   roomA.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	_, err = svc.Create(services.BookingInput{
		RoomID:   roomB.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	assert.NoError(t, err)
}

func TestCreateBookingMissingReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	_, err := svc.Create(services.BookingInput{
		RoomID:   999,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	requireCode(t, err, errors.ErrCodeDBNotFound)

	_, err = svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  999,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	requireCode(t, err, errors.ErrCodeDBNotFound)
}

func TestUpdateBookingExcludesItselfFromConflictScan(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	booking, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	// Extending the same stay overlaps only itself and must succeed, with
	// the amount recomputed.
	updated, err := svc.Update(booking.ID, services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-13"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Nights())
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("330.00")))
}

func TestUpdateBookingConflictsWithOthers(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	_, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	other, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-15"),
		CheckOut: date(t, "2024-03-17"),
	})
	require.NoError(t, err)

	_, err = svc.Update(other.ID, services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-11"),
		CheckOut: date(t, "2024-03-13"),
	})
	requireCode(t, err, errors.ErrCodeRoomUnavailable)
}

func TestUpdateBookingRecomputesAmountOnRoomChange(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	cheap := createRoom(t, db, "101", "110.00")
	pricey := createRoom(t, db, "121", "360.00")
	guest := createGuest(t, db, "Ana Souza")

	booking, err := svc.Create(services.BookingInput{
		RoomID:   cheap.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(booking.ID, services.BookingInput{
		RoomID:   pricey.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("720.00")))
}

func TestUpdateRejectsTerminalBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-12")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	booking, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	_, err = svc.Cancel(booking.ID)
	require.NoError(t, err)

	_, err = svc.Update(booking.ID, services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-13"),
	})
	requireCode(t, err, errors.ErrCodeInvalidTransition)
}

func TestLifecycleReservedToCheckedOut(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-13")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	booking, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	checkedIn, err := svc.CheckIn(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedIn, checkedIn.Status)

	// Checkout stamps the departure to today and re-prices the actual stay:
	// 2024-03-10 -> 2024-03-13 is 3 nights.
	checkedOut, err := svc.CheckOut(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedOut, checkedOut.Status)
	assert.Equal(t, "2024-03-13", checkedOut.CheckOut.Format("2006-01-02"))
	assert.True(t, checkedOut.TotalAmount.Equal(decimal.RequireFromString("330.00")),
		"amount = %s, want 330.00", checkedOut.TotalAmount)
}

func TestDoubleCheckInFails(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-10")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	booking, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	_, err = svc.CheckIn(booking.ID)
	require.NoError(t, err)

	_, err = svc.CheckIn(booking.ID)
	requireCode(t, err, errors.ErrCodeInvalidTransition)

	// State must be unchanged by the failed transition.
	current, err := svc.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedIn, current.Status)
}

func TestCheckOutRequiresCheckedIn(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-10")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	booking, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	_, err = svc.CheckOut(booking.ID)
	requireCode(t, err, errors.ErrCodeInvalidTransition)
}

func TestCancelGuards(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-12")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	booking, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	// Terminal states never transition again.
	_, err = svc.Cancel(booking.ID)
	requireCode(t, err, errors.ErrCodeInvalidTransition)
	_, err = svc.CheckIn(booking.ID)
	requireCode(t, err, errors.ErrCodeInvalidTransition)
}

func TestCancelledBookingReleasesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	room := createRoom(t, db, "101", "110.00")
	guest := createGuest(t, db, "Ana Souza")

	booking, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	_, err = svc.Cancel(booking.ID)
	require.NoError(t, err)

	_, err = svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	assert.NoError(t, err)
}

func TestGetBookingNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})

	_, err := svc.GetByID(42)
	requireCode(t, err, errors.ErrCodeDBNotFound)
}

func TestListBookingsFiltersByStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db, fixedClock{today: date(t, "2024-03-01")})
	room := createRoom(t, db, "101", "110.00")
	other := createRoom(t, db, "102", "200.00")
	guest := createGuest(t, db, "Ana Souza")

	first, err := svc.Create(services.BookingInput{
		RoomID:   room.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-10"),
		CheckOut: date(t, "2024-03-12"),
	})
	require.NoError(t, err)

	_, err = svc.Create(services.BookingInput{
		RoomID:   other.ID,
		GuestID:  guest.ID,
		CheckIn:  date(t, "2024-03-15"),
		CheckOut: date(t, "2024-03-16"),
	})
	require.NoError(t, err)

	_, err = svc.Cancel(first.ID)
	require.NoError(t, err)

	reserved, err := svc.List(models.BookingStatusReserved)
	require.NoError(t, err)
	require.Len(t, reserved, 1)
	assert.Equal(t, other.ID, reserved[0].RoomID)

	all, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Most recent check-in first.
	assert.Equal(t, "2024-03-15", all[0].CheckIn.Format("2006-01-02"))
}
