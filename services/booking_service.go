package services

import (
	"context"
	"fmt"
	"time"

	"hoteljt/errors"
	"hoteljt/models"
	"hoteljt/services/logger"
	"hoteljt/validator"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingInput carries the validated fields of a create/edit operation.
// Dates must already be normalized to UTC midnight.
type BookingInput struct {
	RoomID   uint
	GuestID  uint
	CheckIn  time.Time
	CheckOut time.Time
	Notes    string
}

// BookingService owns the reservation lifecycle: creation, edits, the
// availability check and the status transitions.
type BookingService struct {
	db    *gorm.DB
	rdb   *redis.Client
	clock Clock
	log   logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Clock  Clock
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		db:    opts.DB,
		rdb:   opts.Redis,
		clock: opts.Clock,
		log:   opts.Logger,
	}
}

// Create validates and persists a new booking in status reserved. The
// availability scan and the insert run in one transaction holding the room
// row, so two concurrent creations for the same room serialize.
func (s *BookingService) Create(input BookingInput) (*models.Booking, error) {
	if err := validator.ValidateDateRange(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}

	var booking *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		room, err := s.lockRoom(tx, input.RoomID)
		if err != nil {
			return err
		}

		var guest models.Guest
		if err := tx.First(&guest, input.GuestID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "guest not found", errors.ErrGuestNotFound)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "failed to load guest", err)
		}

		conflict, err := s.findConflict(tx, input.RoomID, input.CheckIn, input.CheckOut, 0)
		if err != nil {
			return err
		}
		if conflict != nil {
			return unavailableError(conflict)
		}

		b := &models.Booking{
			RoomID:   input.RoomID,
			GuestID:  input.GuestID,
			CheckIn:  input.CheckIn,
			CheckOut: input.CheckOut,
			Status:   models.BookingStatusReserved,
			Notes:    input.Notes,
		}
		b.TotalAmount = b.ComputeAmount(room.Rate)

		if err := tx.Create(b).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to create booking", err)
		}

		b.Room = *room
		b.Guest = guest
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard()
	return booking, nil
}

// Update edits a non-terminal booking. The conflict scan skips the booking's
// own row and the amount is recomputed from the (possibly new) room rate.
func (s *BookingService) Update(id uint, input BookingInput) (*models.Booking, error) {
	if err := validator.ValidateDateRange(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}

	var booking *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.First(&b, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "failed to load booking", err)
		}

		if b.IsTerminal() {
			return errors.NewAppError(errors.ErrCodeInvalidTransition,
				fmt.Sprintf("booking in status '%s' can no longer be edited", b.Status), nil)
		}

		room, err := s.lockRoom(tx, input.RoomID)
		if err != nil {
			return err
		}

		var guest models.Guest
		if err := tx.First(&guest, input.GuestID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "guest not found", errors.ErrGuestNotFound)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "failed to load guest", err)
		}

		conflict, err := s.findConflict(tx, input.RoomID, input.CheckIn, input.CheckOut, id)
		if err != nil {
			return err
		}
		if conflict != nil {
			return unavailableError(conflict)
		}

		b.RoomID = input.RoomID
		b.GuestID = input.GuestID
		b.CheckIn = input.CheckIn
		b.CheckOut = input.CheckOut
		b.Notes = input.Notes
		b.TotalAmount = b.ComputeAmount(room.Rate)

		if err := tx.Save(&b).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to update booking", err)
		}

		b.Room = *room
		b.Guest = guest
		booking = &b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard()
	return booking, nil
}

// CheckIn moves a booking from reserved to checked_in.
func (s *BookingService) CheckIn(id uint) (*models.Booking, error) {
	return s.transition(id, func(b *models.Booking) error {
		if b.Status != models.BookingStatusReserved {
			return errors.NewAppError(errors.ErrCodeInvalidTransition,
				fmt.Sprintf("only reserved bookings can check in, current status is '%s'", b.Status), nil)
		}
		b.Status = models.BookingStatusCheckedIn
		return nil
	})
}

// CheckOut moves a booking from checked_in to checked_out. The checkout date
// is stamped to today and the amount recomputed from the actual stay.
func (s *BookingService) CheckOut(id uint) (*models.Booking, error) {
	return s.transition(id, func(b *models.Booking) error {
		if b.Status != models.BookingStatusCheckedIn {
			return errors.NewAppError(errors.ErrCodeInvalidTransition,
				fmt.Sprintf("only checked-in bookings can check out, current status is '%s'", b.Status), nil)
		}
		b.CheckOut = s.clock.Today()
		b.TotalAmount = b.ComputeAmount(b.Room.Rate)
		b.Status = models.BookingStatusCheckedOut
		return nil
	})
}

// Cancel moves any non-terminal booking to cancelled.
func (s *BookingService) Cancel(id uint) (*models.Booking, error) {
	return s.transition(id, func(b *models.Booking) error {
		if b.IsTerminal() {
			return errors.NewAppError(errors.ErrCodeInvalidTransition,
				fmt.Sprintf("booking in status '%s' is already finished", b.Status), nil)
		}
		b.Status = models.BookingStatusCancelled
		return nil
	})
}

// GetByID loads a booking with its room and guest.
func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	err := s.db.Preload("Room").Preload("Guest").First(&b, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load booking", err)
	}
	return &b, nil
}

// List returns bookings by most recent check-in, optionally filtered by
// status, capped at 200 rows.
func (s *BookingService) List(status string) ([]models.Booking, error) {
	query := s.db.Preload("Room").Preload("Guest").Order("check_in DESC").Limit(200)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list bookings", err)
	}
	return bookings, nil
}

// transition applies a guarded status change atomically.
func (s *BookingService) transition(id uint, apply func(*models.Booking) error) (*models.Booking, error) {
	var booking *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.Preload("Room").Preload("Guest").First(&b, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "booking not found", errors.ErrBookingNotFound)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "failed to load booking", err)
		}

		if err := apply(&b); err != nil {
			return err
		}

		if err := tx.Save(&b).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to update booking", err)
		}

		booking = &b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard()
	return booking, nil
}

// lockRoom loads the room under a FOR UPDATE lock on postgres so the
// availability scan and the write commit as one unit. SQLite holds a single
// writer lock per transaction, which covers the same race there.
func (s *BookingService) lockRoom(tx *gorm.DB, roomID uint) (*models.Room, error) {
	query := tx
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var room models.Room
	if err := query.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "room not found", errors.ErrRoomNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room", err)
	}
	return &room, nil
}

// findConflict returns the active booking whose half-open interval overlaps
// [checkIn, checkOut) on the same room, most recent check-in first, or nil.
// excludeID skips the booking being edited.
func (s *BookingService) findConflict(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (*models.Booking, error) {
	query := tx.Preload("Guest").
		Where("room_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
			roomID, models.ActiveBookingStatuses, checkOut, checkIn).
		Order("check_in DESC")
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var conflict models.Booking
	if err := query.First(&conflict).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "availability check failed", err)
	}
	return &conflict, nil
}

func unavailableError(conflict *models.Booking) error {
	return errors.NewAppError(errors.ErrCodeRoomUnavailable,
		fmt.Sprintf("room already reserved/occupied by %s from %s to %s",
			conflict.Guest.Name,
			conflict.CheckIn.Format("2006-01-02"),
			conflict.CheckOut.Format("2006-01-02")),
		errors.ErrRoomUnavailable)
}

func (s *BookingService) invalidateDashboard() {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(context.Background(), s.rdb, dashboardCacheKey); err != nil {
		s.log.Error("failed to invalidate dashboard cache: %v", err)
	}
}
