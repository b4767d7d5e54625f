package services

import (
	"time"

	"hoteljt/errors"
	"hoteljt/models"
	"hoteljt/services/logger"

	"gorm.io/gorm"
)

// Derived room statuses for a reference date.
const (
	RoomStatusFree     = "free"
	RoomStatusReserved = "reserved"
	RoomStatusOccupied = "occupied"
)

// RoomService exposes the catalog and the date-derived room status. Status is
// always recomputed from the booking history, never stored on the room.
type RoomService struct {
	db    *gorm.DB
	clock Clock
	log   logger.Logger
}

func NewRoomService(db *gorm.DB, clock Clock, log logger.Logger) *RoomService {
	return &RoomService{db: db, clock: clock, log: log}
}

// Status derives the room state for a reference date: the most recently
// started active booking covering the date wins. More than one candidate
// would breach the overlap invariant, so it is logged as a data-integrity
// warning and the latest check-in is taken.
func (s *RoomService) Status(roomID uint, reference time.Time) (string, error) {
	var active []models.Booking
	err := s.db.
		Where("room_id = ? AND status IN ? AND check_in <= ? AND check_out > ?",
			roomID, models.ActiveBookingStatuses, reference, reference).
		Order("check_in DESC").
		Find(&active).Error
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeDBError, "failed to derive room status", err)
	}

	if len(active) == 0 {
		return RoomStatusFree, nil
	}
	if len(active) > 1 {
		s.log.Error("data integrity: %d overlapping active bookings for room %d on %s",
			len(active), roomID, reference.Format("2006-01-02"))
	}

	if active[0].Status == models.BookingStatusCheckedIn {
		return RoomStatusOccupied, nil
	}
	return RoomStatusReserved, nil
}

// RoomWithStatus pairs a room with its derived status for today.
type RoomWithStatus struct {
	Room   models.Room
	Status string
}

// List returns the whole catalog ordered by room number, each with today's
// derived status.
func (s *RoomService) List() ([]RoomWithStatus, error) {
	var rooms []models.Room
	if err := s.db.Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list rooms", err)
	}

	today := s.clock.Today()
	items := make([]RoomWithStatus, 0, len(rooms))
	for _, room := range rooms {
		status, err := s.Status(room.ID, today)
		if err != nil {
			return nil, err
		}
		items = append(items, RoomWithStatus{Room: room, Status: status})
	}
	return items, nil
}

// GetByID loads a room, its derived status for today and its 10 most recent
// bookings.
func (s *RoomService) GetByID(id uint) (*RoomWithStatus, []models.Booking, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, errors.NewAppError(errors.ErrCodeDBNotFound, "room not found", errors.ErrRoomNotFound)
		}
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room", err)
	}

	status, err := s.Status(room.ID, s.clock.Today())
	if err != nil {
		return nil, nil, err
	}

	var recent []models.Booking
	err = s.db.Preload("Room").Preload("Guest").
		Where("room_id = ?", room.ID).
		Order("check_in DESC").
		Limit(10).
		Find(&recent).Error
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room bookings", err)
	}

	return &RoomWithStatus{Room: room, Status: status}, recent, nil
}
