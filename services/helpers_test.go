package services_test

import (
	"testing"
	"time"

	"hoteljt/models"
	"hoteljt/services"
	"hoteljt/services/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fixedClock pins "today" so status and report math is deterministic.
type fixedClock struct {
	today time.Time
}

func (f fixedClock) Now() time.Time   { return f.today }
func (f fixedClock) Today() time.Time { return f.today }

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Guest{}, &models.Booking{}))
	return db
}

func date(t *testing.T, value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func createRoom(t *testing.T, db *gorm.DB, number, rate string) models.Room {
	room := models.Room{Number: number, RoomType: "Single", Rate: decimal.RequireFromString(rate)}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func createGuest(t *testing.T, db *gorm.DB, name string) models.Guest {
	guest := models.Guest{Name: name}
	require.NoError(t, db.Create(&guest).Error)
	return guest
}

func newBookingService(db *gorm.DB, clock services.Clock) *services.BookingService {
	return services.NewBookingService(services.BookingServiceOptions{
		DB:     db,
		Clock:  clock,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})
}
