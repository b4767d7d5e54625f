package services

import (
	"context"
	"time"

	"hoteljt/dto"
	"hoteljt/errors"
	"hoteljt/models"
	"hoteljt/services/logger"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = time.Minute
)

// ReportService derives the dashboard and the date-ranged report figures
// from the booking history.
type ReportService struct {
	db    *gorm.DB
	rdb   *redis.Client
	clock Clock
	log   logger.Logger
}

func NewReportService(db *gorm.DB, rdb *redis.Client, clock Clock, log logger.Logger) *ReportService {
	return &ReportService{db: db, rdb: rdb, clock: clock, log: log}
}

// Dashboard computes today's occupancy, the revenue of the current calendar
// month and the next five check-ins. The summary is served from a short-TTL
// cache when Redis is configured; booking mutations delete the key.
func (s *ReportService) Dashboard() (*dto.DashboardSummary, error) {
	var cached dto.DashboardSummary
	if err := GetFromRedis(context.Background(), s.rdb, dashboardCacheKey, &cached); err == nil && cached.TotalRooms > 0 {
		return &cached, nil
	}

	today := s.clock.Today()

	var occupied int64
	err := s.db.Model(&models.Booking{}).
		Where("status = ? AND check_in <= ? AND check_out > ?", models.BookingStatusCheckedIn, today, today).
		Count(&occupied).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to count occupied rooms", err)
	}

	var totalRooms int64
	if err := s.db.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to count rooms", err)
	}

	startMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := startMonth.AddDate(0, 1, 0)
	revenue, err := s.revenueBetween(startMonth, nextMonth)
	if err != nil {
		return nil, err
	}

	var upcoming []models.Booking
	err = s.db.Preload("Room").Preload("Guest").
		Where("status = ? AND check_in >= ?", models.BookingStatusReserved, today).
		Order("check_in ASC").
		Limit(5).
		Find(&upcoming).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load upcoming check-ins", err)
	}

	summary := &dto.DashboardSummary{
		OccupiedToday: occupied,
		TotalRooms:    totalRooms,
		MonthRevenue:  revenue,
		Upcoming:      dto.ToBookingResponses(upcoming),
	}

	if err := SetToRedis(context.Background(), s.rdb, dashboardCacheKey, summary, dashboardCacheTTL); err != nil {
		s.log.Error("failed to cache dashboard summary: %v", err)
	}

	return summary, nil
}

// PeriodReport computes revenue and the occupancy rate for [start, end).
// An unparsable or inverted range falls back to the current calendar month
// and carries a validation message instead of failing.
func (s *ReportService) PeriodReport(startStr, endStr string) (*dto.PeriodReport, error) {
	start, end, message := s.resolvePeriod(startStr, endStr)

	revenue, err := s.revenueBetween(start, end)
	if err != nil {
		return nil, err
	}

	occupiedNights, rate, err := s.occupancyRate(start, end)
	if err != nil {
		return nil, err
	}

	return &dto.PeriodReport{
		Start:          start.Format("2006-01-02"),
		End:            end.Format("2006-01-02"),
		Revenue:        revenue,
		OccupiedNights: occupiedNights,
		OccupancyRate:  rate,
		Message:        message,
	}, nil
}

// resolvePeriod parses the requested range and falls back to the current
// month on invalid input, returning the user-facing message if it did.
func (s *ReportService) resolvePeriod(startStr, endStr string) (time.Time, time.Time, string) {
	if startStr != "" && endStr != "" {
		start, errStart := time.Parse("2006-01-02", startStr)
		end, errEnd := time.Parse("2006-01-02", endStr)
		if errStart != nil || errEnd != nil {
			return s.defaultPeriod("invalid dates, showing the current month")
		}
		start = Midnight(start)
		end = Midnight(end)
		if !end.After(start) {
			return s.defaultPeriod("end date must be after start date, showing the current month")
		}
		return start, end, ""
	}
	return s.defaultPeriod("")
}

func (s *ReportService) defaultPeriod(message string) (time.Time, time.Time, string) {
	today := s.clock.Today()
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), message
}

// revenueBetween sums checked-out totals whose departure falls in
// [start, end). Amounts are summed as decimals, never floats.
func (s *ReportService) revenueBetween(start, end time.Time) (decimal.Decimal, error) {
	var departed []models.Booking
	err := s.db.
		Where("status = ? AND check_out >= ? AND check_out < ?", models.BookingStatusCheckedOut, start, end).
		Find(&departed).Error
	if err != nil {
		return decimal.Zero, errors.NewAppError(errors.ErrCodeDBError, "failed to load revenue bookings", err)
	}

	revenue := decimal.Zero
	for _, b := range departed {
		revenue = revenue.Add(b.TotalAmount)
	}
	return revenue, nil
}

// occupancyRate sums the per-booking overlap with [start, end) in nights and
// divides by rooms × nights in the period. A zero denominator yields 0.
func (s *ReportService) occupancyRate(start, end time.Time) (int, float64, error) {
	periodNights := int(end.Sub(start).Hours() / 24)

	var totalRooms int64
	if err := s.db.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to count rooms", err)
	}

	available := periodNights * int(totalRooms)
	if available <= 0 {
		return 0, 0, nil
	}

	var stays []models.Booking
	err := s.db.
		Where("status IN ? AND check_in < ? AND check_out > ?",
			[]string{models.BookingStatusCheckedIn, models.BookingStatusCheckedOut}, end, start).
		Find(&stays).Error
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to load stays", err)
	}

	occupiedNights := 0
	for _, b := range stays {
		overlapStart := maxTime(b.CheckIn, start)
		overlapEnd := minTime(b.CheckOut, end)
		if nights := int(overlapEnd.Sub(overlapStart).Hours() / 24); nights > 0 {
			occupiedNights += nights
		}
	}

	rate := float64(occupiedNights) / float64(available) * 100
	return occupiedNights, rate, nil
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
