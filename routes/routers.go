package routes

import (
	"hoteljt/controllers"
	"hoteljt/services"
	"hoteljt/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, clock services.Clock) {
	log := logger.NewDefaultLogger(logger.InfoLevel)

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Clock:  clock,
		Logger: log,
	})
	reportService := services.NewReportService(db, redisCli, clock, log)

	guestController := controllers.NewGuestController(db)
	roomController := controllers.NewRoomController(db, clock, log)
	bookingController := controllers.NewBookingController(bookingService)
	reportController := controllers.NewReportController(reportService)

	v1 := router.Group("/api/v1")

	v1.GET("/rooms", roomController.GetAllRooms)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)

	v1.GET("/guests", guestController.GetGuests)
	v1.POST("/guests", guestController.CreateGuest)
	v1.GET("/guests/:id", guestController.GetGuestByID)
	v1.PUT("/guests/:id", guestController.UpdateGuest)

	v1.GET("/bookings", bookingController.GetBookings)
	v1.POST("/bookings", bookingController.CreateBooking)
	v1.GET("/bookings/:id", bookingController.GetBookingDetail)
	v1.PUT("/bookings/:id", bookingController.UpdateBooking)
	v1.POST("/bookings/:id/checkin", bookingController.CheckIn)
	v1.POST("/bookings/:id/checkout", bookingController.CheckOut)
	v1.POST("/bookings/:id/cancel", bookingController.Cancel)

	v1.GET("/dashboard", reportController.GetDashboard)
	v1.GET("/reports", reportController.GetPeriodReport)
}
