package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mindease/handlers"
)

// RegisterBookingRoutes registers the booking workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", h.StartSession)
		booking.GET("/session/:sessionID", h.GetSession)
		booking.POST("/session/:sessionID/advance", h.Advance)
		booking.POST("/session/:sessionID/back", h.Back)
		booking.PUT("/session/:sessionID/date", h.SelectDate)
		booking.PUT("/session/:sessionID/time", h.SelectTime)
		booking.PUT("/session/:sessionID/alternative", h.SetAlternative)
		booking.PUT("/session/:sessionID/details", h.SetDetails)
		booking.GET("/session/:sessionID/calendar", h.CalendarGrid)
		booking.POST("/session/:sessionID/confirm", h.Confirm)
		booking.DELETE("/session/:sessionID", h.Cancel)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterBookingRoutes(r, bookingHandler)
}
