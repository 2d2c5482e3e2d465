package routes

import (
	"github.com/gin-gonic/gin"

	"mandapbook/handlers"
	"mandapbook/middleware"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
// Reservation creation and edits are user-only; cancellation and payment
// settlement also admit the venue's provider, which the service checks per
// booking.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/bookings")
	booking.Use(middleware.JWTAuthUserMiddleware())
	{
		booking.POST("", hb.CreateBookingHandler)
		booking.GET("", hb.ListMyBookingsHandler)
		booking.GET("/:id", hb.GetBookingHandler)
		booking.PATCH("/:id", hb.UpdateBookingHandler)
		booking.POST("/:id/cancel", hb.CancelBookingHandler)
		booking.POST("/:id/payment", hb.CompletePaymentHandler)
	}

	provider := r.Group("/api/bookings-provider")
	provider.Use(middleware.JWTAuthProviderMiddleware())
	{
		provider.GET("/:id", hb.GetBookingHandler)
		provider.POST("/:id/cancel", hb.CancelBookingHandler)
		provider.POST("/:id/payment", hb.CompletePaymentHandler)
	}
}
