package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	bookingSvc "mandapbook/services/booking"
	"mandapbook/utils"
)

// CreateBookingHandler books venue dates for the authenticated user.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	var req bookingSvc.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	booking, err := hb.Bookings.CreateBooking(c.Request.Context(), caller(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBookingHandler returns one booking with populated details.
func (hb *HandlerBundle) GetBookingHandler(c *gin.Context) {
	detail, err := hb.Bookings.GetBooking(c.Request.Context(), caller(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateBookingHandler applies a merge-patch to a booking.
func (hb *HandlerBundle) UpdateBookingHandler(c *gin.Context) {
	var req bookingSvc.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	booking, err := hb.Bookings.UpdateBooking(c.Request.Context(), caller(c), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBookingHandler cancels a booking and releases its dates.
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	if err := hb.Bookings.CancelBooking(c.Request.Context(), caller(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// CompletePaymentHandler settles a booking's remaining balance.
func (hb *HandlerBundle) CompletePaymentHandler(c *gin.Context) {
	var req struct {
		PaymentAmount int64 `json:"paymentAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	booking, err := hb.Bookings.CompletePayment(c.Request.Context(), caller(c), c.Param("id"), req.PaymentAmount)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListMyBookingsHandler lists the authenticated user's bookings.
func (hb *HandlerBundle) ListMyBookingsHandler(c *gin.Context) {
	page, limit := pagination(c)
	details, err := hb.Bookings.ListByUser(c.Request.Context(), caller(c).UserID, page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// ListProviderBookingsHandler lists bookings across the provider's venues.
func (hb *HandlerBundle) ListProviderBookingsHandler(c *gin.Context) {
	page, limit := pagination(c)
	details, err := hb.Bookings.ListByProvider(c.Request.Context(), caller(c).ProviderID, page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// ListAllBookingsHandler lists every active booking (admin).
func (hb *HandlerBundle) ListAllBookingsHandler(c *gin.Context) {
	page, limit := pagination(c)
	details, err := hb.Bookings.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
