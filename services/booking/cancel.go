package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mandapbook/models"
	"mandapbook/services/notification"
	"mandapbook/utils"
)

// CancelBooking deactivates the booking, moves its payment state to
// Cancelled and returns every order date to the venue's open set. Allowed
// to the booking's user or the venue's provider, and only before the first
// booked day arrives.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, caller Caller, bookingID string) error {
	booking, err := s.Repo.GetActiveByID(bookingID)
	if err != nil {
		return err
	}

	venue, err := s.authorize(caller, booking)
	if err != nil {
		return err
	}

	if first := booking.EarliestOrderDate(); first != "" && models.DayReached(first, s.now()) {
		return utils.Validationf("booking cannot be cancelled on or after its first booked date")
	}

	if err := s.Repo.CancelWithDateRelease(ctx, booking.ID, venue.ID, booking.OrderDates); err != nil {
		return err
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingId", booking.ID),
		zap.String("venueId", venue.ID),
		zap.Strings("releasedDates", booking.OrderDates))

	s.notify(notification.EventBookingCancelled, map[string]string{
		"bookingId":  booking.ID,
		"venueId":    venue.ID,
		"userId":     booking.UserID,
		"providerId": venue.ProviderID,
		"message":    fmt.Sprintf("booking for %s was cancelled", venue.Name),
	})
	return nil
}
