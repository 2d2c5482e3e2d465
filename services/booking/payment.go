package booking

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mandapbook/models"
	"mandapbook/services/notification"
	"mandapbook/utils"
)

// CompletePayment settles a Partial booking's outstanding balance and moves
// it to Completed. The booking's user or the venue's provider may record
// the settlement; the amount must cover the full remaining balance, and
// any overshoot is clamped so amountPaid lands exactly on totalAmount.
func (s *DefaultBookingService) CompletePayment(ctx context.Context, caller Caller, bookingID string, paymentAmount int64) (*models.Booking, error) {
	booking, err := s.Repo.GetActiveByID(bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(caller, booking); err != nil {
		return nil, err
	}
	if booking.PaymentStatus != models.PaymentPartial {
		return nil, utils.Validationf("payment is already %s for this booking", booking.PaymentStatus)
	}
	if paymentAmount <= 0 {
		return nil, utils.Validationf("paymentAmount must be positive")
	}
	if remaining := booking.RemainingAmount(); paymentAmount < remaining {
		return nil, utils.Validationf("paymentAmount %d does not cover the remaining balance %d", paymentAmount, remaining)
	}

	paymentID := uuid.New().String()
	updated, err := s.Repo.CompletePayment(booking.ID, booking.TotalAmount, paymentID)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("payment completed",
		zap.String("bookingId", updated.ID),
		zap.String("paymentId", paymentID),
		zap.Int64("amountPaid", updated.AmountPaid))

	s.notify(notification.EventPaymentCompleted, map[string]string{
		"bookingId": updated.ID,
		"venueId":   updated.VenueID,
		"userId":    updated.UserID,
		"paymentId": paymentID,
		"message":   "payment completed, booking is fully settled",
	})
	return updated, nil
}
