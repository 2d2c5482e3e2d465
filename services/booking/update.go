package booking

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"mandapbook/models"
	"mandapbook/services/notification"
	"mandapbook/utils"
)

// UpdateBooking applies a merge-patch to an active booking. When the order
// dates change, only the delta moves: days newly requested are claimed from
// the venue's open set and days dropped from the order are released back,
// all inside the same transaction as the booking write. Days kept across
// the edit are never touched, so a concurrent claim on them cannot arise.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, caller Caller, bookingID string, req UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.Repo.GetActiveByID(bookingID)
	if err != nil {
		return nil, err
	}
	venue, err := s.authorize(caller, booking)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus != models.PaymentPartial && booking.PaymentStatus != models.PaymentCompleted {
		return nil, utils.Validationf("booking is not editable in state %s", booking.PaymentStatus)
	}

	updated, claim, release, err := s.applyPatch(booking, req)
	if err != nil {
		return nil, err
	}

	if req.PhotographerIDs != nil || req.CatererIDs != nil || req.RoomID != nil {
		if err := s.validateResources(venue.ID, updated.PhotographerIDs, updated.CatererIDs, updated.RoomID); err != nil {
			return nil, err
		}
	}

	if len(claim) > 0 {
		if missing := models.MissingDays(claim, venue.AvailableDates); len(missing) > 0 {
			return nil, utils.Validationf("selected dates are not available for this venue: %v", missing)
		}
		if n, err := s.Repo.CountActiveDateConflicts(venue.ID, claim, booking.ID); err != nil {
			return nil, err
		} else if n > 0 {
			return nil, fmt.Errorf("one or more dates already booked for this venue: %w", utils.ErrConflict)
		}
	}

	updated.UpdatedAt = s.now()
	updateDoc := bson.M{"$set": bson.M{
		"orderDates":      updated.OrderDates,
		"photographerIds": updated.PhotographerIDs,
		"catererIds":      updated.CatererIDs,
		"roomId":          updated.RoomID,
		"totalAmount":     updated.TotalAmount,
		"amountPaid":      updated.AmountPaid,
		"paymentStatus":   updated.PaymentStatus,
		"updatedAt":       updated.UpdatedAt,
	}}

	if err := s.Repo.UpdateWithDateExchange(ctx, booking.ID, venue.ID, updateDoc, claim, release); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking updated",
		zap.String("bookingId", booking.ID),
		zap.Strings("claimedDates", claim),
		zap.Strings("releasedDates", release))

	s.notify(notification.EventBookingUpdated, map[string]string{
		"bookingId":  booking.ID,
		"venueId":    venue.ID,
		"userId":     booking.UserID,
		"providerId": venue.ProviderID,
		"message":    fmt.Sprintf("booking for %s was updated", venue.Name),
	})
	return updated, nil
}

// applyPatch merges req onto a copy of prior and computes the date delta.
// claim holds days in the new order but not the old, release the reverse.
func (s *DefaultBookingService) applyPatch(prior *models.Booking, req UpdateBookingRequest) (updated *models.Booking, claim, release []string, err error) {
	next := *prior
	updated = &next

	if req.OrderDates != nil {
		if len(req.OrderDates) == 0 {
			return nil, nil, nil, utils.Validationf("orderDates must be a non-empty array")
		}
		days, err := models.NormalizeDays(req.OrderDates)
		if err != nil {
			return nil, nil, nil, utils.Validationf("invalid date in orderDates: %v", err)
		}
		claim = models.MissingDays(days, prior.OrderDates)
		release = models.MissingDays(prior.OrderDates, days)
		updated.OrderDates = days
	}
	if req.PhotographerIDs != nil {
		updated.PhotographerIDs = *req.PhotographerIDs
	}
	if req.CatererIDs != nil {
		updated.CatererIDs = *req.CatererIDs
	}
	if req.RoomID != nil {
		updated.RoomID = *req.RoomID
	}
	if req.TotalAmount != nil {
		updated.TotalAmount = *req.TotalAmount
	}
	if req.AmountPaid != nil {
		if *req.AmountPaid < prior.AmountPaid {
			return nil, nil, nil, utils.Validationf("amountPaid cannot decrease")
		}
		updated.AmountPaid = *req.AmountPaid
	}

	if err := validateAmounts(updated.TotalAmount, updated.AmountPaid); err != nil {
		return nil, nil, nil, err
	}

	// Recompute the state only while the booking is still settling. A
	// Completed booking stays Completed; raising totalAmount afterwards
	// would regress it, so reject that instead.
	if prior.PaymentStatus == models.PaymentPartial {
		updated.PaymentStatus = paymentStatusFor(updated.AmountPaid, updated.TotalAmount)
	} else if updated.AmountPaid != updated.TotalAmount {
		return nil, nil, nil, utils.Validationf("completed booking amounts cannot be reopened")
	}

	return updated, claim, release, nil
}
