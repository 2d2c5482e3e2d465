package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mandapbook/models"
	"mandapbook/services/notification"
	"mandapbook/utils"
)

// CreateBooking validates the full request, then claims the requested days
// and inserts the ledger record as one transaction. Validation is strictly
// read-only: a failure at any step leaves no partial state behind.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, caller Caller, req CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if caller.UserID == "" {
		return nil, fmt.Errorf("user not authenticated: %w", utils.ErrForbidden)
	}
	if req.VenueID == "" {
		return nil, utils.Validationf("venueId is required")
	}
	if len(req.OrderDates) == 0 {
		return nil, utils.Validationf("orderDates must be a non-empty array")
	}

	days, err := models.NormalizeDays(req.OrderDates)
	if err != nil {
		return nil, utils.Validationf("invalid date in orderDates: %v", err)
	}

	venue, err := s.Venues.GetActiveByID(req.VenueID)
	if err != nil {
		return nil, err
	}

	// Cheap pre-check against the snapshot we just read. The transaction
	// re-verifies membership, so a concurrent claim still loses cleanly.
	if missing := models.MissingDays(days, venue.AvailableDates); len(missing) > 0 {
		return nil, utils.Validationf("selected dates are not available for this venue: %s", strings.Join(missing, ", "))
	}

	if err := s.validateResources(venue.ID, req.PhotographerIDs, req.CatererIDs, req.RoomID); err != nil {
		return nil, err
	}
	if err := validateAmounts(req.TotalAmount, req.AmountPaid); err != nil {
		return nil, err
	}

	// Fast-fail on a ledger conflict before opening the transaction, which
	// re-runs the same count under isolation.
	if n, err := s.Repo.CountActiveDateConflicts(venue.ID, days, ""); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, fmt.Errorf("one or more dates already booked for this venue: %w", utils.ErrConflict)
	}

	now := s.now()
	booking := &models.Booking{
		ID:              uuid.New().String(),
		VenueID:         venue.ID,
		UserID:          caller.UserID,
		OrderDates:      days,
		PhotographerIDs: req.PhotographerIDs,
		CatererIDs:      req.CatererIDs,
		RoomID:          req.RoomID,
		TotalAmount:     req.TotalAmount,
		AmountPaid:      req.AmountPaid,
		PaymentStatus:   paymentStatusFor(req.AmountPaid, req.TotalAmount),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.CreateWithDateClaim(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("venueId", venue.ID),
		zap.String("userId", caller.UserID),
		zap.Strings("orderDates", days),
		zap.String("paymentStatus", booking.PaymentStatus))

	s.notify(notification.EventBookingCreated, map[string]string{
		"bookingId":  booking.ID,
		"venueId":    venue.ID,
		"userId":     booking.UserID,
		"providerId": venue.ProviderID,
		"message":    fmt.Sprintf("%s booked for %s", venue.Name, strings.Join(days, ", ")),
	})

	return booking, nil
}
