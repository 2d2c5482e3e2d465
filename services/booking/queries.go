package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mandapbook/models"
	"mandapbook/utils"
)

// GetBooking returns one booking with its venue, user and resource
// summaries resolved. The caller must be the booking's user or the venue's
// provider.
func (s *DefaultBookingService) GetBooking(ctx context.Context, caller Caller, bookingID string) (*models.BookingDetail, error) {
	booking, err := s.Repo.GetActiveByID(bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(caller, booking); err != nil {
		return nil, err
	}
	detail := s.populate(*booking)
	return &detail, nil
}

// ListByUser lists a user's active bookings, newest first.
func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string, page, limit int) ([]models.BookingDetail, error) {
	bookings, err := s.Repo.ListActiveByUser(userID, page, limit)
	if err != nil {
		return nil, err
	}
	return s.populateAll(bookings), nil
}

// ListByProvider lists active bookings across all of a provider's venues.
func (s *DefaultBookingService) ListByProvider(ctx context.Context, providerID string, page, limit int) ([]models.BookingDetail, error) {
	venues, err := s.Venues.GetByProvider(providerID)
	if err != nil {
		return nil, err
	}
	if len(venues) == 0 {
		return []models.BookingDetail{}, nil
	}
	venueIDs := make([]string, 0, len(venues))
	for _, v := range venues {
		venueIDs = append(venueIDs, v.ID)
	}
	bookings, err := s.Repo.ListActiveByVenues(venueIDs, page, limit)
	if err != nil {
		return nil, err
	}
	return s.populateAll(bookings), nil
}

// ListAll lists every active booking; admin surface only.
func (s *DefaultBookingService) ListAll(ctx context.Context, page, limit int) ([]models.BookingDetail, error) {
	bookings, err := s.Repo.ListActive(page, limit)
	if err != nil {
		return nil, err
	}
	return s.populateAll(bookings), nil
}

// populate resolves the read-only summaries around a ledger record.
// Lookups are tolerant: a referenced document that has since gone missing
// or inactive is logged and left nil rather than failing the whole read.
func (s *DefaultBookingService) populate(b models.Booking) models.BookingDetail {
	logger := utils.GetLogger()
	detail := models.BookingDetail{
		Booking:         b,
		RemainingAmount: b.RemainingAmount(),
	}

	if venue, err := s.Venues.GetByID(b.VenueID); err == nil {
		detail.Venue = venue
	} else if !errors.Is(err, utils.ErrNotFound) {
		logger.Warn("venue population failed", zap.String("bookingId", b.ID), zap.Error(err))
	}

	if s.Users != nil {
		if user, err := s.Users.GetByID(b.UserID); err == nil {
			detail.User = user
		} else if !errors.Is(err, utils.ErrNotFound) {
			logger.Warn("user population failed", zap.String("bookingId", b.ID), zap.Error(err))
		}
	}

	for _, id := range b.PhotographerIDs {
		if p, err := s.Photographers.GetActiveByID(id); err == nil {
			detail.Photographers = append(detail.Photographers, *p)
		}
	}
	for _, id := range b.CatererIDs {
		if c, err := s.Caterers.GetActiveByID(id); err == nil {
			detail.Caterers = append(detail.Caterers, *c)
		}
	}
	if b.RoomID != "" {
		if room, err := s.Rooms.GetActiveByID(b.RoomID); err == nil {
			detail.Room = room
		}
	}
	return detail
}

func (s *DefaultBookingService) populateAll(bookings []models.Booking) []models.BookingDetail {
	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		details = append(details, s.populate(b))
	}
	return details
}
