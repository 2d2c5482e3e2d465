// Package booking implements the reservation lifecycle and the
// availability-consistency engine: claiming days out of a venue's open set,
// refusing double bookings, walking the Partial/Completed/Cancelled payment
// states and returning days to inventory on cancellation.
package booking

import (
	"context"
	"time"

	bookingRepo "mandapbook/database/repository/booking"
	catererRepo "mandapbook/database/repository/caterer"
	photographerRepo "mandapbook/database/repository/photographer"
	roomRepo "mandapbook/database/repository/room"
	userRepo "mandapbook/database/repository/user"
	venueRepo "mandapbook/database/repository/venue"
	"mandapbook/models"
	"mandapbook/services/notification"
)

// Caller is the identity context supplied by the auth middleware. Exactly
// one of the IDs is set for user/provider requests; the engine only
// compares ownership and never re-authenticates.
type Caller struct {
	UserID     string
	ProviderID string
}

// CreateBookingRequest carries the declared order. Amounts are minor units.
type CreateBookingRequest struct {
	VenueID         string   `json:"venueId"`
	OrderDates      []string `json:"orderDates"`
	PhotographerIDs []string `json:"photographerIds"`
	CatererIDs      []string `json:"catererIds"`
	RoomID          string   `json:"roomId"`
	TotalAmount     int64    `json:"totalAmount"`
	AmountPaid      int64    `json:"amountPaid"`
}

// UpdateBookingRequest is a merge-patch: nil fields keep their prior
// values, non-nil fields replace them.
type UpdateBookingRequest struct {
	OrderDates      []string  `json:"orderDates"`
	PhotographerIDs *[]string `json:"photographerIds"`
	CatererIDs      *[]string `json:"catererIds"`
	RoomID          *string   `json:"roomId"`
	TotalAmount     *int64    `json:"totalAmount"`
	AmountPaid      *int64    `json:"amountPaid"`
}

// BookingService is the booking engine's public surface.
type BookingService interface {
	CreateBooking(ctx context.Context, caller Caller, req CreateBookingRequest) (*models.Booking, error)
	UpdateBooking(ctx context.Context, caller Caller, bookingID string, req UpdateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, caller Caller, bookingID string) error
	CompletePayment(ctx context.Context, caller Caller, bookingID string, paymentAmount int64) (*models.Booking, error)

	GetBooking(ctx context.Context, caller Caller, bookingID string) (*models.BookingDetail, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]models.BookingDetail, error)
	ListByProvider(ctx context.Context, providerID string, page, limit int) ([]models.BookingDetail, error)
	ListAll(ctx context.Context, page, limit int) ([]models.BookingDetail, error)
}

// DefaultBookingService is the production booking engine.
type DefaultBookingService struct {
	Repo          bookingRepo.BookingRepository
	Venues        venueRepo.VenueRepository
	Caterers      catererRepo.CatererRepository
	Photographers photographerRepo.PhotographerRepository
	Rooms         roomRepo.RoomRepository
	Users         userRepo.UserRepository
	Notifier      notification.Dispatcher

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) notify(event notification.Event, payload map[string]string) {
	if s.Notifier == nil {
		return
	}
	go s.Notifier.Notify(context.Background(), event, payload)
}
