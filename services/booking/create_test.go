package booking

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mandapbook/models"
	"mandapbook/utils"
)

func TestCreateBooking_PartialPayment(t *testing.T) {
	svc, m := newTestService()
	venue := testVenue()

	m.venues.On("GetActiveByID", "venue-1").Return(venue, nil)
	m.bookings.On("CountActiveDateConflicts", "venue-1", []string{"2026-06-10", "2026-06-11"}, "").Return(int64(0), nil)
	m.bookings.On("CreateWithDateClaim", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	got, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:     "venue-1",
		OrderDates:  []string{"2026-06-11", "2026-06-10"},
		TotalAmount: 5000000,
		AmountPaid:  2000000,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, []string{"2026-06-10", "2026-06-11"}, got.OrderDates, "dates are sorted")
	assert.Equal(t, models.PaymentPartial, got.PaymentStatus)
	assert.True(t, got.IsActive)
	assert.Equal(t, testNow, got.CreatedAt)
	m.bookings.AssertExpectations(t)
}

func TestCreateBooking_FullPaymentIsCompleted(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("CountActiveDateConflicts", "venue-1", []string{"2026-06-10"}, "").Return(int64(0), nil)
	m.bookings.On("CreateWithDateClaim", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:     "venue-1",
		OrderDates:  []string{"2026-06-10"},
		TotalAmount: 5000000,
		AmountPaid:  5000000,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, got.PaymentStatus)
}

func TestCreateBooking_DeduplicatesDates(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("CountActiveDateConflicts", "venue-1", []string{"2026-06-10", "2026-06-11"}, "").Return(int64(0), nil)
	m.bookings.On("CreateWithDateClaim", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:     "venue-1",
		OrderDates:  []string{"2026-06-10", "2026-06-10", "2026-06-11"},
		TotalAmount: 100,
		AmountPaid:  0,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"2026-06-10", "2026-06-11"}, got.OrderDates)
}

func TestCreateBooking_DateNotAvailable(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:     "venue-1",
		OrderDates:  []string{"2026-06-10", "2026-07-01"},
		TotalAmount: 100,
	})

	assert.True(t, utils.IsValidation(err))
	assert.Contains(t, err.Error(), "2026-07-01")
	m.bookings.AssertNotCalled(t, "CreateWithDateClaim", mock.Anything, mock.Anything)
}

func TestCreateBooking_MalformedDate(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:    "venue-1",
		OrderDates: []string{"10-06-2026"},
	})

	assert.True(t, utils.IsValidation(err))
}

func TestCreateBooking_EmptyDates(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID: "venue-1",
	})

	assert.True(t, utils.IsValidation(err))
}

func TestCreateBooking_Unauthenticated(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBooking(context.Background(), Caller{}, CreateBookingRequest{
		VenueID:    "venue-1",
		OrderDates: []string{"2026-06-10"},
	})

	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestCreateBooking_OverpaymentRejected(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:     "venue-1",
		OrderDates:  []string{"2026-06-10"},
		TotalAmount: 100,
		AmountPaid:  200,
	})

	assert.True(t, utils.IsValidation(err))
}

func TestCreateBooking_PhotographerNotOnVenue(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)
	m.photographers.On("FindActiveByIDsAndVenue", []string{"ph-1", "ph-2"}, "venue-1").
		Return([]models.Photographer{{ID: "ph-1"}}, nil)

	_, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:         "venue-1",
		OrderDates:      []string{"2026-06-10"},
		PhotographerIDs: []string{"ph-1", "ph-2"},
	})

	assert.True(t, utils.IsValidation(err))
	assert.Contains(t, err.Error(), "photographers")
	m.bookings.AssertNotCalled(t, "CreateWithDateClaim", mock.Anything, mock.Anything)
}

func TestCreateBooking_RoomNotOnVenue(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)
	m.rooms.On("GetActiveByIDAndVenue", "room-9", "venue-1").Return(nil, utils.ErrNotFound)

	_, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:    "venue-1",
		OrderDates: []string{"2026-06-10"},
		RoomID:     "room-9",
	})

	assert.True(t, utils.IsValidation(err))
}

func TestCreateBooking_ConcurrentClaimLoses(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("CountActiveDateConflicts", "venue-1", []string{"2026-06-10"}, "").Return(int64(0), nil)
	m.bookings.On("CreateWithDateClaim", mock.Anything, mock.Anything).
		Return(fmt.Errorf("dates already held by an active booking: %w", utils.ErrConflict))

	_, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:    "venue-1",
		OrderDates: []string{"2026-06-10"},
	})

	assert.ErrorIs(t, err, utils.ErrConflict)
}

func TestCreateBooking_LedgerConflictFastFails(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("CountActiveDateConflicts", "venue-1", []string{"2026-06-10"}, "").Return(int64(1), nil)

	_, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:    "venue-1",
		OrderDates: []string{"2026-06-10"},
	})

	assert.ErrorIs(t, err, utils.ErrConflict)
	m.bookings.AssertNotCalled(t, "CreateWithDateClaim", mock.Anything, mock.Anything)
}

func TestCreateBooking_VenueMissing(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-x").Return(nil, utils.ErrNotFound)

	_, err := svc.CreateBooking(context.Background(), Caller{UserID: "user-1"}, CreateBookingRequest{
		VenueID:    "venue-x",
		OrderDates: []string{"2026-06-10"},
	})

	assert.ErrorIs(t, err, utils.ErrNotFound)
}
