package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mandapbook/utils"
)

func TestCancelBooking_ByOwner(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking()

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("CancelWithDateRelease", mock.Anything, "booking-1", "venue-1", booking.OrderDates).Return(nil)

	err := svc.CancelBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1")

	assert.NoError(t, err)
	m.bookings.AssertExpectations(t)
}

func TestCancelBooking_ByVenueProvider(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking()

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("CancelWithDateRelease", mock.Anything, "booking-1", "venue-1", booking.OrderDates).Return(nil)

	err := svc.CancelBooking(context.Background(), Caller{ProviderID: "provider-1"}, "booking-1")

	assert.NoError(t, err)
}

func TestCancelBooking_StrangerForbidden(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "booking-1").Return(testBooking(), nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	err := svc.CancelBooking(context.Background(), Caller{UserID: "user-2"}, "booking-1")

	assert.ErrorIs(t, err, utils.ErrForbidden)
	m.bookings.AssertNotCalled(t, "CancelWithDateRelease", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_AfterFirstDateRejected(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking()
	booking.OrderDates = []string{"2026-04-30", "2026-05-02"} // first day already passed

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	err := svc.CancelBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1")

	assert.True(t, utils.IsValidation(err))
	m.bookings.AssertNotCalled(t, "CancelWithDateRelease", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_OnFirstDateRejected(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking()
	booking.OrderDates = []string{"2026-05-01"} // today

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	err := svc.CancelBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1")

	assert.True(t, utils.IsValidation(err))
}

func TestCancelBooking_MissingBooking(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "nope").Return(nil, utils.ErrNotFound)

	err := svc.CancelBooking(context.Background(), Caller{UserID: "user-1"}, "nope")

	assert.ErrorIs(t, err, utils.ErrNotFound)
}
