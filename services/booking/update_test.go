package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"mandapbook/models"
	"mandapbook/utils"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateBooking_DateDelta(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking() // holds 2026-06-10, 2026-06-11

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("CountActiveDateConflicts", "venue-1", []string{"2026-06-12"}, "booking-1").
		Return(int64(0), nil)
	m.bookings.On("UpdateWithDateExchange", mock.Anything, "booking-1", "venue-1",
		mock.AnythingOfType("primitive.M"),
		[]string{"2026-06-12"}, []string{"2026-06-11"}).Return(nil)

	got, err := svc.UpdateBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1", UpdateBookingRequest{
		OrderDates: []string{"2026-06-10", "2026-06-12"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"2026-06-10", "2026-06-12"}, got.OrderDates)
	m.bookings.AssertExpectations(t)
}

func TestUpdateBooking_UnchangedDatesMoveNothing(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking()

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("UpdateWithDateExchange", mock.Anything, "booking-1", "venue-1",
		mock.AnythingOfType("primitive.M"),
		[]string(nil), []string(nil)).Return(nil)

	_, err := svc.UpdateBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1", UpdateBookingRequest{
		OrderDates: []string{"2026-06-11", "2026-06-10"},
	})

	assert.NoError(t, err)
	m.bookings.AssertExpectations(t)
}

func TestUpdateBooking_NewDateNotAvailable(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "booking-1").Return(testBooking(), nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.UpdateBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1", UpdateBookingRequest{
		OrderDates: []string{"2026-06-10", "2026-08-01"},
	})

	assert.True(t, utils.IsValidation(err))
	m.bookings.AssertNotCalled(t, "UpdateWithDateExchange",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBooking_NewDateHeldByAnotherBooking(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "booking-1").Return(testBooking(), nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("CountActiveDateConflicts", "venue-1", []string{"2026-06-12"}, "booking-1").
		Return(int64(1), nil)

	_, err := svc.UpdateBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1", UpdateBookingRequest{
		OrderDates: []string{"2026-06-10", "2026-06-12"},
	})

	assert.ErrorIs(t, err, utils.ErrConflict)
	m.bookings.AssertNotCalled(t, "UpdateWithDateExchange",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBooking_AmountPaidCannotDecrease(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "booking-1").Return(testBooking(), nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.UpdateBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1", UpdateBookingRequest{
		AmountPaid: ptr(int64(1000000)),
	})

	assert.True(t, utils.IsValidation(err))
}

func TestUpdateBooking_SettlementFlipsStatus(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "booking-1").Return(testBooking(), nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	var captured bson.M
	m.bookings.On("UpdateWithDateExchange", mock.Anything, "booking-1", "venue-1",
		mock.AnythingOfType("primitive.M"), []string(nil), []string(nil)).
		Run(func(args mock.Arguments) { captured = args.Get(3).(bson.M) }).
		Return(nil)

	got, err := svc.UpdateBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1", UpdateBookingRequest{
		AmountPaid: ptr(int64(5000000)),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, got.PaymentStatus)
	set := captured["$set"].(bson.M)
	assert.Equal(t, models.PaymentCompleted, set["paymentStatus"])
}

func TestUpdateBooking_CompletedCannotReopen(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking()
	booking.AmountPaid = booking.TotalAmount
	booking.PaymentStatus = models.PaymentCompleted

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.UpdateBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1", UpdateBookingRequest{
		TotalAmount: ptr(int64(9000000)),
	})

	assert.True(t, utils.IsValidation(err))
}

func TestUpdateBooking_EmptyDatesRejected(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "booking-1").Return(testBooking(), nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	// nil keeps prior dates; an explicit empty array is not a valid order
	_, err := svc.UpdateBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1", UpdateBookingRequest{
		OrderDates: []string{},
	})

	assert.True(t, utils.IsValidation(err))
}

func TestUpdateBooking_ResourcesRevalidated(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "booking-1").Return(testBooking(), nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)
	m.caterers.On("FindActiveByIDsAndVenue", []string{"cat-1"}, "venue-1").
		Return([]models.Caterer{}, nil)

	_, err := svc.UpdateBooking(context.Background(), Caller{UserID: "user-1"}, "booking-1", UpdateBookingRequest{
		CatererIDs: ptr([]string{"cat-1"}),
	})

	assert.True(t, utils.IsValidation(err))
	assert.Contains(t, err.Error(), "caterers")
}
