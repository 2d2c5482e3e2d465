package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mandapbook/models"
	"mandapbook/utils"
)

func TestCompletePayment_SettlesRemaining(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking() // total 5000000, paid 2000000

	settled := *booking
	settled.AmountPaid = settled.TotalAmount
	settled.PaymentStatus = models.PaymentCompleted

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("CompletePayment", "booking-1", int64(5000000), mock.AnythingOfType("string")).
		Return(&settled, nil)

	got, err := svc.CompletePayment(context.Background(), Caller{UserID: "user-1"}, "booking-1", 3000000)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, got.PaymentStatus)
	assert.Equal(t, got.TotalAmount, got.AmountPaid)
	m.bookings.AssertExpectations(t)
}

func TestCompletePayment_ByVenueProvider(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking()

	settled := *booking
	settled.AmountPaid = settled.TotalAmount
	settled.PaymentStatus = models.PaymentCompleted

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)
	m.bookings.On("CompletePayment", "booking-1", int64(5000000), mock.AnythingOfType("string")).
		Return(&settled, nil)

	got, err := svc.CompletePayment(context.Background(), Caller{ProviderID: "provider-1"}, "booking-1", 3000000)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, got.PaymentStatus)
	m.bookings.AssertExpectations(t)
}

func TestCompletePayment_OvershootClampedToTotal(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking()

	settled := *booking
	settled.AmountPaid = settled.TotalAmount
	settled.PaymentStatus = models.PaymentCompleted

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)
	// amountPaid written is the total, not prior paid + payment
	m.bookings.On("CompletePayment", "booking-1", int64(5000000), mock.AnythingOfType("string")).
		Return(&settled, nil)

	got, err := svc.CompletePayment(context.Background(), Caller{UserID: "user-1"}, "booking-1", 9000000)

	assert.NoError(t, err)
	assert.Equal(t, int64(5000000), got.AmountPaid)
}

func TestCompletePayment_InsufficientAmount(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "booking-1").Return(testBooking(), nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.CompletePayment(context.Background(), Caller{UserID: "user-1"}, "booking-1", 1000000)

	assert.True(t, utils.IsValidation(err))
	assert.Contains(t, err.Error(), "remaining balance")
	m.bookings.AssertNotCalled(t, "CompletePayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompletePayment_AlreadyCompleted(t *testing.T) {
	svc, m := newTestService()
	booking := testBooking()
	booking.AmountPaid = booking.TotalAmount
	booking.PaymentStatus = models.PaymentCompleted

	m.bookings.On("GetActiveByID", "booking-1").Return(booking, nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.CompletePayment(context.Background(), Caller{UserID: "user-1"}, "booking-1", 100)

	assert.True(t, utils.IsValidation(err))
	assert.Contains(t, err.Error(), models.PaymentCompleted)
}

func TestCompletePayment_StrangerForbidden(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "booking-1").Return(testBooking(), nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.CompletePayment(context.Background(), Caller{UserID: "user-2"}, "booking-1", 3000000)

	assert.ErrorIs(t, err, utils.ErrForbidden)
	m.bookings.AssertNotCalled(t, "CompletePayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompletePayment_NonPositiveAmount(t *testing.T) {
	svc, m := newTestService()
	m.bookings.On("GetActiveByID", "booking-1").Return(testBooking(), nil)
	m.venues.On("GetByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.CompletePayment(context.Background(), Caller{UserID: "user-1"}, "booking-1", 0)

	assert.True(t, utils.IsValidation(err))
}
