package booking

import (
	"time"

	"mandapbook/models"
	"mandapbook/services/notification"
)

// fixed clock for every test; "today" is 2026-05-01
var testNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

type testMocks struct {
	bookings      *MockBookingRepository
	venues        *MockVenueRepository
	caterers      *MockCatererRepository
	photographers *MockPhotographerRepository
	rooms         *MockRoomRepository
}

func newTestService() (*DefaultBookingService, *testMocks) {
	m := &testMocks{
		bookings:      new(MockBookingRepository),
		venues:        new(MockVenueRepository),
		caterers:      new(MockCatererRepository),
		photographers: new(MockPhotographerRepository),
		rooms:         new(MockRoomRepository),
	}
	svc := &DefaultBookingService{
		Repo:          m.bookings,
		Venues:        m.venues,
		Caterers:      m.caterers,
		Photographers: m.photographers,
		Rooms:         m.rooms,
		Notifier:      notification.NoopDispatcher{},
		Now:           func() time.Time { return testNow },
	}
	return svc, m
}

func testVenue() *models.Venue {
	return &models.Venue{
		ID:             "venue-1",
		ProviderID:     "provider-1",
		Name:           "Shree Mandap",
		AvailableDates: []string{"2026-06-10", "2026-06-11", "2026-06-12", "2026-06-20"},
		VenuePricing:   5000000,
		IsActive:       true,
	}
}

func testBooking() *models.Booking {
	return &models.Booking{
		ID:            "booking-1",
		VenueID:       "venue-1",
		UserID:        "user-1",
		OrderDates:    []string{"2026-06-10", "2026-06-11"},
		TotalAmount:   5000000,
		AmountPaid:    2000000,
		PaymentStatus: models.PaymentPartial,
		IsActive:      true,
	}
}
