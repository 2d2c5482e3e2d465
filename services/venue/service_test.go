package venue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	venueRepo "mandapbook/database/repository/venue"
	"mandapbook/models"
	"mandapbook/utils"
)

type testMocks struct {
	venues   *MockVenueRepository
	bookings *MockBookingRepository
	reviews  *MockReviewRepository
}

func newTestService() (*DefaultVenueService, *testMocks) {
	m := &testMocks{
		venues:   new(MockVenueRepository),
		bookings: new(MockBookingRepository),
		reviews:  new(MockReviewRepository),
	}
	svc := &DefaultVenueService{
		Repo:     m.venues,
		Bookings: m.bookings,
		Reviews:  m.reviews,
	}
	return svc, m
}

func testVenue() *models.Venue {
	return &models.Venue{
		ID:             "venue-1",
		ProviderID:     "provider-1",
		Name:           "Lotus Gardens",
		Address:        models.Address{City: "Pune"},
		AvailableDates: []string{"2026-06-10", "2026-06-11"},
		VenuePricing:   5000000,
		IsActive:       true,
	}
}

func TestCreateVenue_NormalizesDates(t *testing.T) {
	svc, m := newTestService()

	m.venues.On("Create", mock.AnythingOfType("*models.Venue")).Return(nil)

	created, err := svc.CreateVenue("provider-1", models.Venue{
		Name:           "Lotus Gardens",
		Address:        models.Address{City: "Pune"},
		VenuePricing:   5000000,
		AvailableDates: []string{"2026-06-11", "2026-06-10", "2026-06-11"},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "provider-1", created.ProviderID)
	assert.Equal(t, []string{"2026-06-10", "2026-06-11"}, created.AvailableDates)
	assert.True(t, created.IsActive)
	m.venues.AssertExpectations(t)
}

func TestCreateVenue_Validation(t *testing.T) {
	svc, m := newTestService()

	_, err := svc.CreateVenue("provider-1", models.Venue{Address: models.Address{City: "Pune"}})
	assert.True(t, utils.IsValidation(err))

	_, err = svc.CreateVenue("provider-1", models.Venue{Name: "Lotus Gardens"})
	assert.True(t, utils.IsValidation(err))

	_, err = svc.CreateVenue("provider-1", models.Venue{
		Name:         "Lotus Gardens",
		Address:      models.Address{City: "Pune"},
		VenuePricing: -1,
	})
	assert.True(t, utils.IsValidation(err))

	_, err = svc.CreateVenue("provider-1", models.Venue{
		Name:           "Lotus Gardens",
		Address:        models.Address{City: "Pune"},
		AvailableDates: []string{"June 10th"},
	})
	assert.True(t, utils.IsValidation(err))

	_, err = svc.CreateVenue("", models.Venue{Name: "Lotus Gardens", Address: models.Address{City: "Pune"}})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	m.venues.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateVenue_RejectsCalendarField(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.UpdateVenue("provider-1", "venue-1", map[string]any{
		"availableDates": []string{"2026-07-01"},
	})

	assert.True(t, utils.IsValidation(err))
	m.venues.AssertNotCalled(t, "UpdateWithDocument", mock.Anything, mock.Anything)
}

func TestUpdateVenue_EmptyPatchRejected(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.UpdateVenue("provider-1", "venue-1", map[string]any{})

	assert.True(t, utils.IsValidation(err))
	m.venues.AssertNotCalled(t, "UpdateWithDocument", mock.Anything, mock.Anything)
}

func TestUpdateVenue_StrangerForbidden(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.UpdateVenue("provider-2", "venue-1", map[string]any{"name": "New Name"})

	assert.ErrorIs(t, err, utils.ErrForbidden)
	m.venues.AssertNotCalled(t, "UpdateWithDocument", mock.Anything, mock.Anything)
}

func TestUpdateAvailableDates_GoesThroughLedgerTransaction(t *testing.T) {
	svc, m := newTestService()
	venue := testVenue()

	m.venues.On("GetActiveByID", "venue-1").Return(venue, nil)
	// The ledger carves the sold day out inside its transaction and
	// reports what actually got stored.
	m.bookings.On("ReplaceOpenDates", mock.Anything, "venue-1",
		[]string{"2026-06-10", "2026-06-11", "2026-06-12"}).
		Return([]string{"2026-06-10", "2026-06-12"}, nil)
	m.venues.On("GetByID", "venue-1").Return(venue, nil)

	_, err := svc.UpdateAvailableDates("provider-1", "venue-1",
		[]string{"2026-06-12", "2026-06-11", "2026-06-10"})

	assert.NoError(t, err)
	m.bookings.AssertExpectations(t)
	m.venues.AssertExpectations(t)
}

func TestUpdateAvailableDates_MalformedDate(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)

	_, err := svc.UpdateAvailableDates("provider-1", "venue-1", []string{"not-a-date"})

	assert.True(t, utils.IsValidation(err))
	m.bookings.AssertNotCalled(t, "ReplaceOpenDates", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteVenue_Owner(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)
	m.venues.On("SoftDelete", "venue-1", "provider-1").Return(nil)

	err := svc.DeleteVenue("provider-1", "venue-1")

	assert.NoError(t, err)
	m.venues.AssertExpectations(t)
}

func TestGetVenue_AttachesRating(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)
	m.reviews.On("RatingForVenue", "venue-1").Return(
		&models.VenueRating{AverageRating: 4.5, ReviewCount: 12}, nil)

	detail, err := svc.GetVenue("venue-1")

	assert.NoError(t, err)
	assert.NotNil(t, detail.Rating)
	assert.Equal(t, 4.5, detail.Rating.AverageRating)
}

func TestGetVenue_NoReviewsYet(t *testing.T) {
	svc, m := newTestService()
	m.venues.On("GetActiveByID", "venue-1").Return(testVenue(), nil)
	m.reviews.On("RatingForVenue", "venue-1").Return(nil,
		fmt.Errorf("no reviews for venue venue-1: %w", utils.ErrNotFound))

	detail, err := svc.GetVenue("venue-1")

	assert.NoError(t, err)
	assert.Nil(t, detail.Rating)
}

func TestSearchVenues_NormalizesAvailableOn(t *testing.T) {
	svc, m := newTestService()

	m.venues.On("Search", venueRepo.VenueSearchCriteria{
		City:        "Pune",
		AvailableOn: "2026-06-10",
	}, 1, 20).Return([]models.Venue{*testVenue()}, nil)

	venues, err := svc.SearchVenues(venueRepo.VenueSearchCriteria{
		City:        "Pune",
		AvailableOn: "2026-06-10T15:04:05Z",
	}, 1, 20)

	assert.NoError(t, err)
	assert.Len(t, venues, 1)
	m.venues.AssertExpectations(t)
}

func TestSearchVenues_BadAvailableOn(t *testing.T) {
	svc, m := newTestService()

	_, err := svc.SearchVenues(venueRepo.VenueSearchCriteria{AvailableOn: "soon"}, 1, 20)

	assert.True(t, utils.IsValidation(err))
	m.venues.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}
