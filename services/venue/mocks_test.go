package venue

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	venueRepo "mandapbook/database/repository/venue"
	"mandapbook/models"
)

// Mock repositories

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetByID(id string) (*models.Venue, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetActiveByID(id string) (*models.Venue, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetAllActive(page, limit int) ([]models.Venue, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetByProvider(providerID string) ([]models.Venue, error) {
	args := m.Called(providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venue), args.Error(1)
}

func (m *MockVenueRepository) Search(criteria venueRepo.VenueSearchCriteria, page, limit int) ([]models.Venue, error) {
	args := m.Called(criteria, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venue), args.Error(1)
}

func (m *MockVenueRepository) Create(venue *models.Venue) error {
	args := m.Called(venue)
	return args.Error(0)
}

func (m *MockVenueRepository) UpdateWithDocument(id string, updateDoc bson.M) error {
	args := m.Called(id, updateDoc)
	return args.Error(0)
}

func (m *MockVenueRepository) SoftDelete(id, providerID string) error {
	args := m.Called(id, providerID)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetActiveByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) CreateWithDateClaim(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithDateRelease(ctx context.Context, bookingID, venueID string, dates []string) error {
	args := m.Called(ctx, bookingID, venueID, dates)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateWithDateExchange(ctx context.Context, bookingID, venueID string, updateDoc bson.M, claim, release []string) error {
	args := m.Called(ctx, bookingID, venueID, updateDoc, claim, release)
	return args.Error(0)
}

func (m *MockBookingRepository) CompletePayment(bookingID string, amountPaid int64, paymentID string) (*models.Booking, error) {
	args := m.Called(bookingID, amountPaid, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) SetReviewAdded(bookingID string, added bool) error {
	args := m.Called(bookingID, added)
	return args.Error(0)
}

func (m *MockBookingRepository) CountActiveDateConflicts(venueID string, dates []string, excludeID string) (int64, error) {
	args := m.Called(venueID, dates, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) ReplaceOpenDates(ctx context.Context, venueID string, dates []string) ([]string, error) {
	args := m.Called(ctx, venueID, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepository) ListActiveByUser(userID string, page, limit int) ([]models.Booking, error) {
	args := m.Called(userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListActiveByVenues(venueIDs []string, page, limit int) ([]models.Booking, error) {
	args := m.Called(venueIDs, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListActive(page, limit int) ([]models.Booking, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetActiveByID(id string) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetActiveByVenue(venueID string) ([]models.Review, error) {
	args := m.Called(venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) RatingForVenue(venueID string) (*models.VenueRating, error) {
	args := m.Called(venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VenueRating), args.Error(1)
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) SoftDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
