// Package venue implements the provider-facing catalog: venue CRUD, the
// cached public listings and the availability calendar edits that must not
// disturb days already claimed by active bookings.
package venue

import (
	bookingRepo "mandapbook/database/repository/booking"
	reviewRepo "mandapbook/database/repository/review"
	venueRepo "mandapbook/database/repository/venue"
	"mandapbook/models"
)

// VenueDetail is a catalog read: the venue plus its aggregated rating.
type VenueDetail struct {
	Venue  models.Venue        `json:"venue"`
	Rating *models.VenueRating `json:"rating,omitempty"`
}

// VenueService is the venue catalog surface. Mutations require the owning
// provider; reads are public.
type VenueService interface {
	CreateVenue(providerID string, venue models.Venue) (*models.Venue, error)
	UpdateVenue(providerID, venueID string, patch map[string]any) (*models.Venue, error)
	UpdateAvailableDates(providerID, venueID string, dates []string) (*models.Venue, error)
	DeleteVenue(providerID, venueID string) error

	GetVenue(venueID string) (*VenueDetail, error)
	ListVenues(page, limit int) ([]models.Venue, error)
	SearchVenues(criteria venueRepo.VenueSearchCriteria, page, limit int) ([]models.Venue, error)
	ListByProvider(providerID string) ([]models.Venue, error)
}

// DefaultVenueService is the production venue catalog.
type DefaultVenueService struct {
	Repo     venueRepo.VenueRepository
	Bookings bookingRepo.BookingRepository
	Reviews  reviewRepo.ReviewRepository
}
