package venueRepo

import (
	"mandapbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// VenueSearchCriteria defines criteria for a venue catalog search.
type VenueSearchCriteria struct {
	Query       string // matches venue name or city, case-insensitive
	City        string
	VenueTypes  []string
	MinCapacity int
	MaxPricing  int64  // minor units; 0 means unbounded
	AvailableOn string // "YYYY-MM-DD"; only venues open on this day
}

// VenueRepository defines methods for venue data access. The availableDates
// set is only ever shrunk/grown by the booking ledger's transactions; this
// repository exposes the provider-facing wholesale replacement.
type VenueRepository interface {
	// GetByID retrieves a venue by its unique ID, active or not.
	GetByID(id string) (*models.Venue, error)
	// GetActiveByID retrieves an active venue, or nil if missing/inactive.
	GetActiveByID(id string) (*models.Venue, error)
	// GetAllActive lists active venues with pagination.
	GetAllActive(page, limit int) ([]models.Venue, error)
	// GetByProvider lists a provider's active venues.
	GetByProvider(providerID string) ([]models.Venue, error)
	// Search performs a catalog search across active venues.
	Search(criteria VenueSearchCriteria, page, limit int) ([]models.Venue, error)
	// Create inserts a new venue record.
	Create(venue *models.Venue) error
	// UpdateWithDocument patches a venue document with the given update.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// SoftDelete marks a venue inactive.
	SoftDelete(id, providerID string) error
}
