package catererRepo

import "mandapbook/models"

// CatererRepository defines methods for caterer data access.
type CatererRepository interface {
	// GetActiveByID retrieves an active caterer.
	GetActiveByID(id string) (*models.Caterer, error)
	// FindActiveByIDsAndVenue returns the active caterers among ids that
	// belong to the given venue. Fewer results than ids means one or more
	// requested caterers are missing, inactive or foreign to the venue.
	FindActiveByIDsAndVenue(ids []string, venueID string) ([]models.Caterer, error)
	// GetActiveByVenue lists a venue's active caterers.
	GetActiveByVenue(venueID string) ([]models.Caterer, error)
	// Create inserts a new caterer record.
	Create(caterer *models.Caterer) error
	// Update replaces an existing caterer record.
	Update(caterer *models.Caterer) error
	// SoftDelete marks a caterer inactive.
	SoftDelete(id string) error
}
