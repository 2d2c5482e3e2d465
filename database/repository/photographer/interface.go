package photographerRepo

import "mandapbook/models"

// PhotographerRepository defines methods for photographer data access.
// Photographers may be associated with several venues, so the venue match
// looks inside the venueIds array.
type PhotographerRepository interface {
	// GetActiveByID retrieves an active photographer.
	GetActiveByID(id string) (*models.Photographer, error)
	// FindActiveByIDsAndVenue returns the active photographers among ids
	// associated with the given venue.
	FindActiveByIDsAndVenue(ids []string, venueID string) ([]models.Photographer, error)
	// GetActiveByVenue lists a venue's active photographers.
	GetActiveByVenue(venueID string) ([]models.Photographer, error)
	// GetAllActive lists all active photographers.
	GetAllActive() ([]models.Photographer, error)
	// Create inserts a new photographer record.
	Create(photographer *models.Photographer) error
	// Update replaces an existing photographer record.
	Update(photographer *models.Photographer) error
	// SoftDelete marks a photographer inactive.
	SoftDelete(id string) error
}
