package roomRepo

import "mandapbook/models"

// RoomRepository defines methods for room data access.
type RoomRepository interface {
	// GetActiveByID retrieves an active room.
	GetActiveByID(id string) (*models.Room, error)
	// GetActiveByIDAndVenue retrieves an active room belonging to the venue.
	GetActiveByIDAndVenue(id, venueID string) (*models.Room, error)
	// GetActiveByVenue lists a venue's active rooms.
	GetActiveByVenue(venueID string) ([]models.Room, error)
	// Create inserts a new room record.
	Create(room *models.Room) error
	// Update replaces an existing room record.
	Update(room *models.Room) error
	// SoftDelete marks a room inactive.
	SoftDelete(id string) error
}
