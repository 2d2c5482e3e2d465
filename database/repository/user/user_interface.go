package userRepo

import "mandapbook/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(page, limit int) ([]models.User, error)
	Search(query string, page, limit int) ([]models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	SoftDelete(id string) error

	// Favourite venues live on the user document; both mutations are
	// set-semantic so repeats are harmless.
	AddFavouriteVenue(userID, venueID string) error
	RemoveFavouriteVenue(userID, venueID string) error
}
