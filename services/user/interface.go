// Package user implements account registration, sign-in and the
// profile-level features hanging off the user document (favourites,
// device tokens).
package user

import (
	userRepo "mandapbook/database/repository/user"
	venueRepo "mandapbook/database/repository/venue"
	"mandapbook/models"
)

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// RegisterRequest carries a new account's credentials and profile basics.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// UserService is the account surface.
type UserService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)

	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, patch map[string]any) (*models.User, error)
	DeleteAccount(userID string) error
	RegisterDevice(userID, fcmToken string) error

	AddFavourite(userID, venueID string) error
	RemoveFavourite(userID, venueID string) error
	ListFavourites(userID string) ([]models.Venue, error)
}

// DefaultUserService is the production account service.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Venues venueRepo.VenueRepository
}
