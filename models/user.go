package models

import "time"

// User is a platform account that browses, favourites and books venues.
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	PhoneNumber  string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`

	FavouriteVenueIDs []string `bson:"favouriteVenueIds,omitempty" json:"favouriteVenueIds,omitempty"`
	FCMToken          string   `bson:"fcmToken,omitempty" json:"-"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
