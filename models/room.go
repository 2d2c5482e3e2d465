package models

import "time"

// Room records the guest accommodation attached to a venue, split into AC
// and non-AC classes the way providers price them.
type Room struct {
	ID      string `bson:"id" json:"id"`
	VenueID string `bson:"venueId" json:"venueId"`

	AcRoom    RoomClass `bson:"acRoom" json:"acRoom"`
	NonAcRoom RoomClass `bson:"nonAcRoom,omitempty" json:"nonAcRoom,omitempty"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type RoomClass struct {
	Count         int      `bson:"count" json:"count"`
	PricePerNight int64    `bson:"pricePerNight" json:"pricePerNight"` // minor units
	Amenities     []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
	RoomImages    []string `bson:"roomImages,omitempty" json:"roomImages,omitempty"`
}
