package models

import "time"

// Review is a user's rating of a venue, tied to the booking it reviews.
// A booking carries at most one review (booking.isReviewAdded).
type Review struct {
	ID        string `bson:"id" json:"id"`
	VenueID   string `bson:"venueId" json:"venueId"`
	UserID    string `bson:"userId" json:"userId"`
	BookingID string `bson:"bookingId" json:"bookingId"`

	Rating  int    `bson:"rating" json:"rating"` // 1..5
	Comment string `bson:"comment,omitempty" json:"comment,omitempty"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// VenueRating is the aggregated review summary for a venue listing.
type VenueRating struct {
	VenueID       string  `bson:"venueId" json:"venueId"`
	AverageRating float64 `bson:"averageRating" json:"averageRating"`
	ReviewCount   int     `bson:"reviewCount" json:"reviewCount"`
}
