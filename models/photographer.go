package models

import "time"

// Photographer may serve several venues; VenueIDs lists each venue the
// photographer is associated with.
type Photographer struct {
	ID       string   `bson:"id" json:"id"`
	VenueIDs []string `bson:"venueIds" json:"venueIds"`
	Name     string   `bson:"name" json:"name"`

	PhotographyTypes []PhotographyType `bson:"photographyTypes,omitempty" json:"photographyTypes,omitempty"`
	PrintOptions     []PrintOption     `bson:"printOptions,omitempty" json:"printOptions,omitempty"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type PhotographyType struct {
	Type          string   `bson:"type" json:"type"`                   // Candid, Traditional, Pre-wedding, ...
	PricePerEvent int64    `bson:"pricePerEvent" json:"pricePerEvent"` // minor units
	SampleWork    []string `bson:"sampleWork,omitempty" json:"sampleWork,omitempty"`
}

type PrintOption struct {
	Type        string `bson:"type" json:"type"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Price       int64  `bson:"price" json:"price"` // minor units
}
