package models

import "time"

// Caterer belongs to exactly one venue.
type Caterer struct {
	ID      string `bson:"id" json:"id"`
	VenueID string `bson:"venueId" json:"venueId"`
	Name    string `bson:"name" json:"name"`

	MenuCategories    []MenuCategory `bson:"menuCategories,omitempty" json:"menuCategories,omitempty"`
	FoodTypes         []string       `bson:"foodTypes,omitempty" json:"foodTypes,omitempty"`
	IsCustomizable    bool           `bson:"isCustomizable" json:"isCustomizable"`
	CustomizableItems []MenuItem     `bson:"customizableItems,omitempty" json:"customizableItems,omitempty"`
	HasTastingSession bool           `bson:"hasTastingSession" json:"hasTastingSession"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type MenuCategory struct {
	Category      string     `bson:"category" json:"category"` // Basic, Standard, Premium, Luxury
	MenuItems     []MenuItem `bson:"menuItems,omitempty" json:"menuItems,omitempty"`
	PricePerPlate int64      `bson:"pricePerPlate" json:"pricePerPlate"` // minor units
	CategoryImage string     `bson:"categoryImage,omitempty" json:"categoryImage,omitempty"`
}

type MenuItem struct {
	Name  string `bson:"name" json:"name"`
	Price int64  `bson:"price,omitempty" json:"price,omitempty"` // minor units
}
