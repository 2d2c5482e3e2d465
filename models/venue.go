package models

import "time"

// Venue represents a bookable mandap listed by a provider.
//
// AvailableDates holds the currently open calendar days in "YYYY-MM-DD"
// form. The set is mutated by the booking engine (shrunk on booking, grown
// on cancellation) and replaced wholesale by provider edits. A day present
// in any active booking's orderDates for this venue must never appear here.
type Venue struct {
	ID             string   `bson:"id" json:"id"`
	ProviderID     string   `bson:"providerId" json:"providerId"`
	Name           string   `bson:"name" json:"name"`
	Description    string   `bson:"description" json:"description"`
	AvailableDates []string `bson:"availableDates" json:"availableDates"`
	VenueTypes     []string `bson:"venueTypes" json:"venueTypes"`
	Address        Address  `bson:"address" json:"address"`

	// All money amounts are in minor units (paise).
	VenuePricing    int64 `bson:"venuePricing" json:"venuePricing"`
	SecurityDeposit int64 `bson:"securityDeposit,omitempty" json:"securityDeposit,omitempty"`
	AdvancePayment  int64 `bson:"advancePayment,omitempty" json:"advancePayment,omitempty"`

	GuestCapacity      int      `bson:"guestCapacity" json:"guestCapacity"`
	Amenities          []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
	OutdoorFacilities  []string `bson:"outdoorFacilities,omitempty" json:"outdoorFacilities,omitempty"`
	CancellationPolicy string   `bson:"cancellationPolicy,omitempty" json:"cancellationPolicy,omitempty"`
	VenueImages        []string `bson:"venueImages,omitempty" json:"venueImages,omitempty"`

	IsExternalCateringAllowed bool `bson:"isExternalCateringAllowed" json:"isExternalCateringAllowed"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Address is embedded in a venue rather than referenced, so listing and
// booking population never need a second lookup.
type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	PinCode string `bson:"pinCode,omitempty" json:"pinCode,omitempty"`
}
