package models

import "time"

// Payment states of a booking. Partial may transition to Completed once the
// outstanding balance is paid; Completed and Cancelled accept no further
// payment transitions.
const (
	PaymentPartial   = "Partial"
	PaymentCompleted = "Completed"
	PaymentCancelled = "Cancelled"
)

// Booking is a reservation of specific days on a venue by a user.
//
// OrderDates are "YYYY-MM-DD" day strings drawn from the venue's
// availableDates at creation time, kept sorted and de-duplicated.
// TotalAmount and AmountPaid are in minor units (paise); AmountPaid never
// decreases and never exceeds TotalAmount.
type Booking struct {
	ID      string `bson:"id" json:"id"`
	VenueID string `bson:"venueId" json:"venueId"`
	UserID  string `bson:"userId" json:"userId"`

	OrderDates      []string `bson:"orderDates" json:"orderDates"`
	PhotographerIDs []string `bson:"photographerIds,omitempty" json:"photographerIds,omitempty"`
	CatererIDs      []string `bson:"catererIds,omitempty" json:"catererIds,omitempty"`
	RoomID          string   `bson:"roomId,omitempty" json:"roomId,omitempty"`

	TotalAmount   int64  `bson:"totalAmount" json:"totalAmount"`
	AmountPaid    int64  `bson:"amountPaid" json:"amountPaid"`
	PaymentID     string `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	PaymentStatus string `bson:"paymentStatus" json:"paymentStatus"`

	IsReviewAdded bool `bson:"isReviewAdded" json:"isReviewAdded"`
	IsActive      bool `bson:"isActive" json:"isActive"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RemainingAmount is the unpaid balance, never negative.
func (b *Booking) RemainingAmount() int64 {
	if rem := b.TotalAmount - b.AmountPaid; rem > 0 {
		return rem
	}
	return 0
}

// EarliestOrderDate returns the first booked day.
func (b *Booking) EarliestOrderDate() string {
	if len(b.OrderDates) == 0 {
		return ""
	}
	return b.OrderDates[0]
}

// BookingDetail is the denormalized listing/retrieval shape: the raw ledger
// record joined with read-only venue, user and resource summaries resolved
// at query time.
type BookingDetail struct {
	Booking         Booking        `json:"booking"`
	RemainingAmount int64          `json:"remainingAmount"`
	Venue           *Venue         `json:"venue,omitempty"`
	User            *User          `json:"user,omitempty"`
	Photographers   []Photographer `json:"photographers,omitempty"`
	Caterers        []Caterer      `json:"caterers,omitempty"`
	Room            *Room          `json:"room,omitempty"`
}
