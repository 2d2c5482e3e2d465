package bookingRepo

import (
	"context"

	"mandapbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository is the booking ledger's data access layer. The three
// date-moving operations (claim, release, exchange) pair the venue's
// availableDates mutation with the ledger write inside a single MongoDB
// transaction, so a venue's open set and its active bookings can never
// disagree, even under concurrent requests.
type BookingRepository interface {
	// GetActiveByID retrieves an active booking.
	GetActiveByID(id string) (*models.Booking, error)

	// CreateWithDateClaim atomically verifies that no active booking holds
	// any of the requested days, removes them from the venue's open set and
	// inserts the booking. Fails with utils.ErrConflict when another active
	// booking covers a requested day, and with a validation error when a
	// day is no longer in the venue's availableDates.
	CreateWithDateClaim(ctx context.Context, booking *models.Booking) error

	// CancelWithDateRelease atomically marks the booking inactive and
	// Cancelled, and unions its order dates back into the venue's open set.
	CancelWithDateRelease(ctx context.Context, bookingID, venueID string, dates []string) error

	// UpdateWithDateExchange atomically applies updateDoc to the booking
	// while claiming the newly requested days and releasing the days
	// dropped from the order. Either slice may be empty.
	UpdateWithDateExchange(ctx context.Context, bookingID, venueID string, updateDoc bson.M, claim, release []string) error

	// CompletePayment transitions an active Partial booking to Completed,
	// recording the new amountPaid and the gateway reference. Returns the
	// updated booking, or utils.ErrNotFound when the booking is missing,
	// inactive or not Partial.
	CompletePayment(bookingID string, amountPaid int64, paymentID string) (*models.Booking, error)

	// SetReviewAdded flips the isReviewAdded flag on an active booking.
	SetReviewAdded(bookingID string, added bool) error

	// CountActiveDateConflicts counts active bookings for the venue that
	// cover any of the given days, excluding excludeID (may be empty).
	CountActiveDateConflicts(venueID string, dates []string, excludeID string) (int64, error)

	// ReplaceOpenDates applies a provider's wholesale calendar replacement
	// transactionally: booked days are recomputed inside the transaction
	// and subtracted from the requested set before the write, so a
	// concurrent claim can never resurface a sold day. Returns the set
	// actually stored.
	ReplaceOpenDates(ctx context.Context, venueID string, dates []string) ([]string, error)

	// ListActiveByUser lists a user's active bookings with pagination.
	ListActiveByUser(userID string, page, limit int) ([]models.Booking, error)
	// ListActiveByVenues lists active bookings across the given venues.
	ListActiveByVenues(venueIDs []string, page, limit int) ([]models.Booking, error)
	// ListActive lists all active bookings (admin-style), paginated.
	ListActive(page, limit int) ([]models.Booking, error)
}
