package bookingRepo

import (
	"fmt"
	"time"

	"mandapbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func paginate(page, limit int) *options.FindOptions {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func (r *MongoBookingRepo) findBookings(filter bson.M, page, limit int) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.bookingColl.Find(ctx, filter, paginate(page, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListActiveByUser lists a user's active bookings, newest first.
func (r *MongoBookingRepo) ListActiveByUser(userID string, page, limit int) ([]models.Booking, error) {
	return r.findBookings(bson.M{"userId": userID, "isActive": true}, page, limit)
}

// ListActiveByVenues lists active bookings across the given venues.
func (r *MongoBookingRepo) ListActiveByVenues(venueIDs []string, page, limit int) ([]models.Booking, error) {
	if len(venueIDs) == 0 {
		return nil, nil
	}
	return r.findBookings(bson.M{"venueId": bson.M{"$in": venueIDs}, "isActive": true}, page, limit)
}

// ListActive lists all active bookings (admin-style view).
func (r *MongoBookingRepo) ListActive(page, limit int) ([]models.Booking, error) {
	return r.findBookings(bson.M{"isActive": true}, page, limit)
}

// CountActiveDateConflicts counts active bookings for the venue covering
// any of the given days, excluding excludeID when non-empty. Soft-deleted
// bookings never participate in conflict checks.
func (r *MongoBookingRepo) CountActiveDateConflicts(venueID string, dates []string, excludeID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"venueId":    venueID,
		"isActive":   true,
		"orderDates": bson.M{"$in": dates},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.bookingColl.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("conflict count failed for venue %s: %w", venueID, err)
	}
	return n, nil
}
