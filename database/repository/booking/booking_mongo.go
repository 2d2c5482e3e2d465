package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mandapbook/database"
	"mandapbook/models"
	"mandapbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB. It holds both
// the bookings and venues collections because the date-moving operations
// must write to them in one transaction.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	venueColl   *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		venueColl:   db.Collection("venues"),
	}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoBookingRepo) GetActiveByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var booking models.Booking
	filter := bson.M{"id": id, "isActive": true}
	if err := r.bookingColl.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s not found or inactive: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// CompletePayment performs the Partial -> Completed transition as a single
// conditional update; a booking that is missing, inactive, Cancelled or
// already Completed matches nothing.
func (r *MongoBookingRepo) CompletePayment(bookingID string, amountPaid int64, paymentID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":            bookingID,
		"isActive":      true,
		"paymentStatus": models.PaymentPartial,
	}
	update := bson.M{"$set": bson.M{
		"amountPaid":    amountPaid,
		"paymentStatus": models.PaymentCompleted,
		"paymentId":     paymentID,
		"updatedAt":     time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.bookingColl.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s is not an active partial booking: %w", bookingID, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to complete payment for booking %s: %w", bookingID, err)
	}
	return &updated, nil
}

// SetReviewAdded flips the isReviewAdded flag on an active booking.
func (r *MongoBookingRepo) SetReviewAdded(bookingID string, added bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "isActive": true}
	update := bson.M{"$set": bson.M{"isReviewAdded": added, "updatedAt": time.Now()}}
	result, err := r.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set review flag on booking %s: %w", bookingID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", bookingID, utils.ErrNotFound)
	}
	return nil
}
