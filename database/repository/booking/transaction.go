package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"mandapbook/models"
	"mandapbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// runInTransaction executes fn inside a MongoDB session transaction,
// aborting on any error so no partial state survives.
func (r *MongoBookingRepo) runInTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// claimDates removes the requested days from the venue's open set. The
// filter requires every day to still be present, so a concurrent claim for
// an overlapping day matches nothing and the transaction aborts.
func (r *MongoBookingRepo) claimDates(sc mongo.SessionContext, venueID string, dates []string) error {
	filter := bson.M{
		"id":             venueID,
		"isActive":       true,
		"availableDates": bson.M{"$all": dates},
	}
	update := bson.M{
		"$pull": bson.M{"availableDates": bson.M{"$in": dates}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.venueColl.UpdateOne(sc, filter, update)
	if err != nil {
		return fmt.Errorf("failed to claim dates on venue %s: %w", venueID, err)
	}
	if res.MatchedCount == 0 {
		return utils.Validationf("selected dates are not available for this venue")
	}
	return nil
}

// releaseDates unions days back into the venue's open set. $addToSet keeps
// the release idempotent against days a provider edit already reopened.
func (r *MongoBookingRepo) releaseDates(sc mongo.SessionContext, venueID string, dates []string) error {
	filter := bson.M{"id": venueID}
	update := bson.M{
		"$addToSet": bson.M{"availableDates": bson.M{"$each": dates}},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.venueColl.UpdateOne(sc, filter, update); err != nil {
		return fmt.Errorf("failed to release dates on venue %s: %w", venueID, err)
	}
	return nil
}

// assertNoDateConflicts rejects when any active booking for the venue
// already covers one of the days. This is the venue-wide check, not the
// narrower per-user one; it holds regardless of who placed the prior
// booking.
func (r *MongoBookingRepo) assertNoDateConflicts(sc mongo.SessionContext, venueID string, dates []string, excludeID string) error {
	filter := bson.M{
		"venueId":    venueID,
		"isActive":   true,
		"orderDates": bson.M{"$in": dates},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.bookingColl.CountDocuments(sc, filter)
	if err != nil {
		return fmt.Errorf("conflict check failed for venue %s: %w", venueID, err)
	}
	if n > 0 {
		return fmt.Errorf("one or more dates already booked for this venue: %w", utils.ErrConflict)
	}
	return nil
}

// bookedDays returns the distinct days held by the venue's active bookings,
// read with the given context so it can run inside a session transaction.
func (r *MongoBookingRepo) bookedDays(ctx context.Context, venueID string) ([]string, error) {
	filter := bson.M{"venueId": venueID, "isActive": true}
	values, err := r.bookingColl.Distinct(ctx, "orderDates", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to collect booked days for venue %s: %w", venueID, err)
	}
	days := make([]string, 0, len(values))
	for _, v := range values {
		if day, ok := v.(string); ok {
			days = append(days, day)
		}
	}
	return days, nil
}

// ReplaceOpenDates applies a provider's wholesale calendar replacement.
// Booked days are recomputed and subtracted inside the same transaction as
// the write, so a claim committing between read and write cannot slip a
// sold day back into availableDates. Returns the set actually stored.
func (r *MongoBookingRepo) ReplaceOpenDates(ctx context.Context, venueID string, dates []string) ([]string, error) {
	var open []string
	err := r.runInTransaction(ctx, func(sc mongo.SessionContext) error {
		booked, err := r.bookedDays(sc, venueID)
		if err != nil {
			return err
		}
		blocked := models.DaySet(booked)
		open = make([]string, 0, len(dates))
		for _, d := range dates {
			if _, held := blocked[d]; !held {
				open = append(open, d)
			}
		}
		filter := bson.M{"id": venueID, "isActive": true}
		update := bson.M{"$set": bson.M{
			"availableDates": open,
			"updatedAt":      time.Now(),
		}}
		res, err := r.venueColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("failed to replace open dates on venue %s: %w", venueID, err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("venue %s not found or inactive: %w", venueID, utils.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return open, nil
}

// CreateWithDateClaim inserts the booking and shrinks the venue's open set
// as one logical write.
func (r *MongoBookingRepo) CreateWithDateClaim(ctx context.Context, booking *models.Booking) error {
	return r.runInTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := r.assertNoDateConflicts(sc, booking.VenueID, booking.OrderDates, ""); err != nil {
			return err
		}
		if err := r.claimDates(sc, booking.VenueID, booking.OrderDates); err != nil {
			return err
		}
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
}

// CancelWithDateRelease marks the booking cancelled and returns its days to
// the venue's open set as one logical write.
func (r *MongoBookingRepo) CancelWithDateRelease(ctx context.Context, bookingID, venueID string, dates []string) error {
	return r.runInTransaction(ctx, func(sc mongo.SessionContext) error {
		filter := bson.M{"id": bookingID, "isActive": true}
		update := bson.M{"$set": bson.M{
			"isActive":      false,
			"paymentStatus": models.PaymentCancelled,
			"updatedAt":     time.Now(),
		}}
		res, err := r.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("cancel booking %s failed: %w", bookingID, err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking %s not found or inactive: %w", bookingID, utils.ErrNotFound)
		}
		return r.releaseDates(sc, venueID, dates)
	})
}

// UpdateWithDateExchange rewrites the booking while exchanging its held
// days: newly requested days are claimed, days dropped from the order are
// released, days kept stay claimed throughout.
func (r *MongoBookingRepo) UpdateWithDateExchange(ctx context.Context, bookingID, venueID string, updateDoc bson.M, claim, release []string) error {
	return r.runInTransaction(ctx, func(sc mongo.SessionContext) error {
		if len(claim) > 0 {
			if err := r.assertNoDateConflicts(sc, venueID, claim, bookingID); err != nil {
				return err
			}
			if err := r.claimDates(sc, venueID, claim); err != nil {
				return err
			}
		}
		if len(release) > 0 {
			if err := r.releaseDates(sc, venueID, release); err != nil {
				return err
			}
		}
		filter := bson.M{"id": bookingID, "isActive": true}
		res, err := r.bookingColl.UpdateOne(sc, filter, updateDoc)
		if err != nil {
			return fmt.Errorf("update booking %s failed: %w", bookingID, err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking %s not found or inactive: %w", bookingID, utils.ErrNotFound)
		}
		return nil
	})
}
