package venueRepo

import (
	"fmt"
	"time"

	"mandapbook/models"
	"mandapbook/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new venue document.
func (r *MongoVenueRepo) Create(venue *models.Venue) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, venue)
	if err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

// UpdateWithDocument updates a venue using a custom update document.
func (r *MongoVenueRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update venue with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("venue %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

// SoftDelete marks a venue inactive; only the owning provider's venue matches.
func (r *MongoVenueRepo) SoftDelete(id, providerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "providerId": providerID, "isActive": true}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete venue with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("venue %s: %w", id, utils.ErrNotFound)
	}
	return nil
}
