package venueRepo

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

// GetAllActive lists active venues with pagination.
func (r *MongoVenueRepo) GetAllActive(page, limit int) ([]models.Venue, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, paginate(page, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve venues: %w", err)
	}
	defer cursor.Close(ctx)
	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, nil
}

// Search performs a catalog search across active venues.
func (r *MongoVenueRepo) Search(criteria VenueSearchCriteria, page, limit int) ([]models.Venue, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}
	if criteria.Query != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": criteria.Query, "$options": "i"}},
			bson.M{"address.city": bson.M{"$regex": criteria.Query, "$options": "i"}},
		}
	}
	if criteria.City != "" {
		filter["address.city"] = bson.M{"$regex": "^" + criteria.City + "$", "$options": "i"}
	}
	if len(criteria.VenueTypes) > 0 {
		filter["venueTypes"] = bson.M{"$in": criteria.VenueTypes}
	}
	if criteria.MinCapacity > 0 {
		filter["guestCapacity"] = bson.M{"$gte": criteria.MinCapacity}
	}
	if criteria.MaxPricing > 0 {
		filter["venuePricing"] = bson.M{"$lte": criteria.MaxPricing}
	}
	if criteria.AvailableOn != "" {
		filter["availableDates"] = criteria.AvailableOn
	}

	cursor, err := r.coll.Find(ctx, filter, paginate(page, limit))
	if err != nil {
		return nil, fmt.Errorf("venue search failed: %w", err)
	}
	defer cursor.Close(ctx)
	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, nil
}
