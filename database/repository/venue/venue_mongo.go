package venueRepo

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
)

// MongoVenueRepo implements VenueRepository using MongoDB.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo creates a new instance of VenueRepository using MongoDB.
func NewMongoVenueRepo() VenueRepository {
	coll := database.DB().Collection("venues")
	return &MongoVenueRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoVenueRepo) GetByID(id string) (*models.Venue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var venue models.Venue
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("venue %s: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &venue, nil
}

func (r *MongoVenueRepo) GetActiveByID(id string) (*models.Venue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var venue models.Venue
	filter := bson.M{"id": id, "isActive": true}
	if err := r.coll.FindOne(ctx, filter).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("venue %s not found or inactive: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &venue, nil
}

func (r *MongoVenueRepo) GetByProvider(providerID string) ([]models.Venue, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"providerId": providerID, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve venues for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)
	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, nil
}
