package catererRepo

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

// MongoCatererRepo implements CatererRepository using MongoDB.
type MongoCatererRepo struct {
	coll *mongo.Collection
}

// NewMongoCatererRepo creates a new instance of CatererRepository using MongoDB.
func NewMongoCatererRepo() CatererRepository {
	return &MongoCatererRepo{coll: database.DB().Collection("caterers")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoCatererRepo) GetActiveByID(id string) (*models.Caterer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var caterer models.Caterer
	filter := bson.M{"id": id, "isActive": true}
	if err := r.coll.FindOne(ctx, filter).Decode(&caterer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("caterer %s not found or inactive: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch caterer with id %s: %w", id, err)
	}
	return &caterer, nil
}

func (r *MongoCatererRepo) FindActiveByIDsAndVenue(ids []string, venueID string) ([]models.Caterer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{
		"id":       bson.M{"$in": ids},
		"venueId":  venueID,
		"isActive": true,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find caterers for venue %s: %w", venueID, err)
	}
	defer cursor.Close(ctx)
	var caterers []models.Caterer
	if err := cursor.All(ctx, &caterers); err != nil {
		return nil, fmt.Errorf("failed to decode caterers: %w", err)
	}
	return caterers, nil
}

func (r *MongoCatererRepo) GetActiveByVenue(venueID string) ([]models.Caterer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"venueId": venueID, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list caterers for venue %s: %w", venueID, err)
	}
	defer cursor.Close(ctx)
	var caterers []models.Caterer
	if err := cursor.All(ctx, &caterers); err != nil {
		return nil, fmt.Errorf("failed to decode caterers: %w", err)
	}
	return caterers, nil
}

// Create inserts a new caterer document.
func (r *MongoCatererRepo) Create(caterer *models.Caterer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, caterer); err != nil {
		return fmt.Errorf("failed to create caterer: %w", err)
	}
	return nil
}

// Update replaces an existing caterer document.
func (r *MongoCatererRepo) Update(caterer *models.Caterer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": caterer.ID}
	update := bson.M{"$set": caterer}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update caterer with id %s: %w", caterer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("caterer %s: %w", caterer.ID, utils.ErrNotFound)
	}
	return nil
}

// SoftDelete marks a caterer inactive.
func (r *MongoCatererRepo) SoftDelete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "isActive": true}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete caterer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("caterer %s: %w", id, utils.ErrNotFound)
	}
	return nil
}
