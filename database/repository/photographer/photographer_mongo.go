package photographerRepo

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

// MongoPhotographerRepo implements PhotographerRepository using MongoDB.
type MongoPhotographerRepo struct {
	coll *mongo.Collection
}

// NewMongoPhotographerRepo creates a new instance of PhotographerRepository using MongoDB.
func NewMongoPhotographerRepo() PhotographerRepository {
	return &MongoPhotographerRepo{coll: database.DB().Collection("photographers")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoPhotographerRepo) GetActiveByID(id string) (*models.Photographer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var photographer models.Photographer
	filter := bson.M{"id": id, "isActive": true}
	if err := r.coll.FindOne(ctx, filter).Decode(&photographer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("photographer %s not found or inactive: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch photographer with id %s: %w", id, err)
	}
	return &photographer, nil
}

func (r *MongoPhotographerRepo) FindActiveByIDsAndVenue(ids []string, venueID string) ([]models.Photographer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{
		"id":       bson.M{"$in": ids},
		"venueIds": venueID,
		"isActive": true,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find photographers for venue %s: %w", venueID, err)
	}
	defer cursor.Close(ctx)
	var photographers []models.Photographer
	if err := cursor.All(ctx, &photographers); err != nil {
		return nil, fmt.Errorf("failed to decode photographers: %w", err)
	}
	return photographers, nil
}

func (r *MongoPhotographerRepo) GetActiveByVenue(venueID string) ([]models.Photographer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"venueIds": venueID, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list photographers for venue %s: %w", venueID, err)
	}
	defer cursor.Close(ctx)
	var photographers []models.Photographer
	if err := cursor.All(ctx, &photographers); err != nil {
		return nil, fmt.Errorf("failed to decode photographers: %w", err)
	}
	return photographers, nil
}

func (r *MongoPhotographerRepo) GetAllActive() ([]models.Photographer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list photographers: %w", err)
	}
	defer cursor.Close(ctx)
	var photographers []models.Photographer
	if err := cursor.All(ctx, &photographers); err != nil {
		return nil, fmt.Errorf("failed to decode photographers: %w", err)
	}
	return photographers, nil
}

// Create inserts a new photographer document.
func (r *MongoPhotographerRepo) Create(photographer *models.Photographer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, photographer); err != nil {
		return fmt.Errorf("failed to create photographer: %w", err)
	}
	return nil
}

// Update replaces an existing photographer document.
func (r *MongoPhotographerRepo) Update(photographer *models.Photographer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": photographer.ID}
	update := bson.M{"$set": photographer}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update photographer with id %s: %w", photographer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("photographer %s: %w", photographer.ID, utils.ErrNotFound)
	}
	return nil
}

// SoftDelete marks a photographer inactive.
func (r *MongoPhotographerRepo) SoftDelete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "isActive": true}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete photographer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("photographer %s: %w", id, utils.ErrNotFound)
	}
	return nil
}
