package reviewRepo

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

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	GetActiveByID(id string) (*models.Review, error)
	GetActiveByVenue(venueID string) ([]models.Review, error)
	RatingForVenue(venueID string) (*models.VenueRating, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	SoftDelete(id string) error
}

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	return &MongoReviewRepo{coll: database.DB().Collection("reviews")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoReviewRepo) GetActiveByID(id string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "isActive": true}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("review %s: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch review with id %s: %w", id, err)
	}
	return &review, nil
}

func (r *MongoReviewRepo) GetActiveByVenue(venueID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"venueId": venueID, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for venue %s: %w", venueID, err)
	}
	defer cursor.Close(ctx)
	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// RatingForVenue aggregates the venue's average rating and review count.
func (r *MongoReviewRepo) RatingForVenue(venueID string) (*models.VenueRating, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"venueId": venueID, "isActive": true}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           "$venueId",
			"averageRating": bson.M{"$avg": "$rating"},
			"reviewCount":   bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rating for venue %s: %w", venueID, err)
	}
	defer cursor.Close(ctx)

	var result struct {
		AverageRating float64 `bson:"averageRating"`
		ReviewCount   int     `bson:"reviewCount"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return nil, fmt.Errorf("failed to decode rating for venue %s: %w", venueID, err)
		}
	}
	return &models.VenueRating{
		VenueID:       venueID,
		AverageRating: result.AverageRating,
		ReviewCount:   result.ReviewCount,
	}, nil
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Update replaces an existing review document.
func (r *MongoReviewRepo) Update(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": review.ID}, bson.M{"$set": review})
	if err != nil {
		return fmt.Errorf("failed to update review with id %s: %w", review.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review %s: %w", review.ID, utils.ErrNotFound)
	}
	return nil
}

// SoftDelete marks a review inactive.
func (r *MongoReviewRepo) SoftDelete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "isActive": true}, update)
	if err != nil {
		return fmt.Errorf("failed to delete review with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review %s: %w", id, utils.ErrNotFound)
	}
	return nil
}
