package roomRepo

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

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a new instance of RoomRepository using MongoDB.
func NewMongoRoomRepo() RoomRepository {
	return &MongoRoomRepo{coll: database.DB().Collection("rooms")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoRoomRepo) getOne(filter bson.M, id string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var room models.Room
	if err := r.coll.FindOne(ctx, filter).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("room %s not found or inactive: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}

func (r *MongoRoomRepo) GetActiveByID(id string) (*models.Room, error) {
	return r.getOne(bson.M{"id": id, "isActive": true}, id)
}

func (r *MongoRoomRepo) GetActiveByIDAndVenue(id, venueID string) (*models.Room, error) {
	return r.getOne(bson.M{"id": id, "venueId": venueID, "isActive": true}, id)
}

func (r *MongoRoomRepo) GetActiveByVenue(venueID string) ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"venueId": venueID, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms for venue %s: %w", venueID, err)
	}
	defer cursor.Close(ctx)
	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

// Create inserts a new room document.
func (r *MongoRoomRepo) Create(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// Update replaces an existing room document.
func (r *MongoRoomRepo) Update(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": room.ID}
	update := bson.M{"$set": room}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update room with id %s: %w", room.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room %s: %w", room.ID, utils.ErrNotFound)
	}
	return nil
}

// SoftDelete marks a room inactive.
func (r *MongoRoomRepo) SoftDelete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "isActive": true}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete room with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room %s: %w", id, utils.ErrNotFound)
	}
	return nil
}
