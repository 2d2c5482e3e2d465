package approvalRepo

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

// ApprovalRepository stores provider approval requests and the admin
// notification records written alongside pushes.
type ApprovalRepository interface {
	GetPendingByProvider(providerID string) (*models.ApprovalRequest, error)
	ListPending() ([]models.ApprovalRequest, error)
	Create(req *models.ApprovalRequest) error
	Resolve(id, status, remark string) error

	CreateNotification(n *models.AdminNotification) error
	ListNotifications(unreadOnly bool) ([]models.AdminNotification, error)
	MarkNotificationRead(id string) error
}

// MongoApprovalRepo implements ApprovalRepository using MongoDB.
type MongoApprovalRepo struct {
	requestColl      *mongo.Collection
	notificationColl *mongo.Collection
}

// NewMongoApprovalRepo creates a new instance of ApprovalRepository using MongoDB.
func NewMongoApprovalRepo() ApprovalRepository {
	db := database.DB()
	return &MongoApprovalRepo{
		requestColl:      db.Collection("approval_requests"),
		notificationColl: db.Collection("admin_notifications"),
	}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoApprovalRepo) GetPendingByProvider(providerID string) (*models.ApprovalRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var req models.ApprovalRequest
	filter := bson.M{"providerId": providerID, "status": models.ApprovalPending}
	if err := r.requestColl.FindOne(ctx, filter).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no pending approval request for provider %s: %w", providerID, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch approval request: %w", err)
	}
	return &req, nil
}

func (r *MongoApprovalRepo) ListPending() ([]models.ApprovalRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.requestColl.Find(ctx, bson.M{"status": models.ApprovalPending}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approval requests: %w", err)
	}
	defer cursor.Close(ctx)
	var reqs []models.ApprovalRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, fmt.Errorf("failed to decode approval requests: %w", err)
	}
	return reqs, nil
}

// Create inserts a new approval request.
func (r *MongoApprovalRepo) Create(req *models.ApprovalRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.requestColl.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create approval request: %w", err)
	}
	return nil
}

// Resolve marks a pending request approved or rejected.
func (r *MongoApprovalRepo) Resolve(id, status, remark string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"id": id, "status": models.ApprovalPending}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"remark":     remark,
		"resolvedAt": now,
	}}
	result, err := r.requestColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to resolve approval request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("approval request %s not pending: %w", id, utils.ErrNotFound)
	}
	return nil
}

// CreateNotification inserts an admin notification record.
func (r *MongoApprovalRepo) CreateNotification(n *models.AdminNotification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.notificationColl.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create admin notification: %w", err)
	}
	return nil
}

func (r *MongoApprovalRepo) ListNotifications(unreadOnly bool) ([]models.AdminNotification, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	filter := bson.M{}
	if unreadOnly {
		filter["isRead"] = false
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.notificationColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin notifications: %w", err)
	}
	defer cursor.Close(ctx)
	var notifications []models.AdminNotification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode admin notifications: %w", err)
	}
	return notifications, nil
}

func (r *MongoApprovalRepo) MarkNotificationRead(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.notificationColl.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification %s: %w", id, utils.ErrNotFound)
	}
	return nil
}
