package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glotta/translate-service/internal/domain/model"
)

// UsageRepository records provider usage for accounting. Writes are
// fire-and-forget from the caller's perspective; the TTL index on the
// collection bounds retention.
type UsageRepository struct {
	collection *mongo.Collection
}

// NewUsageRepository creates a new usage repository.
func NewUsageRepository(db *MongoDB) *UsageRepository {
	return &UsageRepository{
		collection: db.Usage,
	}
}

// Insert stores one usage record.
func (r *UsageRepository) Insert(ctx context.Context, record *model.UsageRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// ForUser returns the most recent usage records for userID, newest
// first, capped at limit.
func (r *UsageRepository) ForUser(ctx context.Context, userID string, limit int) ([]*model.UsageRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	cursor, err := r.collection.Find(
		ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var records []*model.UsageRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
