package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glotta/translate-service/internal/domain/model"
)

// CredentialDocument holds one user-supplied provider secret.
type CredentialDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Provider  string             `bson:"provider" json:"provider"`
	Secret    string             `bson:"secret" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CredentialsRepository reads and writes per-user provider secrets.
type CredentialsRepository struct {
	collection *mongo.Collection
}

// NewCredentialsRepository creates a new credentials repository.
func NewCredentialsRepository(db *MongoDB) *CredentialsRepository {
	return &CredentialsRepository{
		collection: db.Credentials,
	}
}

// Credential returns the stored secret for userID and provider. A miss
// is reported as (nil, nil) so callers can fall back to the system
// default without inspecting errors.
func (r *CredentialsRepository) Credential(ctx context.Context, userID string, provider model.ProviderName) (*model.Credential, error) {
	var doc CredentialDocument
	err := r.collection.FindOne(ctx, bson.M{
		"user_id":  userID,
		"provider": string(provider),
	}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &model.Credential{
		Provider: provider,
		Scope:    model.ScopeUser,
		Secret:   doc.Secret,
	}, nil
}

// Store saves or replaces the secret for userID and provider.
func (r *CredentialsRepository) Store(ctx context.Context, userID string, provider model.ProviderName, secret string) error {
	now := time.Now()
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"user_id": userID, "provider": string(provider)},
		bson.M{
			"$set": bson.M{
				"secret":     secret,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{
				"user_id":    userID,
				"provider":   string(provider),
				"created_at": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// Delete removes the stored secret for userID and provider.
func (r *CredentialsRepository) Delete(ctx context.Context, userID string, provider model.ProviderName) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{
		"user_id":  userID,
		"provider": string(provider),
	})
	return err
}
