// Package repository provides the MongoDB data access layer: the
// shared translation store, per-user provider credentials, and usage
// records.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
	// UsageTTL is how long usage records are retained.
	UsageTTL time.Duration
}

// DefaultMongoConfig returns production-oriented MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
		UsageTTL:               90 * 24 * time.Hour,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client       *mongo.Client
	Database     *mongo.Database
	Translations *mongo.Collection
	Credentials  *mongo.Collection
	Usage        *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:       client,
		Database:     db,
		Translations: db.Collection("translations"),
		Credentials:  db.Collection("credentials"),
		Usage:        db.Collection("usage"),
	}

	if err := mongoDB.createIndexes(ctx, cfg.UsageTTL); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates the indexes each collection relies on.
func (m *MongoDB) createIndexes(ctx context.Context, usageTTL time.Duration) error {
	// Translations: one document per content hash.
	hashIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"content_hash": 1},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Translations.Indexes().CreateOne(ctx, hashIndex); err != nil {
		return err
	}

	// Credentials: one secret per user and provider.
	credIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"user_id": 1, "provider": 1},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Credentials.Indexes().CreateOne(ctx, credIndex)
	// Ignore errors if index already exists

	// Usage: per-user lookups plus TTL cleanup.
	usageUserIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"user_id": 1, "timestamp": -1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Usage.Indexes().CreateOne(ctx, usageUserIndex)

	if usageTTL > 0 {
		usageTTLIndex := mongo.IndexModel{
			Keys:    map[string]interface{}{"timestamp": 1},
			Options: options.Index().SetExpireAfterSeconds(int32(usageTTL / time.Second)),
		}
		_, _ = m.Usage.Indexes().CreateOne(ctx, usageTTLIndex)
	}

	return nil
}

// Ping verifies the connection is alive.
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
