package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TranslationDocument is a shared translation keyed by content hash.
// It outlives the in-process cache and is shared by every instance of
// the service.
type TranslationDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ContentHash     string             `bson:"content_hash" json:"content_hash"`
	SourceText      string             `bson:"source_text" json:"source_text"`
	TargetLang      string             `bson:"target_lang" json:"target_lang"`
	Quality         string             `bson:"quality" json:"quality"`
	Translation     string             `bson:"translation" json:"translation"`
	Transliteration string             `bson:"transliteration,omitempty" json:"transliteration,omitempty"`
	Hits            int64              `bson:"hits" json:"hits"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// TranslationsRepository reads and writes the shared translation store.
type TranslationsRepository struct {
	collection *mongo.Collection
}

// NewTranslationsRepository creates a new translations repository.
func NewTranslationsRepository(db *MongoDB) *TranslationsRepository {
	return &TranslationsRepository{
		collection: db.Translations,
	}
}

// FindByHash returns the stored translation for hash, bumping its hit
// counter in the same round trip. A miss is reported as (nil, nil).
func (r *TranslationsRepository) FindByHash(ctx context.Context, hash string) (*TranslationDocument, error) {
	var doc TranslationDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"content_hash": hash},
		bson.M{"$inc": bson.M{"hits": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// Upsert stores doc under its content hash, replacing any previous
// translation for the same hash.
func (r *TranslationsRepository) Upsert(ctx context.Context, doc *TranslationDocument) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"source_text":     doc.SourceText,
			"target_lang":     doc.TargetLang,
			"quality":         doc.Quality,
			"translation":     doc.Translation,
			"transliteration": doc.Transliteration,
			"updated_at":      now,
		},
		"$setOnInsert": bson.M{
			"content_hash": doc.ContentHash,
			"hits":         int64(0),
			"created_at":   now,
		},
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"content_hash": doc.ContentHash},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}
