package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Usage kinds.
const (
	UsageKindTranslation = "translation"
	UsageKindSpeech      = "speech"
)

// UsageRecord represents one billable provider call. Records are written
// best-effort: a failed write is logged and never blocks the response.
type UsageRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Kind      string             `bson:"kind" json:"kind"`
	Provider  string             `bson:"provider" json:"provider"`
	// Volume is characters for translation, bytes for speech.
	Volume    int                `bson:"volume" json:"volume"`
	Cost      float64            `bson:"cost" json:"cost"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
