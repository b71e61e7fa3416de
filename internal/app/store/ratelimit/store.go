// internal/app/store/ratelimit/store.go
package ratelimit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Bucket tracks request counts for one client key in the current window.
type Bucket struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Key         string             `bson:"key"`          // client identifier (remote IP)
	Count       int                `bson:"count"`        // requests in current window
	WindowStart time.Time          `bson:"window_start"` // when the current window started
	LastSeen    time.Time          `bson:"last_seen"`    // most recent request (for TTL cleanup)
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// Store implements fixed-window request rate limiting backed by Mongo, so
// the limit holds across process restarts.
type Store struct {
	c      *mongo.Collection
	max    int
	window time.Duration
}

// New creates a new rate limit Store allowing max requests per window.
func New(db *mongo.Database, max int, window time.Duration) *Store {
	return &Store{
		c:      db.Collection("rate_limits"),
		max:    max,
		window: window,
	}
}

// EnsureIndexes creates necessary indexes for efficient querying.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_ratelimit_key"),
		},
		// Stale buckets are cleaned up automatically after 24 hours.
		{
			Keys:    bson.D{{Key: "last_seen", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(86400).SetName("idx_ratelimit_ttl"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Allow records a request for key and reports whether it fits in the
// current window, along with the remaining allowance. Storage errors fail
// open: the request is allowed rather than blocking all traffic.
func (s *Store) Allow(ctx context.Context, key string) (allowed bool, remaining int) {
	now := time.Now().UTC()

	var bucket Bucket
	err := s.c.FindOne(ctx, bson.M{"key": key}).Decode(&bucket)
	if err == mongo.ErrNoDocuments {
		bucket = Bucket{
			ID:          primitive.NewObjectID(),
			Key:         key,
			Count:       1,
			WindowStart: now,
			LastSeen:    now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		_, _ = s.c.InsertOne(ctx, bucket)
		return true, s.max - 1
	}
	if err != nil {
		return true, s.max
	}

	if now.After(bucket.WindowStart.Add(s.window)) {
		bucket.Count = 1
		bucket.WindowStart = now
	} else {
		bucket.Count++
	}
	bucket.LastSeen = now
	bucket.UpdatedAt = now

	_, _ = s.c.UpdateOne(ctx,
		bson.M{"_id": bucket.ID},
		bson.M{"$set": bson.M{
			"count":        bucket.Count,
			"window_start": bucket.WindowStart,
			"last_seen":    bucket.LastSeen,
			"updated_at":   bucket.UpdatedAt,
		}},
	)

	if bucket.Count > s.max {
		return false, 0
	}
	return true, s.max - bucket.Count
}

// Reset removes the bucket for key.
func (s *Store) Reset(ctx context.Context, key string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"key": key})
	return err
}

// GetBucket returns the current bucket for key, or nil when none exists.
func (s *Store) GetBucket(ctx context.Context, key string) (*Bucket, error) {
	var bucket Bucket
	err := s.c.FindOne(ctx, bson.M{"key": key}).Decode(&bucket)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bucket, nil
}
