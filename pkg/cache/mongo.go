package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOptions configures a MongoCache.
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
}

// MongoCache stores entries as documents. Expiry is enforced by a TTL index
// on expires_at and double-checked on read, since the TTL monitor only runs
// about once a minute.
type MongoCache struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type mongoEntry struct {
	Key       string     `bson:"_id"`
	Data      []byte     `bson:"data"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

// NewMongoCache connects, pings and ensures the TTL index exists.
func NewMongoCache(ctx context.Context, opts MongoOptions) (*MongoCache, error) {
	if opts.URI == "" {
		opts.URI = "mongodb://localhost:27017"
	}
	if opts.Database == "" {
		opts.Database = "genlayer"
	}
	if opts.Collection == "" {
		opts.Collection = "cache"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: mongo connect: %v", ErrBackend, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: mongo ping: %v", ErrBackend, err)
	}

	coll := client.Database(opts.Database).Collection(opts.Collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: mongo ttl index: %v", ErrBackend, err)
	}
	return &MongoCache{client: client, coll: coll}, nil
}

// Get retrieves a value.
func (c *MongoCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry mongoEntry
	err := RetryWithBackoff(ctx, func() error {
		return classifyMongo(c.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&entry))
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if entry.ExpiresAt != nil && time.Now().After(*entry.ExpiresAt) {
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Set upserts a value.
func (c *MongoCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := mongoEntry{Key: key, Data: data}
	if ttl > 0 {
		exp := time.Now().Add(ttl).UTC()
		entry.ExpiresAt = &exp
	}
	return RetryWithBackoff(ctx, func() error {
		_, err := c.coll.ReplaceOne(ctx, bson.M{"_id": key}, entry, options.Replace().SetUpsert(true))
		return classifyMongo(err)
	})
}

// Delete removes a value.
func (c *MongoCache) Delete(ctx context.Context, key string) error {
	return RetryWithBackoff(ctx, func() error {
		_, err := c.coll.DeleteOne(ctx, bson.M{"_id": key})
		return classifyMongo(err)
	})
}

// Close disconnects the client.
func (c *MongoCache) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}

func classifyMongo(err error) error {
	if err == nil || errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return Retryable(err)
	}
	return err
}

var _ Cache = (*MongoCache)(nil)
