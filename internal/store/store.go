package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Limit bounds for list queries.
const (
	DefaultLimit = 50
	MinLimit     = 1
	MaxLimit     = 100
)

// ErrLimitOutOfRange is returned when a caller-supplied limit falls outside
// [MinLimit, MaxLimit].
var ErrLimitOutOfRange = fmt.Errorf("limit must be between %d and %d", MinLimit, MaxLimit)

// ValidateLimit rejects limit values outside the allowed range.
func ValidateLimit(limit int64) error {
	if limit < MinLimit || limit > MaxLimit {
		return ErrLimitOutOfRange
	}
	return nil
}

// Store wraps a single MongoDB database handle and exposes generic document
// helpers parameterized by collection name.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the process-wide store connection and verifies it with
// a ping before returning.
func Connect(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Name returns the database name.
func (s *Store) Name() string {
	return s.db.Name()
}

// Ping verifies the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// CollectionNames lists the collections present in the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// Insert writes one document to the named collection and returns the
// identifier generated by the store.
func (s *Store) Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T in %s", res.InsertedID, collection)
	}
	return id, nil
}

// FindByID decodes the document with the given identifier into out.
// Returns mongo.ErrNoDocuments when no document matches.
func (s *Store) FindByID(ctx context.Context, collection string, id primitive.ObjectID, out any) error {
	return s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
}

// Find decodes up to limit documents matching filter into out (a pointer to a
// slice). An empty filter matches the whole collection; ordering is the
// store's default.
func (s *Store) Find(ctx context.Context, collection string, filter any, limit int64, out any) error {
	cur, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}
	return nil
}

// Close tears down the underlying client connection.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
