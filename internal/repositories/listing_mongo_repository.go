package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"marketplace/internal/models"
	"marketplace/internal/store"
)

const listingCollection = "listing"

// MongoListingRepository is a document-store implementation of ListingRepository.
type MongoListingRepository struct {
	store *store.Store
}

// NewMongoListingRepository creates a new instance of MongoListingRepository.
func NewMongoListingRepository(s *store.Store) *MongoListingRepository {
	return &MongoListingRepository{store: s}
}

// Create inserts a new listing and records the store-generated identifier on it.
func (r *MongoListingRepository) Create(ctx context.Context, listing *models.Listing) error {
	id, err := r.store.Insert(ctx, listingCollection, listing)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	listing.ID = id
	return nil
}

// GetByID retrieves a single listing by its identifier.
func (r *MongoListingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	var listing models.Listing
	if err := r.store.FindByID(ctx, listingCollection, id, &listing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get listing %s: %w", id.Hex(), err)
	}
	return &listing, nil
}

// Find retrieves listings matching the filter, up to filter.Limit documents.
func (r *MongoListingRepository) Find(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	listings := []models.Listing{}
	if err := r.store.Find(ctx, listingCollection, listingFilterToBSON(filter), filter.Limit, &listings); err != nil {
		return nil, fmt.Errorf("failed to find listings: %w", err)
	}
	return listings, nil
}

// listingFilterToBSON translates the typed filter into a store query:
// exact match on type, membership test on tags, and a case-insensitive
// substring match across title, description, and tags, combined by AND.
func listingFilterToBSON(filter models.ListingFilter) bson.M {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Tag != "" {
		query["tags"] = bson.M{"$in": []string{filter.Tag}}
	}
	if filter.Query != "" {
		regex := primitive.Regex{Pattern: filter.Query, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
			bson.M{"tags": regex},
		}
	}
	return query
}
