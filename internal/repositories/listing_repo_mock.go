package repositories

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
)

// MockListingRepository is an in-memory implementation of ListingRepository.
// Documents are kept in insertion order to mirror the store's default
// ordering for unfiltered queries.
type MockListingRepository struct {
	listings map[primitive.ObjectID]models.Listing
	order    []primitive.ObjectID
	mu       sync.RWMutex
}

// NewMockListingRepository creates a new instance of MockListingRepository.
func NewMockListingRepository() *MockListingRepository {
	return &MockListingRepository{
		listings: make(map[primitive.ObjectID]models.Listing),
	}
}

// Create adds a new listing, generating an identifier if absent.
func (r *MockListingRepository) Create(_ context.Context, listing *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if listing.ID.IsZero() {
		listing.ID = primitive.NewObjectID()
	}
	r.listings[listing.ID] = *listing
	r.order = append(r.order, listing.ID)
	return nil
}

// GetByID returns a listing by its identifier.
func (r *MockListingRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &listing, nil
}

// Find returns listings matching the filter, up to filter.Limit documents.
func (r *MockListingRepository) Find(_ context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []models.Listing{}
	for _, id := range r.order {
		listing := r.listings[id]
		if !matchListing(listing, filter) {
			continue
		}
		results = append(results, listing)
		if filter.Limit > 0 && int64(len(results)) >= filter.Limit {
			break
		}
	}
	return results, nil
}

func matchListing(listing models.Listing, filter models.ListingFilter) bool {
	if filter.Type != "" && listing.Type != filter.Type {
		return false
	}
	if filter.Tag != "" && !containsTag(listing.Tags, filter.Tag) {
		return false
	}
	if filter.Query != "" && !matchQuery(listing, filter.Query) {
		return false
	}
	return true
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func matchQuery(listing models.Listing, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(listing.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(listing.Description), q) {
		return true
	}
	for _, tag := range listing.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
