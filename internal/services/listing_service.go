package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

// ListingService handles business logic related to listings.
type ListingService struct {
	repo repositories.ListingRepository
}

// NewListingService creates a new ListingService.
func NewListingService(repo repositories.ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

// CreateListing persists a validated listing payload and returns the stored
// document, re-fetched by its newly generated identifier.
func (s *ListingService) CreateListing(ctx context.Context, req *models.CreateListingRequest) (*models.Listing, error) {
	listing := req.ToListing()
	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return s.repo.GetByID(ctx, listing.ID)
}

// ListListings retrieves listings matching the filter.
func (s *ListingService) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	return s.repo.Find(ctx, filter)
}

// GetListing retrieves a single listing by its opaque string identifier.
// A malformed identifier fails with ErrInvalidID before any store access.
func (s *ListingService) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return s.repo.GetByID(ctx, oid)
}
