package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
)

// ListingRepository defines the interface for listing data access.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error)
	Find(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
}
