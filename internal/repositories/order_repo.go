package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Find(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
}
