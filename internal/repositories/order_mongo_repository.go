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

const orderCollection = "order"

// MongoOrderRepository is a document-store implementation of OrderRepository.
type MongoOrderRepository struct {
	store *store.Store
}

// NewMongoOrderRepository creates a new instance of MongoOrderRepository.
func NewMongoOrderRepository(s *store.Store) *MongoOrderRepository {
	return &MongoOrderRepository{store: s}
}

// Create inserts a new order and records the store-generated identifier on it.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	id, err := r.store.Insert(ctx, orderCollection, order)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = id
	return nil
}

// GetByID retrieves a single order by its identifier.
func (r *MongoOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := r.store.FindByID(ctx, orderCollection, id, &order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id.Hex(), err)
	}
	return &order, nil
}

// Find retrieves orders matching the filter, up to filter.Limit documents.
func (r *MongoOrderRepository) Find(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	query := bson.M{}
	if filter.BuyerEmail != "" {
		query["buyer_email"] = filter.BuyerEmail
	}
	orders := []models.Order{}
	if err := r.store.Find(ctx, orderCollection, query, filter.Limit, &orders); err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}
