package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[primitive.ObjectID]models.Order
	order  []primitive.ObjectID
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[primitive.ObjectID]models.Order),
	}
}

// Create adds a new order, generating an identifier if absent.
func (r *MockOrderRepository) Create(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	r.orders[order.ID] = *order
	r.order = append(r.order, order.ID)
	return nil
}

// GetByID returns an order by its identifier.
func (r *MockOrderRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

// Find returns orders matching the filter, up to filter.Limit documents.
func (r *MockOrderRepository) Find(_ context.Context, filter models.OrderFilter) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []models.Order{}
	for _, id := range r.order {
		order := r.orders[id]
		if filter.BuyerEmail != "" && order.BuyerEmail != filter.BuyerEmail {
			continue
		}
		results = append(results, order)
		if filter.Limit > 0 && int64(len(results)) >= filter.Limit {
			break
		}
	}
	return results, nil
}
