package services

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

// EventPublisher publishes order lifecycle events to a message broker.
type EventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	listingRepo repositories.ListingRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService. The publisher may be nil, in
// which case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, listingRepo repositories.ListingRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
	}
}

// CreateOrder validates the referenced listing and persists the order with
// the listing reference in the store's native identifier type. A malformed
// listing_id fails with ErrInvalidID before any store access; an absent
// listing fails with repositories.ErrNotFound and writes nothing.
func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	listingID, err := primitive.ObjectIDFromHex(req.ListingID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing_id %q", ErrInvalidID, req.ListingID)
	}

	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.DefaultOrderStatus
	}

	order := &models.Order{
		ListingID:  listingID,
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		Status:     status,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	created, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	// Event publication is best effort: a broker failure never fails the order.
	if s.publisher != nil {
		event := map[string]interface{}{
			"order_id":    created.ID.Hex(),
			"listing_id":  created.ListingID.Hex(),
			"buyer_email": created.BuyerEmail,
			"status":      created.Status,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", created.ID.Hex(), err)
		}
	}

	return created, nil
}

// ListOrders retrieves orders matching the filter.
func (s *OrderService) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	return s.orderRepo.Find(ctx, filter)
}
