package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
	"marketplace/internal/services"
)

// MockListingRepository is a mock implementation of repositories.ListingRepository
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, listing *models.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockListingRepository) Find(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}

func listingPayload() *models.CreateListingRequest {
	price := 9.99
	return &models.CreateListingRequest{
		Title:       "Bot",
		Type:        "chatbot",
		Description: "d",
		Price:       &price,
		SellerName:  "A",
		SellerEmail: "a@x.com",
	}
}

func TestListingService_CreateListing(t *testing.T) {
	mockRepo := new(MockListingRepository)
	service := services.NewListingService(mockRepo)

	newID := primitive.NewObjectID()
	stored := &models.Listing{ID: newID, Title: "Bot", Type: "chatbot", Description: "d", Price: 9.99, Tags: []string{}, SellerName: "A", SellerEmail: "a@x.com"}

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Listing")).Run(func(args mock.Arguments) {
		listing := args.Get(1).(*models.Listing)
		assert.Equal(t, []string{}, listing.Tags) // tags default to empty list
		listing.ID = newID
	}).Return(nil).Once()
	mockRepo.On("GetByID", mock.Anything, newID).Return(stored, nil).Once()

	listing, err := service.CreateListing(context.Background(), listingPayload())

	assert.NoError(t, err)
	assert.Equal(t, stored, listing)
	assert.False(t, listing.ID.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestListingService_CreateListing_RepositoryError(t *testing.T) {
	mockRepo := new(MockListingRepository)
	service := services.NewListingService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Listing")).Return(fmt.Errorf("store unreachable")).Once()

	listing, err := service.CreateListing(context.Background(), listingPayload())

	assert.Error(t, err)
	assert.Nil(t, listing)
	assert.Contains(t, err.Error(), "store unreachable")
	mockRepo.AssertExpectations(t)
}

func TestListingService_GetListing(t *testing.T) {
	mockRepo := new(MockListingRepository)
	service := services.NewListingService(mockRepo)

	id := primitive.NewObjectID()
	expected := &models.Listing{ID: id, Title: "Bot"}

	// Successful retrieval by hex id
	mockRepo.On("GetByID", mock.Anything, id).Return(expected, nil).Once()
	listing, err := service.GetListing(context.Background(), id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, expected, listing)
	mockRepo.AssertExpectations(t)

	// Not found
	missing := primitive.NewObjectID()
	mockRepo.On("GetByID", mock.Anything, missing).Return(nil, repositories.ErrNotFound).Once()
	listing, err = service.GetListing(context.Background(), missing.Hex())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, listing)
	mockRepo.AssertExpectations(t)
}

func TestListingService_GetListing_InvalidID(t *testing.T) {
	mockRepo := new(MockListingRepository)
	service := services.NewListingService(mockRepo)

	listing, err := service.GetListing(context.Background(), "not-a-valid-id")

	assert.ErrorIs(t, err, services.ErrInvalidID)
	assert.Nil(t, listing)
	// The store must never be contacted for a malformed identifier.
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestListingService_ListListings(t *testing.T) {
	mockRepo := new(MockListingRepository)
	service := services.NewListingService(mockRepo)

	filter := models.ListingFilter{Type: "chatbot", Limit: 50}
	expected := []models.Listing{{Title: "Bot", Type: "chatbot"}}

	mockRepo.On("Find", mock.Anything, filter).Return(expected, nil).Once()

	listings, err := service.ListListings(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, expected, listings)
	mockRepo.AssertExpectations(t)
}
