package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
)

func seedListings(t *testing.T, repo *repositories.MockListingRepository) []models.Listing {
	t.Helper()
	listings := []models.Listing{
		{Title: "Support Bot", Type: "chatbot", Description: "answers questions", Tags: []string{"support", "ai"}},
		{Title: "Site Builder", Type: "webflow", Description: "builds sites", Tags: []string{"web"}},
		{Title: "Pipeline", Type: "workflow", Description: "automation", Tags: []string{"supporting"}},
	}
	for i := range listings {
		assert.NoError(t, repo.Create(context.Background(), &listings[i]))
		assert.False(t, listings[i].ID.IsZero())
	}
	return listings
}

func TestMockListingRepository_GetByID(t *testing.T) {
	repo := repositories.NewMockListingRepository()
	listings := seedListings(t, repo)

	got, err := repo.GetByID(context.Background(), listings[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, listings[0], *got)

	_, err = repo.GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMockListingRepository_Find(t *testing.T) {
	repo := repositories.NewMockListingRepository()
	listings := seedListings(t, repo)

	// Insertion order is preserved for unfiltered queries.
	all, err := repo.Find(context.Background(), models.ListingFilter{Limit: 50})
	assert.NoError(t, err)
	assert.Equal(t, listings, all)

	// Limit caps the result size.
	capped, err := repo.Find(context.Background(), models.ListingFilter{Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, capped, 2)

	// Exact tag membership, never substring.
	tagged, err := repo.Find(context.Background(), models.ListingFilter{Tag: "support", Limit: 50})
	assert.NoError(t, err)
	assert.Len(t, tagged, 1)
	assert.Equal(t, "Support Bot", tagged[0].Title)

	// Query is a case-insensitive substring over title, description, and tags.
	byQuery, err := repo.Find(context.Background(), models.ListingFilter{Query: "BUILD", Limit: 50})
	assert.NoError(t, err)
	assert.Len(t, byQuery, 1)
	assert.Equal(t, "Site Builder", byQuery[0].Title)

	byTagQuery, err := repo.Find(context.Background(), models.ListingFilter{Query: "ai", Limit: 50})
	assert.NoError(t, err)
	assert.NotEmpty(t, byTagQuery)

	// Type and query combine with AND.
	combined, err := repo.Find(context.Background(), models.ListingFilter{Query: "s", Type: "webflow", Limit: 50})
	assert.NoError(t, err)
	assert.Len(t, combined, 1)
	assert.Equal(t, "Site Builder", combined[0].Title)
}

func TestMockOrderRepository(t *testing.T) {
	repo := repositories.NewMockOrderRepository()

	orders := []models.Order{
		{ListingID: primitive.NewObjectID(), BuyerName: "B", BuyerEmail: "b@x.com", Status: "completed"},
		{ListingID: primitive.NewObjectID(), BuyerName: "C", BuyerEmail: "c@x.com", Status: "completed"},
	}
	for i := range orders {
		assert.NoError(t, repo.Create(context.Background(), &orders[i]))
	}

	got, err := repo.GetByID(context.Background(), orders[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, orders[0], *got)

	byEmail, err := repo.Find(context.Background(), models.OrderFilter{BuyerEmail: "c@x.com", Limit: 50})
	assert.NoError(t, err)
	assert.Len(t, byEmail, 1)
	assert.Equal(t, "C", byEmail[0].BuyerName)

	all, err := repo.Find(context.Background(), models.OrderFilter{Limit: 50})
	assert.NoError(t, err)
	assert.Equal(t, orders, all)

	_, err = repo.GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
