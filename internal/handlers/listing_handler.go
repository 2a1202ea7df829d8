package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"marketplace/internal/models"
	"marketplace/internal/repositories"
	"marketplace/internal/services"
)

// ListingHandler handles HTTP requests for listings.
type ListingHandler struct {
	service  *services.ListingService
	validate *validator.Validate
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service *services.ListingService) *ListingHandler {
	return &ListingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the listing routes with the Fiber app.
func (h *ListingHandler) RegisterRoutes(router fiber.Router) {
	listingRoutes := router.Group("/listings")
	listingRoutes.Post("/", h.HandleCreateListing)
	listingRoutes.Get("/", h.HandleListListings)
	listingRoutes.Get("/:id", h.HandleGetListing)
}

// HandleCreateListing validates and persists a new listing.
func (h *ListingHandler) HandleCreateListing(c *fiber.Ctx) error {
	var req models.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	listing, err := h.service.CreateListing(c.Context(), &req)
	if err != nil {
		log.Printf("Error creating listing: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create listing",
			"error":   err.Error(),
		})
	}
	return c.JSON(listing)
}

// HandleListListings retrieves listings matching the query parameters.
func (h *ListingHandler) HandleListListings(c *fiber.Ctx) error {
	limit, err := parseLimit(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	filter := models.ListingFilter{
		Query: c.Query("q"),
		Type:  c.Query("type"),
		Tag:   c.Query("tag"),
		Limit: limit,
	}

	listings, err := h.service.ListListings(c.Context(), filter)
	if err != nil {
		log.Printf("Error listing listings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve listings",
			"error":   err.Error(),
		})
	}
	return c.JSON(listings)
}

// HandleGetListing retrieves a single listing by its identifier.
func (h *ListingHandler) HandleGetListing(c *fiber.Ctx) error {
	listing, err := h.service.GetListing(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid listing id",
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Listing not found",
			})
		}
		log.Printf("Error getting listing %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve listing",
			"error":   err.Error(),
		})
	}
	return c.JSON(listing)
}
