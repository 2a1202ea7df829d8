package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"marketplace/internal/models"
	"marketplace/internal/store"
)

const maxDiagnosticCollections = 10

// SystemHandler serves the informational, diagnostic, and schema endpoints.
type SystemHandler struct {
	store *store.Store
}

// NewSystemHandler creates a new SystemHandler. The store may be nil, in
// which case diagnostics report the database as unavailable.
func NewSystemHandler(s *store.Store) *SystemHandler {
	return &SystemHandler{store: s}
}

// RegisterRoutes registers the system routes with the Fiber app.
func (h *SystemHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.HandleRoot)
	app.Get("/test", h.HandleDiagnostics)
	app.Get("/schema", h.HandleSchema)
}

// HandleRoot reports service liveness.
func (h *SystemHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "AI Marketplace Backend Running",
	})
}

// HandleDiagnostics reports store connectivity and up to ten collection
// names. Store errors are caught and reported as descriptive strings rather
// than failing the request.
func (h *SystemHandler) HandleDiagnostics(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "set"
	}
	if h.store == nil {
		return c.JSON(response)
	}

	response["database"] = "available"
	response["database_name"] = h.store.Name()

	names, err := h.store.CollectionNames(c.Context())
	if err != nil {
		response["database"] = "error: " + truncate(err.Error(), 80)
		return c.JSON(response)
	}
	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	response["collections"] = names
	response["connection_status"] = "connected"
	response["database"] = "connected and working"
	return c.JSON(response)
}

// HandleSchema returns the structured schema documents for the three entities.
func (h *SystemHandler) HandleSchema(c *fiber.Ctx) error {
	return c.JSON(models.Schemas())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
