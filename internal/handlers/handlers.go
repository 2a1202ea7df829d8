package handlers

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"marketplace/internal/store"
)

// validationErrorResponse renders a per-field error map for a failed
// validator.Struct call.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// parseLimit reads the limit query parameter, applying the default when it is
// absent and rejecting values outside [1, 100].
func parseLimit(c *fiber.Ctx) (int64, error) {
	raw := c.Query("limit")
	if raw == "" {
		return store.DefaultLimit, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, store.ErrLimitOutOfRange
	}
	if err := store.ValidateLimit(limit); err != nil {
		return 0, err
	}
	return limit, nil
}
