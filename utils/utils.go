package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pointer returns a pointer to the given value
func Pointer[T any](v T) *T {
	return &v
}

// QueryUserID reads the userId query parameter, defaulting to the demo
// user when absent or unparseable.
func QueryUserID(c *fiber.Ctx) int {
	id, err := strconv.Atoi(c.Query("userId"))
	if err != nil || id <= 0 {
		return 1
	}
	return id
}

// ErrorResponse creates a standardized error envelope
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationErrorResponse reports field-level violations alongside the
// generic message
func ValidationErrorResponse(c *fiber.Ctx, errs []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid input",
		"errors":  errs,
	})
}
