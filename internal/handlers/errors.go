package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"diancan/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto a status code and JSON body.
// Storage failures are logged and answered with fallback only, so driver
// detail never reaches the client.
func respondError(c *fiber.Ctx, err error, notFound, fallback string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		body := fiber.Map{"message": verr.Message}
		if len(verr.Fields) > 0 {
			body["errors"] = verr.Fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFound,
		})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": strings.TrimSuffix(err.Error(), ": "+services.ErrConflict.Error()),
		})
	default:
		slog.Error(fallback, "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fallback,
		})
	}
}

// invalidBody answers a request whose body could not be parsed.
func invalidBody(c *fiber.Ctx, err error) error {
	slog.Debug("Error parsing request body", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes or oversized bodies, as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
		message = ferr.Message
	} else {
		slog.Error("Unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}
