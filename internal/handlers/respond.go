package handlers

import (
	"errors"
	"log/slog"

	"github.com/LunaaVerse/ttm-sub002/internal/dto"
	"github.com/LunaaVerse/ttm-sub002/internal/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps the lifecycle error taxonomy onto HTTP responses.
// Persistence failures are logged and surface as a generic 500 so driver
// internals never reach the client.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrValidation):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		return respondError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrConflict):
		return respondError(c, fiber.StatusConflict, err.Error())
	}
	slog.Error("service call failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return respondError(c, fiber.StatusInternalServerError, "Internal server error")
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}
