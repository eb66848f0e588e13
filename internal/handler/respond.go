package handler

import (
	"errors"

	"go-catalog-api/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// fail maps a service error to its HTTP status with a {message} body.
// Anything outside the known taxonomy is an infrastructure failure.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidID),
		errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrDuplicateSKU),
		errors.Is(err, model.ErrInsufficientStock),
		errors.Is(err, model.ErrDuplicateReview):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"message": err.Error()})
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, model.ErrInvalidID
	}
	return id, nil
}
