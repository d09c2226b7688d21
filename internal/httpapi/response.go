package httpapi

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/nguyentantai21042004/slide-narrator/internal/checkpoint"
	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// RespondWithError sends a JSON error response.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func respondErr(c *fiber.Ctx, err error) error {
	return RespondWithError(c, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, os.ErrNotExist), errors.Is(err, checkpoint.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrParse), errors.Is(err, models.ErrDocumentRead):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, models.ErrModelCall):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
