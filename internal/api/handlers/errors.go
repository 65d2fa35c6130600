package handlers

import (
	"Fluid-Balance-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// statusCode maps service errors onto the HTTP taxonomy: invalid input is 400,
// missing referenced entities are 404, anything else is a store failure.
func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrLogNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrPatientNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidEventDate),
		errors.Is(err, domain.ErrInvalidEventTime),
		errors.Is(err, domain.ErrInvalidBarcode),
		errors.Is(err, domain.ErrDuplicateBarcode),
		errors.Is(err, domain.ErrInvalidPatientState),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		log.Errorf("store failure: %v", err)
		return fiber.StatusInternalServerError
	}
}
