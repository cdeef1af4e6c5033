package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"pecheck/internal/messaging"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
// A nil data value is encoded as null, which is how "no match" is reported.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// messageError maps a failed cross-context message to an error response.
// Requests a context cannot answer are the caller's fault; anything else
// means the receiving context is gone.
func messageError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, messaging.ErrUnhandled), errors.Is(err, messaging.ErrUnknownAction):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, messaging.ErrNoPageContext):
		return jsonError(c, fiber.StatusBadRequest, messaging.ErrNoPageContext.Error())
	default:
		return jsonError(c, fiber.StatusServiceUnavailable, "background unavailable")
	}
}
