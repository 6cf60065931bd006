package api

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dayledger/internal/services"
)

var errInvalidPayload = errors.New("invalid payload")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Storage details are logged and never returned to the caller.
func (handler *Handler) writeServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return apiError(c, fiber.StatusBadRequest, validationErr.Message)
	}
	var persistenceErr *services.PersistenceError
	isPersistence := errors.As(err, &persistenceErr)
	if !isPersistence && errors.Is(err, services.ErrNotFound) {
		return apiError(c, fiber.StatusNotFound, err.Error())
	}

	event := handler.logger.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID))
	if isPersistence {
		event.Str("op", persistenceErr.Op).Msg("persistence failure")
		return apiError(c, fiber.StatusInternalServerError, "failed to "+persistenceErr.Op)
	}
	event.Msg("unexpected failure")
	return apiError(c, fiber.StatusInternalServerError, "internal server error")
}

// decodeJSONBody accepts an empty body as an empty object.
func decodeJSONBody(c *fiber.Ctx, target any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errInvalidPayload
	}
	return nil
}

func queryFlag(c *fiber.Ctx, key string) bool {
	value, err := strconv.ParseBool(c.Query(key))
	return err == nil && value
}
