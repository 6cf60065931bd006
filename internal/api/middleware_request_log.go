package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one line per request and feeds the HTTP metrics.
func (handler *Handler) RequestLogger(c *fiber.Ctx) error {
	started := time.Now()
	if handler.metrics != nil {
		done := handler.metrics.TrackInFlight()
		defer done()
	}

	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
	}
	elapsed := time.Since(started)
	route := c.Route().Path

	if handler.metrics != nil {
		handler.metrics.ObserveRequest(c.Method(), route, status, elapsed)
	}

	event := handler.logger.Info()
	if status >= fiber.StatusInternalServerError {
		event = handler.logger.Warn()
	}
	event.
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("route", route).
		Int("status", status).
		Dur("latency", elapsed).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Msg("request")
	return err
}
