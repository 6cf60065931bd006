package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dayledger/internal/services"
)

var errDateRequired = errors.New("date is required")

func parseDayParam(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errDateRequired
	}
	return services.ParseCalendarDate(raw)
}

// requireDate reads a calendar date from the first non-empty candidate and
// answers 400 naming field when it is missing or malformed.
func requireDate(c *fiber.Ctx, field string, candidates ...string) (time.Time, bool, error) {
	raw := ""
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			raw = candidate
			break
		}
	}
	day, err := parseDayParam(raw)
	if errors.Is(err, errDateRequired) {
		return time.Time{}, false, apiError(c, fiber.StatusBadRequest, field+" is required")
	}
	if err != nil {
		return time.Time{}, false, apiError(c, fiber.StatusBadRequest, "invalid "+field)
	}
	return day, true, nil
}

func (handler *Handler) today() time.Time {
	return services.Today(handler.now(), handler.location)
}
