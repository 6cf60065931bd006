package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dayledger/internal/services"
)

// CarryForward copies unfinished tasks between two days. Dates come from the
// body or the query string; a bare ?today= carries yesterday into today.
// The response body is the list of created tasks, counts travel in headers.
func (handler *Handler) CarryForward(c *fiber.Ctx) error {
	payload := carryForwardPayload{}
	if err := decodeJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	request, ok, err := handler.carryForwardRequest(c, payload)
	if !ok {
		return err
	}

	result, err := handler.services.CarryForward.CarryForward(c.UserContext(), currentOwner(c), request)
	if handler.metrics != nil {
		handler.metrics.RecordCarryForward(len(result.Tasks), err)
	}
	if err != nil {
		return handler.writeServiceError(c, err)
	}

	c.Set(headerCarryRequested, strconv.Itoa(result.Requested))
	c.Set(headerCarryCreated, strconv.Itoa(len(result.Tasks)))
	c.Set(headerCarrySkipped, strconv.Itoa(len(result.Skipped)))
	return c.JSON(result.Tasks)
}

func (handler *Handler) carryForwardRequest(c *fiber.Ctx, payload carryForwardPayload) (services.CarryForwardRequest, bool, error) {
	request := services.CarryForwardRequest{
		SkipAlreadyCarried: payload.SkipAlreadyCarried || queryFlag(c, "skipAlreadyCarried"),
	}

	fromRaw := firstNonEmpty(payload.FromDate, c.Query("fromDate"))
	toRaw := firstNonEmpty(payload.ToDate, c.Query("toDate"))
	if fromRaw == "" && toRaw == "" && strings.TrimSpace(c.Query("today")) != "" {
		today, ok, err := requireDate(c, "today", c.Query("today"))
		if !ok {
			return request, false, err
		}
		request.From = today.AddDate(0, 0, -1)
		request.To = today
		return request, true, nil
	}

	from, ok, err := requireDate(c, "fromDate", fromRaw)
	if !ok {
		return request, false, err
	}
	to, ok, err := requireDate(c, "toDate", toRaw)
	if !ok {
		return request, false, err
	}
	request.From = from
	request.To = to
	return request, true, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
