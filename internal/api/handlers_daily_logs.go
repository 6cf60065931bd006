package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dayledger/internal/services"
)

// GetDailyLog answers null when nothing was logged for the day. With from
// and to instead of date it lists every log in the inclusive range.
func (handler *Handler) GetDailyLog(c *fiber.Ctx) error {
	if c.Query("from") != "" || c.Query("to") != "" {
		return handler.listDailyLogs(c)
	}
	day, ok, err := requireDate(c, "date", c.Query("date"))
	if !ok {
		return err
	}
	entry, found, err := handler.services.DailyLogs.Get(c.UserContext(), currentOwner(c), day)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	if !found {
		return c.JSON(nil)
	}
	return c.JSON(entry)
}

func (handler *Handler) UpsertDailyLog(c *fiber.Ctx) error {
	payload := dailyLogPayload{}
	if err := decodeJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	day, ok, err := requireDate(c, "date", payload.Date, c.Query("date"))
	if !ok {
		return err
	}
	entry, err := handler.services.DailyLogs.Upsert(c.UserContext(), currentOwner(c), day, payload.DailyLogFields)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) listDailyLogs(c *fiber.Ctx) error {
	from, to, err := services.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	logs, err := handler.services.DailyLogs.ListRange(c.UserContext(), currentOwner(c), from, to)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(logs)
}
