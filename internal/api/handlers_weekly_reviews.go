package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetWeeklyReview(c *fiber.Ctx) error {
	weekStart, ok, err := requireDate(c, "weekStart", c.Query("weekStart"))
	if !ok {
		return err
	}
	review, found, err := handler.services.WeeklyReviews.Get(c.UserContext(), currentOwner(c), weekStart)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	if !found {
		return c.JSON(nil)
	}
	return c.JSON(review)
}

// GenerateWeeklyReview recomputes the week's aggregates. Notes are only
// touched when the body carries them.
func (handler *Handler) GenerateWeeklyReview(c *fiber.Ctx) error {
	payload := weeklyReviewPayload{}
	if err := decodeJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	weekStart, ok, err := requireDate(c, "weekStart", payload.WeekStart, c.Query("weekStart"))
	if !ok {
		return err
	}
	review, err := handler.services.WeeklyReviews.GenerateWithNotes(c.UserContext(), currentOwner(c), weekStart, payload.Notes)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
