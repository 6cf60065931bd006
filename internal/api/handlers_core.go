package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Init seeds the owner with sample tasks and a journal entry for today.
func (handler *Handler) Init(c *fiber.Ctx) error {
	result, err := handler.services.Seed.Seed(c.UserContext(), currentOwner(c), handler.today())
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      "Database initialized successfully",
		"user":         result.User,
		"tasksCreated": result.TasksCreated,
	})
}
