package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dayledger/internal/services"
)

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	day, ok, err := requireDate(c, "date", c.Query("date"))
	if !ok {
		return err
	}
	tasks, err := handler.services.Tasks.ListForDate(c.UserContext(), currentOwner(c), day)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(tasks)
}

func (handler *Handler) GetTask(c *fiber.Ctx) error {
	task, err := handler.services.Tasks.Get(c.UserContext(), currentOwner(c), c.Params("id"))
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(task)
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	draft := services.TaskDraft{}
	if err := decodeJSONBody(c, &draft); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	task, err := handler.services.Tasks.Create(c.UserContext(), currentOwner(c), draft)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	patch := services.TaskPatch{}
	if err := decodeJSONBody(c, &patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	task, err := handler.services.Tasks.Patch(c.UserContext(), currentOwner(c), c.Params("id"), patch)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	if err := handler.services.Tasks.Delete(c.UserContext(), currentOwner(c), c.Params("id")); err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}
