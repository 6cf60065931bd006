package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dayledger/internal/services"
)

func (handler *Handler) ListClients(c *fiber.Ctx) error {
	clients, err := handler.services.Clients.List(c.UserContext(), currentOwner(c))
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(clients)
}

func (handler *Handler) GetClient(c *fiber.Ctx) error {
	client, err := handler.services.Clients.Get(c.UserContext(), currentOwner(c), c.Params("id"))
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(client)
}

func (handler *Handler) CreateClient(c *fiber.Ctx) error {
	draft := services.ClientDraft{}
	if err := decodeJSONBody(c, &draft); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	client, err := handler.services.Clients.Create(c.UserContext(), currentOwner(c), draft)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (handler *Handler) UpdateClient(c *fiber.Ctx) error {
	patch := services.ClientPatch{}
	if err := decodeJSONBody(c, &patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	client, err := handler.services.Clients.Patch(c.UserContext(), currentOwner(c), c.Params("id"), patch)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(client)
}

func (handler *Handler) DeleteClient(c *fiber.Ctx) error {
	if err := handler.services.Clients.Delete(c.UserContext(), currentOwner(c), c.Params("id")); err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Client deleted successfully"})
}
