package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dayledger/internal/services"
)

func (handler *Handler) ListInvoices(c *fiber.Ctx) error {
	if queryFlag(c, "nextNumber") {
		return handler.NextInvoiceNumber(c)
	}
	invoices, err := handler.services.Invoices.List(c.UserContext(), currentOwner(c))
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(invoices)
}

func (handler *Handler) NextInvoiceNumber(c *fiber.Ctx) error {
	number, err := handler.services.Invoices.NextNumber(c.UserContext(), currentOwner(c))
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"nextInvoiceNumber": number})
}

func (handler *Handler) InvoiceSummary(c *fiber.Ctx) error {
	summary, err := handler.services.Invoices.Summary(c.UserContext(), currentOwner(c))
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) GetInvoice(c *fiber.Ctx) error {
	invoice, err := handler.services.Invoices.Get(c.UserContext(), currentOwner(c), c.Params("id"))
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(invoice)
}

func (handler *Handler) CreateInvoice(c *fiber.Ctx) error {
	draft := services.InvoiceDraft{}
	if err := decodeJSONBody(c, &draft); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	invoice, err := handler.services.Invoices.Create(c.UserContext(), currentOwner(c), draft)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	if handler.metrics != nil {
		handler.metrics.RecordInvoiceCreated(invoice.Currency)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func (handler *Handler) UpdateInvoice(c *fiber.Ctx) error {
	patch := services.InvoicePatch{}
	if err := decodeJSONBody(c, &patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	invoice, err := handler.services.Invoices.Patch(c.UserContext(), currentOwner(c), c.Params("id"), patch)
	if err != nil {
		return handler.writeServiceError(c, err)
	}
	if handler.metrics != nil && patch.Status.Set {
		handler.metrics.RecordInvoiceStatus(invoice.Status)
	}
	return c.JSON(invoice)
}

func (handler *Handler) DeleteInvoice(c *fiber.Ctx) error {
	if err := handler.services.Invoices.Delete(c.UserContext(), currentOwner(c), c.Params("id")); err != nil {
		return handler.writeServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Invoice deleted successfully"})
}
