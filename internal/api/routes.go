package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerOperationalRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerOperationalRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	if handler.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(handler.metrics.Handler()))
	}
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.OwnerRequired)

	api.Post("/init", handler.Init)

	tasks := api.Group("/tasks")
	tasks.Post("/carry-forward", handler.CarryForward)
	tasks.Get("", handler.ListTasks)
	tasks.Post("", handler.CreateTask)
	tasks.Get("/:id", handler.GetTask)
	tasks.Put("/:id", handler.UpdateTask)
	tasks.Patch("/:id", handler.UpdateTask)
	tasks.Delete("/:id", handler.DeleteTask)

	dailyLogs := api.Group("/daily-logs")
	dailyLogs.Get("", handler.GetDailyLog)
	dailyLogs.Post("", handler.UpsertDailyLog)

	weeklyReviews := api.Group("/weekly-reviews")
	weeklyReviews.Get("", handler.GetWeeklyReview)
	weeklyReviews.Post("", handler.GenerateWeeklyReview)

	invoices := api.Group("/invoices")
	invoices.Get("", handler.ListInvoices)
	invoices.Post("", handler.CreateInvoice)
	invoices.Get("/summary", handler.InvoiceSummary)
	invoices.Get("/:id", handler.GetInvoice)
	invoices.Put("/:id", handler.UpdateInvoice)
	invoices.Patch("/:id", handler.UpdateInvoice)
	invoices.Delete("/:id", handler.DeleteInvoice)

	clients := api.Group("/clients")
	clients.Get("", handler.ListClients)
	clients.Post("", handler.CreateClient)
	clients.Get("/:id", handler.GetClient)
	clients.Put("/:id", handler.UpdateClient)
	clients.Patch("/:id", handler.UpdateClient)
	clients.Delete("/:id", handler.DeleteClient)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
