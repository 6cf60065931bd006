// Package app wires repositories into services for the HTTP server and the CLI.
package app

import (
	"context"
	"time"

	"github.com/terraincognita07/dayledger/internal/config"
	"github.com/terraincognita07/dayledger/internal/db"
	"github.com/terraincognita07/dayledger/internal/services"
	"gorm.io/gorm"
)

type Options struct {
	Location      *time.Location
	WeekStartsOn  time.Weekday
	InvoicePrefix string
	BaseCurrency  string
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Location:      cfg.Location,
		WeekStartsOn:  cfg.Weekday,
		InvoicePrefix: cfg.InvoicePrefix,
		BaseCurrency:  cfg.BaseCurrency,
	}
}

type Services struct {
	Repositories   *db.Repositories
	Tasks          *services.TaskService
	CarryForward   *services.CarryForwardService
	DailyLogs      *services.DailyLogService
	WeeklyReviews  *services.WeeklyReviewService
	InvoiceNumbers *services.InvoiceNumberGenerator
	Invoices       *services.InvoiceService
	Clients        *services.ClientService
	Seed           *services.SeedService
	Location       *time.Location
}

func NewServices(database *gorm.DB, options Options) *Services {
	if options.Location == nil {
		options.Location = time.UTC
	}
	repositories := db.NewRepositories(database)
	numbers := services.NewInvoiceNumberGenerator(repositories.Invoices, options.InvoicePrefix)

	return &Services{
		Repositories:   repositories,
		Tasks:          services.NewTaskService(repositories.Tasks),
		CarryForward:   services.NewCarryForwardService(carryTransaction(repositories.Tasks)),
		DailyLogs:      services.NewDailyLogService(repositories.DailyLogs),
		WeeklyReviews:  services.NewWeeklyReviewService(repositories.WeeklyReviews, repositories.Tasks, repositories.DailyLogs, options.WeekStartsOn),
		InvoiceNumbers: numbers,
		Invoices:       services.NewInvoiceService(repositories.Invoices, repositories.Clients, numbers, options.BaseCurrency, options.Location),
		Clients:        services.NewClientService(repositories.Clients),
		Seed:           services.NewSeedService(repositories.Users, repositories.Tasks, repositories.DailyLogs),
		Location:       options.Location,
	}
}

// Today is the current calendar date in the configured location.
func (s *Services) Today() time.Time {
	return services.Today(time.Now(), s.Location)
}

func carryTransaction(tasks *db.TaskRepository) services.CarryTxRunner {
	return func(ctx context.Context, fn func(store services.CarryTaskStore) error) error {
		return tasks.InTransaction(ctx, func(tx *db.TaskRepository) error {
			return fn(tx)
		})
	}
}
