package db

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/dayledger/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenPostgres connects to PostgreSQL and reconciles the schema from the
// model definitions; the embedded SQL migrations target SQLite only.
func OpenPostgres(dsn string, logger zerolog.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.DailyLog{},
		&models.WeeklyReview{},
		&models.Client{},
		&models.Invoice{},
	); err != nil {
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	return database, nil
}
