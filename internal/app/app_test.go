package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/dayledger/internal/config"
	"github.com/terraincognita07/dayledger/internal/db"
	"github.com/terraincognita07/dayledger/internal/models"
	"github.com/terraincognita07/dayledger/internal/services"
	"gorm.io/gorm"
)

func newTestServices(t *testing.T) (*Services, *gorm.DB) {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "dayledger-app.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })
	return NewServices(database, Options{Location: time.UTC, WeekStartsOn: time.Monday}), database
}

func TestCarryForwardCommitsNothingWhenACopyFails(t *testing.T) {
	t.Parallel()

	container, database := newTestServices(t)
	ctx := context.Background()
	for _, title := range []string{"first", "poison", "last"} {
		_, err := container.Tasks.Create(ctx, "me", services.TaskDraft{Title: title, Date: "2024-01-09"})
		require.NoError(t, err)
	}

	failure := errors.New("injected create failure")
	require.NoError(t, database.Callback().Create().Before("gorm:create").Register("test:fail_carried_poison", func(tx *gorm.DB) {
		task, ok := tx.Statement.Dest.(*models.Task)
		if ok && task.Title == "poison" && task.CarriedFromID != nil {
			_ = tx.AddError(failure)
		}
	}))

	_, err := container.CarryForward.CarryForward(ctx, "me", services.CarryForwardRequest{
		From: time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)

	var persistenceErr *services.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "carry forward tasks", persistenceErr.Op)

	carried, err := container.Tasks.ListForDate(ctx, "me", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, carried)
}

func TestNewServicesDefaultsLocation(t *testing.T) {
	t.Parallel()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "dayledger-defaults.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })

	container := NewServices(database, Options{})
	assert.Equal(t, time.UTC, container.Location)
	assert.Equal(t, services.CalendarDate(container.Today()), container.Today())
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	location, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	options := OptionsFromConfig(&config.Config{
		Location:      location,
		Weekday:       time.Monday,
		InvoicePrefix: "ACME",
		BaseCurrency:  "EUR",
	})
	assert.Equal(t, Options{Location: location, WeekStartsOn: time.Monday, InvoicePrefix: "ACME", BaseCurrency: "EUR"}, options)
}
