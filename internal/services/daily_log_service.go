package services

import (
	"context"
	"slices"
	"time"

	"github.com/terraincognita07/dayledger/internal/models"
)

type DailyLogRepository interface {
	ListByUserRange(ctx context.Context, userID string, fromStart time.Time, toEnd time.Time) ([]models.DailyLog, error)
	FindByUserAndDayRange(ctx context.Context, userID string, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error)
	Upsert(ctx context.Context, entry *models.DailyLog, updateColumns []string) error
}

type DailyLogFields struct {
	JournalEntry Optional[string]  `json:"journal_entry"`
	Mood         Optional[string]  `json:"mood"`
	WaterGlasses Optional[int]     `json:"water_glasses"`
	Exercised    Optional[bool]    `json:"exercised"`
	SleepHours   Optional[float64] `json:"sleep_hours"`
	DayComplete  Optional[bool]    `json:"day_complete"`
}

type DailyLogService struct {
	logs DailyLogRepository
}

func NewDailyLogService(logs DailyLogRepository) *DailyLogService {
	return &DailyLogService{logs: logs}
}

func (service *DailyLogService) Get(ctx context.Context, owner string, day time.Time) (models.DailyLog, bool, error) {
	dayStart, dayEnd := DayRange(day)
	entry, found, err := service.logs.FindByUserAndDayRange(ctx, owner, dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, false, persistenceError("fetch daily log", err)
	}
	return entry, found, nil
}

func (service *DailyLogService) ListRange(ctx context.Context, owner string, from time.Time, to time.Time) ([]models.DailyLog, error) {
	fromStart, _ := DayRange(from)
	_, toEnd := DayRange(to)
	logs, err := service.logs.ListByUserRange(ctx, owner, fromStart, toEnd)
	if err != nil {
		return nil, persistenceError("fetch daily logs", err)
	}
	return logs, nil
}

func (service *DailyLogService) Upsert(ctx context.Context, owner string, day time.Time, fields DailyLogFields) (models.DailyLog, error) {
	entry := models.DailyLog{
		UserID: owner,
		Date:   CalendarDate(day),
	}
	columns, err := applyDailyLogFields(&entry, fields)
	if err != nil {
		return models.DailyLog{}, err
	}

	if err := service.logs.Upsert(ctx, &entry, columns); err != nil {
		return models.DailyLog{}, persistenceError("save daily log", err)
	}

	stored, found, err := service.Get(ctx, owner, day)
	if err != nil {
		return models.DailyLog{}, err
	}
	if !found {
		return models.DailyLog{}, persistenceError("save daily log", ErrNotFound)
	}
	return stored, nil
}

func applyDailyLogFields(entry *models.DailyLog, fields DailyLogFields) ([]string, error) {
	columns := make([]string, 0, 6)

	if fields.JournalEntry.Set {
		entry.JournalEntry = fields.JournalEntry.Value
		columns = append(columns, "journal_entry")
	}
	if fields.Mood.Set {
		if fields.Mood.Value != nil && !slices.Contains(models.MoodGlyphs(), *fields.Mood.Value) {
			return nil, newValidationError("mood", "invalid mood value")
		}
		entry.Mood = fields.Mood.Value
		columns = append(columns, "mood")
	}
	if fields.WaterGlasses.Set {
		entry.WaterGlasses = fields.WaterGlasses.ValueOr(0)
		columns = append(columns, "water_glasses")
	}
	if fields.Exercised.Set {
		entry.Exercised = fields.Exercised.ValueOr(false)
		columns = append(columns, "exercised")
	}
	if fields.SleepHours.Set {
		entry.SleepHours = fields.SleepHours.Value
		columns = append(columns, "sleep_hours")
	}
	if fields.DayComplete.Set {
		entry.DayComplete = fields.DayComplete.ValueOr(false)
		columns = append(columns, "day_complete")
	}
	return columns, nil
}
