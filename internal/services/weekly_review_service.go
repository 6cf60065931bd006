package services

import (
	"context"
	"time"

	"github.com/terraincognita07/dayledger/internal/models"
)

type WeeklyReviewRepository interface {
	FindByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) (models.WeeklyReview, bool, error)
	Upsert(ctx context.Context, review *models.WeeklyReview) error
	UpdateNotes(ctx context.Context, userID string, weekStart time.Time, notes *string) error
}

type WeekTaskRepository interface {
	ListByUserDayRange(ctx context.Context, userID string, dayStart time.Time, dayEnd time.Time) ([]models.Task, error)
}

type WeekLogRepository interface {
	ListByUserRange(ctx context.Context, userID string, fromStart time.Time, toEnd time.Time) ([]models.DailyLog, error)
}

type WeeklyReviewService struct {
	reviews      WeeklyReviewRepository
	tasks        WeekTaskRepository
	logs         WeekLogRepository
	weekStartsOn time.Weekday
}

func NewWeeklyReviewService(reviews WeeklyReviewRepository, tasks WeekTaskRepository, logs WeekLogRepository, weekStartsOn time.Weekday) *WeeklyReviewService {
	return &WeeklyReviewService{
		reviews:      reviews,
		tasks:        tasks,
		logs:         logs,
		weekStartsOn: weekStartsOn,
	}
}

func (service *WeeklyReviewService) Get(ctx context.Context, owner string, weekStart time.Time) (models.WeeklyReview, bool, error) {
	review, found, err := service.reviews.FindByUserAndWeek(ctx, owner, CalendarDate(weekStart))
	if err != nil {
		return models.WeeklyReview{}, false, persistenceError("fetch weekly review", err)
	}
	return review, found, nil
}

func (service *WeeklyReviewService) Generate(ctx context.Context, owner string, weekStart time.Time) (models.WeeklyReview, error) {
	start := CalendarDate(weekStart)
	weekEnd := WeekEnd(start, service.weekStartsOn)
	rangeEnd := weekEnd.AddDate(0, 0, 1)

	tasks, err := service.tasks.ListByUserDayRange(ctx, owner, start, rangeEnd)
	if err != nil {
		return models.WeeklyReview{}, persistenceError("fetch week tasks", err)
	}
	logs, err := service.logs.ListByUserRange(ctx, owner, start, rangeEnd)
	if err != nil {
		return models.WeeklyReview{}, persistenceError("fetch week logs", err)
	}

	review := SummarizeWeek(tasks, logs, weekEnd)
	review.UserID = owner
	review.WeekStart = start
	if err := service.reviews.Upsert(ctx, &review); err != nil {
		return models.WeeklyReview{}, persistenceError("save weekly review", err)
	}

	stored, found, err := service.Get(ctx, owner, start)
	if err != nil {
		return models.WeeklyReview{}, err
	}
	if !found {
		return models.WeeklyReview{}, persistenceError("save weekly review", ErrNotFound)
	}
	return stored, nil
}

func (service *WeeklyReviewService) GenerateWithNotes(ctx context.Context, owner string, weekStart time.Time, notes Optional[string]) (models.WeeklyReview, error) {
	review, err := service.Generate(ctx, owner, weekStart)
	if err != nil || !notes.Set {
		return review, err
	}
	if err := service.reviews.UpdateNotes(ctx, owner, review.WeekStart, notes.Value); err != nil {
		return models.WeeklyReview{}, persistenceError("save weekly review notes", err)
	}
	review.Notes = notes.Value
	return review, nil
}

// SummarizeWeek derives the review statistics. Only unfinished tasks dated on
// weekEnd itself count as rolled over.
func SummarizeWeek(tasks []models.Task, logs []models.DailyLog, weekEnd time.Time) models.WeeklyReview {
	review := models.WeeklyReview{}
	lastDay := CalendarDate(weekEnd)
	for _, task := range tasks {
		if task.Status == models.TaskStatusDone {
			review.TasksCompleted++
			continue
		}
		if CalendarDate(task.Date).Equal(lastDay) {
			review.TasksRolledOver++
		}
	}

	totalWater := 0
	for _, entry := range logs {
		totalWater += entry.WaterGlasses
		if entry.Exercised {
			review.ExerciseDays++
		}
	}
	if len(logs) > 0 {
		review.AverageWater = float64(totalWater) / float64(len(logs))
	}
	return review
}
