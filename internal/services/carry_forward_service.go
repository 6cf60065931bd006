package services

import (
	"context"
	"time"

	"github.com/terraincognita07/dayledger/internal/models"
)

var carryableStatuses = []string{models.TaskStatusTodo, models.TaskStatusInProgress}

type CarryTaskStore interface {
	ListByUserDayRangeStatuses(ctx context.Context, userID string, dayStart time.Time, dayEnd time.Time, statuses []string) ([]models.Task, error)
	ListCarriedIntoDayRange(ctx context.Context, userID string, dayStart time.Time, dayEnd time.Time) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
}

// CarryTxRunner runs fn inside one store transaction. An error returned by fn
// must roll back every task created through store.
type CarryTxRunner func(ctx context.Context, fn func(store CarryTaskStore) error) error

type CarryForwardRequest struct {
	From               time.Time
	To                 time.Time
	SkipAlreadyCarried bool
}

type CarryForwardResult struct {
	Requested int
	Tasks     []models.Task
	Skipped   []string
}

type CarryForwardService struct {
	inTransaction CarryTxRunner
}

func NewCarryForwardService(inTransaction CarryTxRunner) *CarryForwardService {
	return &CarryForwardService{inTransaction: inTransaction}
}

func (service *CarryForwardService) CarryForward(ctx context.Context, owner string, request CarryForwardRequest) (CarryForwardResult, error) {
	if request.From.IsZero() {
		return CarryForwardResult{}, requiredFieldError("fromDate")
	}
	if request.To.IsZero() {
		return CarryForwardResult{}, requiredFieldError("toDate")
	}

	fromStart, fromEnd := DayRange(request.From)
	toStart, toEnd := DayRange(request.To)

	result := CarryForwardResult{Tasks: make([]models.Task, 0), Skipped: make([]string, 0)}
	err := service.inTransaction(ctx, func(store CarryTaskStore) error {
		sources, err := store.ListByUserDayRangeStatuses(ctx, owner, fromStart, fromEnd, carryableStatuses)
		if err != nil {
			return persistenceError("fetch tasks to carry", err)
		}
		result.Requested = len(sources)

		alreadyCarried := make(map[string]struct{})
		if request.SkipAlreadyCarried {
			carried, err := store.ListCarriedIntoDayRange(ctx, owner, toStart, toEnd)
			if err != nil {
				return persistenceError("fetch carried tasks", err)
			}
			for _, task := range carried {
				alreadyCarried[*task.CarriedFromID] = struct{}{}
			}
		}

		for _, source := range sources {
			if _, skip := alreadyCarried[source.ID]; skip {
				result.Skipped = append(result.Skipped, source.ID)
				continue
			}
			carried := carriedCopy(source, toStart)
			if err := store.Create(ctx, &carried); err != nil {
				return persistenceError("carry forward tasks", err)
			}
			result.Tasks = append(result.Tasks, carried)
		}
		return nil
	})
	if err != nil {
		return CarryForwardResult{}, err
	}
	return result, nil
}

func carriedCopy(source models.Task, day time.Time) models.Task {
	sourceID := source.ID
	return models.Task{
		UserID:        source.UserID,
		Date:          day,
		Title:         source.Title,
		Description:   source.Description,
		Status:        models.TaskStatusTodo,
		Priority:      source.Priority,
		Pinned:        source.Pinned,
		CarriedFromID: &sourceID,
	}
}
