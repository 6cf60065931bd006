package services

import (
	"context"
	"strings"
	"time"

	"github.com/terraincognita07/dayledger/internal/models"
)

type TaskRepository interface {
	ListByUserDayRange(ctx context.Context, userID string, dayStart time.Time, dayEnd time.Time) ([]models.Task, error)
	FindByUserAndID(ctx context.Context, userID string, taskID string) (models.Task, bool, error)
	Create(ctx context.Context, task *models.Task) error
	UpdateColumns(ctx context.Context, userID string, taskID string, updates map[string]any) error
	DeleteByUserAndID(ctx context.Context, userID string, taskID string) (bool, error)
}

type TaskDraft struct {
	Title       string  `json:"title" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
	Status      string  `json:"status" validate:"omitempty,oneof=todo in_progress done blocked"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Pinned      bool    `json:"pinned"`
}

type TaskPatch struct {
	Title       Optional[string] `json:"title"`
	Date        Optional[string] `json:"date"`
	Description Optional[string] `json:"description"`
	Notes       Optional[string] `json:"notes"`
	Status      Optional[string] `json:"status"`
	Priority    Optional[string] `json:"priority"`
	Pinned      Optional[bool]   `json:"pinned"`
}

type TaskService struct {
	tasks TaskRepository
}

func NewTaskService(tasks TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (service *TaskService) ListForDate(ctx context.Context, owner string, day time.Time) ([]models.Task, error) {
	dayStart, dayEnd := DayRange(day)
	tasks, err := service.tasks.ListByUserDayRange(ctx, owner, dayStart, dayEnd)
	if err != nil {
		return nil, persistenceError("fetch tasks", err)
	}
	if tasks == nil {
		tasks = make([]models.Task, 0)
	}
	SortTasks(tasks)
	return tasks, nil
}

func (service *TaskService) Get(ctx context.Context, owner string, taskID string) (models.Task, error) {
	task, found, err := service.tasks.FindByUserAndID(ctx, owner, taskID)
	if err != nil {
		return models.Task{}, persistenceError("fetch task", err)
	}
	if !found {
		return models.Task{}, notFoundError("task")
	}
	return task, nil
}

func (service *TaskService) Create(ctx context.Context, owner string, draft TaskDraft) (models.Task, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Date = strings.TrimSpace(draft.Date)
	if draft.Priority != nil && *draft.Priority == "" {
		draft.Priority = nil
	}
	if err := validateDraft(draft); err != nil {
		return models.Task{}, err
	}
	day, err := ParseCalendarDate(draft.Date)
	if err != nil {
		return models.Task{}, newValidationError("date", "invalid date")
	}

	task := models.Task{
		UserID:      owner,
		Date:        CalendarDate(day),
		Title:       draft.Title,
		Description: draft.Description,
		Notes:       draft.Notes,
		Status:      models.TaskStatusTodo,
		Priority:    draft.Priority,
		Pinned:      draft.Pinned,
	}
	if draft.Status != "" {
		task.Status = draft.Status
	}
	if err := service.tasks.Create(ctx, &task); err != nil {
		return models.Task{}, persistenceError("create task", err)
	}
	return task, nil
}

func (service *TaskService) Patch(ctx context.Context, owner string, taskID string, patch TaskPatch) (models.Task, error) {
	current, err := service.Get(ctx, owner, taskID)
	if err != nil {
		return models.Task{}, err
	}

	updates, err := taskPatchColumns(current, patch)
	if err != nil {
		return models.Task{}, err
	}
	if len(updates) == 0 {
		return current, nil
	}
	if err := service.tasks.UpdateColumns(ctx, owner, taskID, updates); err != nil {
		return models.Task{}, persistenceError("update task", err)
	}
	return service.Get(ctx, owner, taskID)
}

func taskPatchColumns(current models.Task, patch TaskPatch) (map[string]any, error) {
	updates := make(map[string]any)

	if patch.Title.Set {
		if patch.Title.Value == nil {
			return nil, requiredFieldError("title")
		}
		updates["title"] = strings.TrimSpace(*patch.Title.Value)
	}
	if patch.Date.Set {
		if patch.Date.Value == nil {
			return nil, requiredFieldError("date")
		}
		day, err := ParseCalendarDate(*patch.Date.Value)
		if err != nil {
			return nil, newValidationError("date", "invalid date")
		}
		updates["date"] = CalendarDate(day)
	}
	if patch.Description.Set {
		updates["description"] = patch.Description.Value
	}
	if patch.Notes.Set {
		updates["notes"] = patch.Notes.Value
	}
	if patch.Status.Set {
		if patch.Status.Value == nil {
			return nil, requiredFieldError("status")
		}
		if err := TaskTransitions.Check(current.Status, *patch.Status.Value); err != nil {
			return nil, err
		}
		updates["status"] = *patch.Status.Value
	}
	if patch.Priority.Set {
		priority := patch.Priority.Value
		if priority != nil && *priority == "" {
			priority = nil
		}
		if priority != nil && priorityRank(priority) == 0 {
			return nil, newValidationError("priority", "invalid priority value")
		}
		updates["priority"] = priority
	}
	if patch.Pinned.Set {
		if patch.Pinned.Value == nil {
			return nil, requiredFieldError("pinned")
		}
		updates["pinned"] = *patch.Pinned.Value
	}
	return updates, nil
}

func (service *TaskService) Delete(ctx context.Context, owner string, taskID string) error {
	deleted, err := service.tasks.DeleteByUserAndID(ctx, owner, taskID)
	if err != nil {
		return persistenceError("delete task", err)
	}
	if !deleted {
		return notFoundError("task")
	}
	return nil
}
