package db

import (
	"context"
	"time"

	"github.com/terraincognita07/dayledger/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

// InTransaction runs fn against a repository bound to a single transaction.
// Returning an error from fn rolls every write back.
func (repo *TaskRepository) InTransaction(ctx context.Context, fn func(tx *TaskRepository) error) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&TaskRepository{database: tx})
	})
}

func (repo *TaskRepository) ListByUserDayRange(ctx context.Context, userID string, dayStart time.Time, dayEnd time.Time) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date ASC, created_at DESC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) ListByUserDayRangeStatuses(ctx context.Context, userID string, dayStart time.Time, dayEnd time.Time, statuses []string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ? AND status IN ?", userID, dayStart, dayEnd, statuses).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) ListCarriedIntoDayRange(ctx context.Context, userID string, dayStart time.Time, dayEnd time.Time) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ? AND carried_from_id IS NOT NULL", userID, dayStart, dayEnd).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByUserAndID(ctx context.Context, userID string, taskID string) (models.Task, bool, error) {
	task := models.Task{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, taskID).
		Limit(1).
		Find(&task)
	if result.Error != nil {
		return models.Task{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Task{}, false, nil
	}
	return task, true, nil
}

func (repo *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return repo.database.WithContext(ctx).Create(task).Error
}

// UpdateColumns writes only the named columns. A zero-length map is a no-op.
func (repo *TaskRepository) UpdateColumns(ctx context.Context, userID string, taskID string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return repo.database.WithContext(ctx).
		Model(&models.Task{}).
		Where("user_id = ? AND id = ?", userID, taskID).
		Updates(updates).Error
}

func (repo *TaskRepository) DeleteByUserAndID(ctx context.Context, userID string, taskID string) (bool, error) {
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&models.Task{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
