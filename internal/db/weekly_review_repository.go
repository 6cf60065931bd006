package db

import (
	"context"
	"time"

	"github.com/terraincognita07/dayledger/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeeklyReviewRepository struct {
	database *gorm.DB
}

func NewWeeklyReviewRepository(database *gorm.DB) *WeeklyReviewRepository {
	return &WeeklyReviewRepository{database: database}
}

var weeklyReviewStatColumns = []string{
	"tasks_completed",
	"tasks_rolled_over",
	"average_water",
	"exercise_days",
	"updated_at",
}

func (repo *WeeklyReviewRepository) FindByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) (models.WeeklyReview, bool, error) {
	review := models.WeeklyReview{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		Limit(1).
		Find(&review)
	if result.Error != nil {
		return models.WeeklyReview{}, false, result.Error
	}
	return review, result.RowsAffected > 0, nil
}

// Upsert overwrites the computed statistics for (user_id, week_start).
// Notes are left alone on regeneration.
func (repo *WeeklyReviewRepository) Upsert(ctx context.Context, review *models.WeeklyReview) error {
	return repo.database.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "week_start"}},
			DoUpdates: clause.AssignmentColumns(weeklyReviewStatColumns),
		}).
		Create(review).Error
}

func (repo *WeeklyReviewRepository) UpdateNotes(ctx context.Context, userID string, weekStart time.Time, notes *string) error {
	return repo.database.WithContext(ctx).
		Model(&models.WeeklyReview{}).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		Updates(map[string]any{"notes": notes}).Error
}
