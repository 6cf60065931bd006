package models

import "time"

type WeeklyReview struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"not null;uniqueIndex:uidx_weekly_reviews_user_week" json:"user_id"`
	WeekStart       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_weekly_reviews_user_week" json:"week_start"`
	TasksCompleted  int       `gorm:"not null;default:0" json:"tasks_completed"`
	TasksRolledOver int       `gorm:"not null;default:0" json:"tasks_rolled_over"`
	AverageWater    float64   `gorm:"not null;default:0" json:"average_water"`
	ExerciseDays    int       `gorm:"not null;default:0" json:"exercise_days"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
