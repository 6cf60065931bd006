package models

import "time"

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
	TaskStatusBlocked    = "blocked"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"not null;index:idx_tasks_user_date" json:"user_id"`
	Date          time.Time `gorm:"type:date;not null;index:idx_tasks_user_date" json:"date"`
	Title         string    `gorm:"not null" json:"title"`
	Description   *string   `json:"description"`
	Notes         *string   `json:"notes"`
	Status        string    `gorm:"not null;default:todo" json:"status"`
	Priority      *string   `json:"priority"`
	Pinned        bool      `gorm:"not null;default:false" json:"pinned"`
	CarriedFromID *string   `gorm:"index" json:"carried_from_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
