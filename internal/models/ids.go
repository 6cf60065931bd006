package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (task *Task) BeforeCreate(_ *gorm.DB) error {
	assignID(&task.ID)
	return nil
}

func (entry *DailyLog) BeforeCreate(_ *gorm.DB) error {
	assignID(&entry.ID)
	return nil
}

func (review *WeeklyReview) BeforeCreate(_ *gorm.DB) error {
	assignID(&review.ID)
	return nil
}

func (invoice *Invoice) BeforeCreate(_ *gorm.DB) error {
	assignID(&invoice.ID)
	return nil
}

func (client *Client) BeforeCreate(_ *gorm.DB) error {
	assignID(&client.ID)
	return nil
}
