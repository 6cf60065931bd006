package models

import "time"

const (
	MoodHappy   = "😊"
	MoodNeutral = "😐"
	MoodSad     = "😔"
)

type DailyLog struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	UserID       string    `gorm:"not null;uniqueIndex:uidx_daily_logs_user_date" json:"user_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_daily_logs_user_date" json:"date"`
	JournalEntry *string   `json:"journal_entry"`
	Mood         *string   `json:"mood"`
	WaterGlasses int       `gorm:"not null;default:0" json:"water_glasses"`
	Exercised    bool      `gorm:"not null;default:false" json:"exercised"`
	SleepHours   *float64  `json:"sleep_hours"`
	DayComplete  bool      `gorm:"not null;default:false" json:"day_complete"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func MoodGlyphs() []string {
	return []string{MoodHappy, MoodNeutral, MoodSad}
}
