package services

import (
	"context"
	"strings"
	"time"

	"github.com/terraincognita07/dayledger/internal/models"
)

type SeedUserRepository interface {
	Ensure(ctx context.Context, user *models.User) error
}

type SeedTaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
}

type SeedLogRepository interface {
	Upsert(ctx context.Context, entry *models.DailyLog, updateColumns []string) error
}

type SeedResult struct {
	User         string `json:"user"`
	TasksCreated int    `json:"tasksCreated"`
}

type SeedService struct {
	users SeedUserRepository
	tasks SeedTaskRepository
	logs  SeedLogRepository
}

func NewSeedService(users SeedUserRepository, tasks SeedTaskRepository, logs SeedLogRepository) *SeedService {
	return &SeedService{users: users, tasks: tasks, logs: logs}
}

type sampleTask struct {
	title       string
	description string
	priority    string
	status      string
	pinned      bool
}

var sampleTasks = []sampleTask{
	{"Complete project presentation", "Finish the slides for the quarterly review meeting", models.PriorityHigh, models.TaskStatusDone, true},
	{"Go for a 30-minute walk", "Get some fresh air and exercise", models.PriorityMedium, models.TaskStatusDone, false},
	{"Read 20 pages of book", `Continue reading "Atomic Habits"`, models.PriorityLow, models.TaskStatusTodo, false},
	{"Call mom", "Check in and catch up", models.PriorityMedium, models.TaskStatusTodo, true},
	{"Organize desk", "Clean up workspace and file documents", models.PriorityLow, models.TaskStatusInProgress, false},
}

func (service *SeedService) Seed(ctx context.Context, owner string, today time.Time) (SeedResult, error) {
	user := models.User{
		ID:    owner,
		Email: owner + "@example.com",
		Name:  displayName(owner),
	}
	if err := service.users.Ensure(ctx, &user); err != nil {
		return SeedResult{}, persistenceError("initialize database", err)
	}

	day := CalendarDate(today)
	for _, sample := range sampleTasks {
		description := sample.description
		priority := sample.priority
		task := models.Task{
			UserID:      owner,
			Date:        day,
			Title:       sample.title,
			Description: &description,
			Status:      sample.status,
			Priority:    &priority,
			Pinned:      sample.pinned,
		}
		if err := service.tasks.Create(ctx, &task); err != nil {
			return SeedResult{}, persistenceError("initialize database", err)
		}
	}

	journal := "Had a productive day! Completed the presentation and went for a nice walk. Feeling accomplished and energized."
	mood := models.MoodHappy
	sleep := 7.5
	entry := models.DailyLog{
		UserID:       owner,
		Date:         day,
		JournalEntry: &journal,
		Mood:         &mood,
		WaterGlasses: 6,
		Exercised:    true,
		SleepHours:   &sleep,
	}
	if err := service.logs.Upsert(ctx, &entry, nil); err != nil {
		return SeedResult{}, persistenceError("initialize database", err)
	}

	return SeedResult{User: user.Email, TasksCreated: len(sampleTasks)}, nil
}

func displayName(owner string) string {
	if owner == "" {
		return ""
	}
	return strings.ToUpper(owner[:1]) + owner[1:]
}
