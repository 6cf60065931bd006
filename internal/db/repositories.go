package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Tasks         *TaskRepository
	DailyLogs     *DailyLogRepository
	WeeklyReviews *WeeklyReviewRepository
	Clients       *ClientRepository
	Invoices      *InvoiceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Tasks:         NewTaskRepository(database),
		DailyLogs:     NewDailyLogRepository(database),
		WeeklyReviews: NewWeeklyReviewRepository(database),
		Clients:       NewClientRepository(database),
		Invoices:      NewInvoiceRepository(database),
	}
}
