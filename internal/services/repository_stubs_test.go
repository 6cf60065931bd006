package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/terraincognita07/dayledger/internal/models"
)

var errStubFailure = errors.New("stub failure")

func mustDay(value string) time.Time {
	day, err := time.Parse(CalendarDateLayout, value)
	if err != nil {
		panic(err)
	}
	return day
}

func stringPtr(value string) *string {
	return &value
}

type taskRepositoryStub struct {
	tasks             []models.Task
	nextID            int
	clock             time.Time
	createErrForTitle string
	listErr           error
}

func newTaskRepositoryStub() *taskRepositoryStub {
	return &taskRepositoryStub{clock: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)}
}

func (stub *taskRepositoryStub) inTransaction(_ context.Context, fn func(store CarryTaskStore) error) error {
	snapshot := slices.Clone(stub.tasks)
	if err := fn(stub); err != nil {
		stub.tasks = snapshot
		return err
	}
	return nil
}

func (stub *taskRepositoryStub) inRange(task models.Task, userID string, dayStart time.Time, dayEnd time.Time) bool {
	return task.UserID == userID && !task.Date.Before(dayStart) && task.Date.Before(dayEnd)
}

func (stub *taskRepositoryStub) ListByUserDayRange(_ context.Context, userID string, dayStart time.Time, dayEnd time.Time) ([]models.Task, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	tasks := make([]models.Task, 0)
	for _, task := range stub.tasks {
		if stub.inRange(task, userID, dayStart, dayEnd) {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (stub *taskRepositoryStub) ListByUserDayRangeStatuses(_ context.Context, userID string, dayStart time.Time, dayEnd time.Time, statuses []string) ([]models.Task, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	tasks := make([]models.Task, 0)
	for _, task := range stub.tasks {
		if stub.inRange(task, userID, dayStart, dayEnd) && slices.Contains(statuses, task.Status) {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (stub *taskRepositoryStub) ListCarriedIntoDayRange(_ context.Context, userID string, dayStart time.Time, dayEnd time.Time) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	for _, task := range stub.tasks {
		if stub.inRange(task, userID, dayStart, dayEnd) && task.CarriedFromID != nil {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (stub *taskRepositoryStub) FindByUserAndID(_ context.Context, userID string, taskID string) (models.Task, bool, error) {
	for _, task := range stub.tasks {
		if task.UserID == userID && task.ID == taskID {
			return task, true, nil
		}
	}
	return models.Task{}, false, nil
}

func (stub *taskRepositoryStub) Create(_ context.Context, task *models.Task) error {
	if stub.createErrForTitle != "" && task.Title == stub.createErrForTitle {
		return errStubFailure
	}
	stub.nextID++
	if task.ID == "" {
		task.ID = fmt.Sprintf("task-%03d", stub.nextID)
	}
	stub.clock = stub.clock.Add(time.Second)
	task.CreatedAt = stub.clock
	task.UpdatedAt = stub.clock
	stub.tasks = append(stub.tasks, *task)
	return nil
}

func (stub *taskRepositoryStub) UpdateColumns(_ context.Context, userID string, taskID string, updates map[string]any) error {
	for index := range stub.tasks {
		task := &stub.tasks[index]
		if task.UserID != userID || task.ID != taskID {
			continue
		}
		for column, value := range updates {
			switch column {
			case "title":
				task.Title = value.(string)
			case "date":
				task.Date = value.(time.Time)
			case "description":
				task.Description = value.(*string)
			case "notes":
				task.Notes = value.(*string)
			case "status":
				task.Status = value.(string)
			case "priority":
				task.Priority = value.(*string)
			case "pinned":
				task.Pinned = value.(bool)
			}
		}
	}
	return nil
}

func (stub *taskRepositoryStub) DeleteByUserAndID(_ context.Context, userID string, taskID string) (bool, error) {
	for index, task := range stub.tasks {
		if task.UserID == userID && task.ID == taskID {
			stub.tasks = slices.Delete(stub.tasks, index, index+1)
			return true, nil
		}
	}
	return false, nil
}

func (stub *taskRepositoryStub) countOn(userID string, day time.Time) int {
	start, end := DayRange(day)
	count := 0
	for _, task := range stub.tasks {
		if stub.inRange(task, userID, start, end) {
			count++
		}
	}
	return count
}

type dailyLogRepositoryStub struct {
	entries   map[string]models.DailyLog
	nextID    int
	upsertErr error
}

func newDailyLogRepositoryStub() *dailyLogRepositoryStub {
	return &dailyLogRepositoryStub{entries: make(map[string]models.DailyLog)}
}

func (stub *dailyLogRepositoryStub) key(userID string, day time.Time) string {
	return userID + "|" + day.Format(CalendarDateLayout)
}

func (stub *dailyLogRepositoryStub) ListByUserRange(_ context.Context, userID string, fromStart time.Time, toEnd time.Time) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	for _, entry := range stub.entries {
		if entry.UserID == userID && !entry.Date.Before(fromStart) && entry.Date.Before(toEnd) {
			logs = append(logs, entry)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.Before(logs[j].Date) })
	return logs, nil
}

func (stub *dailyLogRepositoryStub) FindByUserAndDayRange(_ context.Context, userID string, dayStart time.Time, _ time.Time) (models.DailyLog, bool, error) {
	entry, ok := stub.entries[stub.key(userID, dayStart)]
	return entry, ok, nil
}

func (stub *dailyLogRepositoryStub) Upsert(_ context.Context, entry *models.DailyLog, updateColumns []string) error {
	if stub.upsertErr != nil {
		return stub.upsertErr
	}
	key := stub.key(entry.UserID, entry.Date)
	stored, exists := stub.entries[key]
	if !exists {
		stub.nextID++
		created := *entry
		created.ID = fmt.Sprintf("log-%03d", stub.nextID)
		stub.entries[key] = created
		return nil
	}
	for _, column := range updateColumns {
		switch column {
		case "journal_entry":
			stored.JournalEntry = entry.JournalEntry
		case "mood":
			stored.Mood = entry.Mood
		case "water_glasses":
			stored.WaterGlasses = entry.WaterGlasses
		case "exercised":
			stored.Exercised = entry.Exercised
		case "sleep_hours":
			stored.SleepHours = entry.SleepHours
		case "day_complete":
			stored.DayComplete = entry.DayComplete
		}
	}
	stub.entries[key] = stored
	return nil
}

type weeklyReviewRepositoryStub struct {
	reviews map[string]models.WeeklyReview
	upserts int
}

func newWeeklyReviewRepositoryStub() *weeklyReviewRepositoryStub {
	return &weeklyReviewRepositoryStub{reviews: make(map[string]models.WeeklyReview)}
}

func (stub *weeklyReviewRepositoryStub) key(userID string, weekStart time.Time) string {
	return userID + "|" + weekStart.Format(CalendarDateLayout)
}

func (stub *weeklyReviewRepositoryStub) FindByUserAndWeek(_ context.Context, userID string, weekStart time.Time) (models.WeeklyReview, bool, error) {
	review, ok := stub.reviews[stub.key(userID, weekStart)]
	return review, ok, nil
}

func (stub *weeklyReviewRepositoryStub) Upsert(_ context.Context, review *models.WeeklyReview) error {
	stub.upserts++
	key := stub.key(review.UserID, review.WeekStart)
	stored, exists := stub.reviews[key]
	if !exists {
		created := *review
		created.ID = fmt.Sprintf("review-%03d", stub.upserts)
		stub.reviews[key] = created
		return nil
	}
	stored.TasksCompleted = review.TasksCompleted
	stored.TasksRolledOver = review.TasksRolledOver
	stored.AverageWater = review.AverageWater
	stored.ExerciseDays = review.ExerciseDays
	stub.reviews[key] = stored
	return nil
}

func (stub *weeklyReviewRepositoryStub) UpdateNotes(_ context.Context, userID string, weekStart time.Time, notes *string) error {
	key := stub.key(userID, weekStart)
	stored := stub.reviews[key]
	stored.Notes = notes
	stub.reviews[key] = stored
	return nil
}

type clientRepositoryStub struct {
	clients []models.Client
	nextID  int
}

func (stub *clientRepositoryStub) ListByUser(_ context.Context, userID string) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	for _, client := range stub.clients {
		if client.UserID == userID {
			clients = append(clients, client)
		}
	}
	return clients, nil
}

func (stub *clientRepositoryStub) FindByUserAndID(_ context.Context, userID string, clientID string) (models.Client, bool, error) {
	for _, client := range stub.clients {
		if client.UserID == userID && client.ID == clientID {
			return client, true, nil
		}
	}
	return models.Client{}, false, nil
}

func (stub *clientRepositoryStub) FindManyByUser(ctx context.Context, userID string, clientIDs []string) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	for _, clientID := range clientIDs {
		if client, found, _ := stub.FindByUserAndID(ctx, userID, clientID); found {
			clients = append(clients, client)
		}
	}
	return clients, nil
}

func (stub *clientRepositoryStub) Create(_ context.Context, client *models.Client) error {
	stub.nextID++
	if client.ID == "" {
		client.ID = fmt.Sprintf("client-%03d", stub.nextID)
	}
	stub.clients = append(stub.clients, *client)
	return nil
}

func (stub *clientRepositoryStub) UpdateColumns(_ context.Context, userID string, clientID string, updates map[string]any) error {
	for index := range stub.clients {
		client := &stub.clients[index]
		if client.UserID != userID || client.ID != clientID {
			continue
		}
		for column, value := range updates {
			switch column {
			case "name":
				client.Name = value.(string)
			case "email":
				client.Email = value.(*string)
			case "company":
				client.Company = value.(*string)
			case "phone":
				client.Phone = value.(*string)
			case "address":
				client.Address = value.(*string)
			case "notes":
				client.Notes = value.(*string)
			}
		}
	}
	return nil
}

func (stub *clientRepositoryStub) DeleteByUserAndID(_ context.Context, userID string, clientID string) (bool, error) {
	for index, client := range stub.clients {
		if client.UserID == userID && client.ID == clientID {
			stub.clients = slices.Delete(stub.clients, index, index+1)
			return true, nil
		}
	}
	return false, nil
}

type invoiceRepositoryStub struct {
	invoices []models.Invoice
	nextID   int
}

func (stub *invoiceRepositoryStub) ListByUser(_ context.Context, userID string) ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0)
	for index := len(stub.invoices) - 1; index >= 0; index-- {
		if stub.invoices[index].UserID == userID {
			invoices = append(invoices, stub.invoices[index])
		}
	}
	return invoices, nil
}

func (stub *invoiceRepositoryStub) FindByUserAndID(_ context.Context, userID string, invoiceID string) (models.Invoice, bool, error) {
	for _, invoice := range stub.invoices {
		if invoice.UserID == userID && invoice.ID == invoiceID {
			return invoice, true, nil
		}
	}
	return models.Invoice{}, false, nil
}

func (stub *invoiceRepositoryStub) FindLatestNumber(_ context.Context, userID string) (string, bool, error) {
	owned := make([]models.Invoice, 0)
	for _, invoice := range stub.invoices {
		if invoice.UserID == userID {
			owned = append(owned, invoice)
		}
	}
	if len(owned) == 0 {
		return "", false, nil
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].NumberSeq != owned[j].NumberSeq {
			return owned[i].NumberSeq > owned[j].NumberSeq
		}
		if len(owned[i].InvoiceNumber) != len(owned[j].InvoiceNumber) {
			return len(owned[i].InvoiceNumber) > len(owned[j].InvoiceNumber)
		}
		return owned[i].InvoiceNumber > owned[j].InvoiceNumber
	})
	return owned[0].InvoiceNumber, true, nil
}

func (stub *invoiceRepositoryStub) NumberExists(_ context.Context, userID string, invoiceNumber string, excludeID string) (bool, error) {
	for _, invoice := range stub.invoices {
		if invoice.UserID == userID && invoice.InvoiceNumber == invoiceNumber && invoice.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (stub *invoiceRepositoryStub) Create(_ context.Context, invoice *models.Invoice) error {
	stub.nextID++
	if invoice.ID == "" {
		invoice.ID = fmt.Sprintf("invoice-%03d", stub.nextID)
	}
	stub.invoices = append(stub.invoices, *invoice)
	return nil
}

func (stub *invoiceRepositoryStub) UpdateColumns(_ context.Context, userID string, invoiceID string, updates map[string]any) error {
	for index := range stub.invoices {
		invoice := &stub.invoices[index]
		if invoice.UserID != userID || invoice.ID != invoiceID {
			continue
		}
		for column, value := range updates {
			switch column {
			case "client_id":
				invoice.ClientID = value.(string)
			case "invoice_number":
				invoice.InvoiceNumber = value.(string)
			case "number_seq":
				invoice.NumberSeq = value.(int64)
			case "title":
				invoice.Title = value.(string)
			case "description":
				invoice.Description = value.(*string)
			case "amount":
				invoice.Amount = value.(decimal.Decimal)
			case "currency":
				invoice.Currency = value.(string)
			case "tax_rate":
				invoice.TaxRate = value.(float64)
			case "issue_date":
				invoice.IssueDate = value.(time.Time)
			case "due_date":
				invoice.DueDate = value.(time.Time)
			case "notes":
				invoice.Notes = value.(*string)
			case "status":
				invoice.Status = value.(string)
			case "sent_date":
				stamp := value.(time.Time)
				invoice.SentDate = &stamp
			case "paid_date":
				stamp := value.(time.Time)
				invoice.PaidDate = &stamp
			}
		}
	}
	return nil
}

func (stub *invoiceRepositoryStub) DeleteByUserAndID(_ context.Context, userID string, invoiceID string) (bool, error) {
	for index, invoice := range stub.invoices {
		if invoice.UserID == userID && invoice.ID == invoiceID {
			stub.invoices = slices.Delete(stub.invoices, index, index+1)
			return true, nil
		}
	}
	return false, nil
}

func (stub *invoiceRepositoryStub) MarkSentOverdue(_ context.Context, dueBefore time.Time) (int64, error) {
	var changed int64
	for index := range stub.invoices {
		invoice := &stub.invoices[index]
		if invoice.Status == models.InvoiceStatusSent && invoice.DueDate.Before(dueBefore) {
			invoice.Status = models.InvoiceStatusOverdue
			changed++
		}
	}
	return changed, nil
}
