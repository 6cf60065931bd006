package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/terraincognita07/dayledger/internal/models"
)

type InvoiceRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Invoice, error)
	FindByUserAndID(ctx context.Context, userID string, invoiceID string) (models.Invoice, bool, error)
	FindLatestNumber(ctx context.Context, userID string) (string, bool, error)
	NumberExists(ctx context.Context, userID string, invoiceNumber string, excludeID string) (bool, error)
	Create(ctx context.Context, invoice *models.Invoice) error
	UpdateColumns(ctx context.Context, userID string, invoiceID string, updates map[string]any) error
	DeleteByUserAndID(ctx context.Context, userID string, invoiceID string) (bool, error)
	MarkSentOverdue(ctx context.Context, dueBefore time.Time) (int64, error)
}

type InvoiceClientRepository interface {
	FindByUserAndID(ctx context.Context, userID string, clientID string) (models.Client, bool, error)
	FindManyByUser(ctx context.Context, userID string, clientIDs []string) ([]models.Client, error)
}

type InvoiceDraft struct {
	ClientID      string           `json:"client_id" validate:"required"`
	InvoiceNumber string           `json:"invoice_number"`
	Title         string           `json:"title" validate:"required"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	Currency      string           `json:"currency"`
	TaxRate       *float64         `json:"tax_rate" validate:"omitempty,gte=0,lte=100"`
	Status        string           `json:"status" validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	IssueDate     string           `json:"issue_date" validate:"required"`
	DueDate       string           `json:"due_date" validate:"required"`
	Notes         *string          `json:"notes"`
}

// InvoicePatch has no sent_date or paid_date: those are only ever stamped
// by a status change.
type InvoicePatch struct {
	ClientID      Optional[string]          `json:"client_id"`
	InvoiceNumber Optional[string]          `json:"invoice_number"`
	Title         Optional[string]          `json:"title"`
	Description   Optional[string]          `json:"description"`
	Amount        Optional[decimal.Decimal] `json:"amount"`
	Currency      Optional[string]          `json:"currency"`
	TaxRate       Optional[float64]         `json:"tax_rate"`
	Status        Optional[string]          `json:"status"`
	IssueDate     Optional[string]          `json:"issue_date"`
	DueDate       Optional[string]          `json:"due_date"`
	Notes         Optional[string]          `json:"notes"`
}

type InvoiceService struct {
	invoices     InvoiceRepository
	clients      InvoiceClientRepository
	numbers      *InvoiceNumberGenerator
	baseCurrency string
	location     *time.Location
	now          func() time.Time
}

func NewInvoiceService(invoices InvoiceRepository, clients InvoiceClientRepository, numbers *InvoiceNumberGenerator, baseCurrency string, location *time.Location) *InvoiceService {
	if strings.TrimSpace(baseCurrency) == "" {
		baseCurrency = DefaultCurrency
	}
	if location == nil {
		location = time.UTC
	}
	return &InvoiceService{
		invoices:     invoices,
		clients:      clients,
		numbers:      numbers,
		baseCurrency: strings.ToUpper(baseCurrency),
		location:     location,
		now:          time.Now,
	}
}

func (service *InvoiceService) NextNumber(ctx context.Context, owner string) (string, error) {
	return service.numbers.Next(ctx, owner)
}

func (service *InvoiceService) List(ctx context.Context, owner string) ([]models.Invoice, error) {
	invoices, err := service.invoices.ListByUser(ctx, owner)
	if err != nil {
		return nil, persistenceError("fetch invoices", err)
	}
	if invoices == nil {
		return make([]models.Invoice, 0), nil
	}

	seen := make(map[string]struct{}, len(invoices))
	clientIDs := make([]string, 0, len(invoices))
	for _, invoice := range invoices {
		if _, ok := seen[invoice.ClientID]; ok {
			continue
		}
		seen[invoice.ClientID] = struct{}{}
		clientIDs = append(clientIDs, invoice.ClientID)
	}
	clients, err := service.clients.FindManyByUser(ctx, owner, clientIDs)
	if err != nil {
		return nil, persistenceError("fetch invoice clients", err)
	}
	byID := make(map[string]models.Client, len(clients))
	for _, client := range clients {
		byID[client.ID] = client
	}
	for index := range invoices {
		if client, ok := byID[invoices[index].ClientID]; ok {
			invoices[index].Client = &models.InvoiceClient{Name: client.Name, Company: client.Company}
		}
	}
	return invoices, nil
}

func (service *InvoiceService) Get(ctx context.Context, owner string, invoiceID string) (models.Invoice, error) {
	invoice, found, err := service.invoices.FindByUserAndID(ctx, owner, invoiceID)
	if err != nil {
		return models.Invoice{}, persistenceError("fetch invoice", err)
	}
	if !found {
		return models.Invoice{}, notFoundError("invoice")
	}
	client, found, err := service.clients.FindByUserAndID(ctx, owner, invoice.ClientID)
	if err != nil {
		return models.Invoice{}, persistenceError("fetch invoice client", err)
	}
	if found {
		invoice.Client = &models.InvoiceClient{Name: client.Name, Company: client.Company}
	}
	return invoice, nil
}

func (service *InvoiceService) Create(ctx context.Context, owner string, draft InvoiceDraft) (models.Invoice, error) {
	draft.ClientID = strings.TrimSpace(draft.ClientID)
	draft.Title = strings.TrimSpace(draft.Title)
	draft.InvoiceNumber = strings.TrimSpace(draft.InvoiceNumber)
	if err := validateDraft(draft); err != nil {
		return models.Invoice{}, err
	}
	if draft.Amount.IsNegative() {
		return models.Invoice{}, newValidationError("amount", "amount must not be negative")
	}
	issueDate, err := ParseCalendarDate(draft.IssueDate)
	if err != nil {
		return models.Invoice{}, newValidationError("issue_date", "invalid issue_date")
	}
	dueDate, err := ParseCalendarDate(draft.DueDate)
	if err != nil {
		return models.Invoice{}, newValidationError("due_date", "invalid due_date")
	}
	currencyCode := service.baseCurrency
	if strings.TrimSpace(draft.Currency) != "" {
		if currencyCode, err = NormalizeCurrency(draft.Currency); err != nil {
			return models.Invoice{}, err
		}
	}
	if err := service.requireClient(ctx, owner, draft.ClientID); err != nil {
		return models.Invoice{}, err
	}

	invoiceNumber := draft.InvoiceNumber
	if invoiceNumber == "" {
		if invoiceNumber, err = service.numbers.Next(ctx, owner); err != nil {
			return models.Invoice{}, err
		}
	} else if err := service.requireUnusedNumber(ctx, owner, invoiceNumber, ""); err != nil {
		return models.Invoice{}, err
	}

	invoice := models.Invoice{
		UserID:        owner,
		ClientID:      draft.ClientID,
		InvoiceNumber: invoiceNumber,
		NumberSeq:     service.numberSequence(invoiceNumber),
		Title:         draft.Title,
		Description:   draft.Description,
		Amount:        *draft.Amount,
		Currency:      currencyCode,
		Status:        models.InvoiceStatusDraft,
		IssueDate:     CalendarDate(issueDate),
		DueDate:       CalendarDate(dueDate),
		Notes:         draft.Notes,
	}
	if draft.TaxRate != nil {
		invoice.TaxRate = *draft.TaxRate
	}
	if draft.Status != "" {
		invoice.Status = draft.Status
	}
	now := service.now()
	switch invoice.Status {
	case models.InvoiceStatusSent:
		invoice.SentDate = &now
	case models.InvoiceStatusPaid:
		invoice.PaidDate = &now
	}

	if err := service.invoices.Create(ctx, &invoice); err != nil {
		return models.Invoice{}, persistenceError("create invoice", err)
	}
	return service.Get(ctx, owner, invoice.ID)
}

// Patch writes the supplied fields. Moving to sent or paid stamps the
// matching date with the current time; stamps are never cleared.
func (service *InvoiceService) Patch(ctx context.Context, owner string, invoiceID string, patch InvoicePatch) (models.Invoice, error) {
	current, found, err := service.invoices.FindByUserAndID(ctx, owner, invoiceID)
	if err != nil {
		return models.Invoice{}, persistenceError("fetch invoice", err)
	}
	if !found {
		return models.Invoice{}, notFoundError("invoice")
	}

	updates, err := service.invoicePatchColumns(ctx, owner, current, patch)
	if err != nil {
		return models.Invoice{}, err
	}
	if err := service.invoices.UpdateColumns(ctx, owner, invoiceID, updates); err != nil {
		return models.Invoice{}, persistenceError("update invoice", err)
	}
	return service.Get(ctx, owner, invoiceID)
}

func (service *InvoiceService) invoicePatchColumns(ctx context.Context, owner string, current models.Invoice, patch InvoicePatch) (map[string]any, error) {
	updates := make(map[string]any)

	if patch.ClientID.Set {
		clientID := strings.TrimSpace(patch.ClientID.ValueOr(""))
		if clientID == "" {
			return nil, requiredFieldError("client_id")
		}
		if err := service.requireClient(ctx, owner, clientID); err != nil {
			return nil, err
		}
		updates["client_id"] = clientID
	}
	if patch.InvoiceNumber.Set {
		number := strings.TrimSpace(patch.InvoiceNumber.ValueOr(""))
		if number == "" {
			return nil, requiredFieldError("invoice_number")
		}
		if err := service.requireUnusedNumber(ctx, owner, number, current.ID); err != nil {
			return nil, err
		}
		updates["invoice_number"] = number
		updates["number_seq"] = service.numberSequence(number)
	}
	if patch.Title.Set {
		if patch.Title.Value == nil {
			return nil, requiredFieldError("title")
		}
		updates["title"] = strings.TrimSpace(*patch.Title.Value)
	}
	if patch.Description.Set {
		updates["description"] = patch.Description.Value
	}
	if patch.Amount.Set {
		if patch.Amount.Value == nil {
			return nil, requiredFieldError("amount")
		}
		if patch.Amount.Value.IsNegative() {
			return nil, newValidationError("amount", "amount must not be negative")
		}
		updates["amount"] = *patch.Amount.Value
	}
	if patch.Currency.Set {
		code, err := NormalizeCurrency(patch.Currency.ValueOr(""))
		if err != nil {
			return nil, err
		}
		updates["currency"] = code
	}
	if patch.TaxRate.Set {
		rate := patch.TaxRate.ValueOr(0)
		if rate < 0 || rate > 100 {
			return nil, newValidationError("tax_rate", "tax_rate is out of range")
		}
		updates["tax_rate"] = rate
	}
	for field, value := range map[string]Optional[string]{"issue_date": patch.IssueDate, "due_date": patch.DueDate} {
		if !value.Set {
			continue
		}
		parsed, err := ParseCalendarDate(value.ValueOr(""))
		if err != nil {
			return nil, newValidationError(field, "invalid %s", field)
		}
		updates[field] = CalendarDate(parsed)
	}
	if patch.Notes.Set {
		updates["notes"] = patch.Notes.Value
	}
	if patch.Status.Set {
		status := patch.Status.ValueOr("")
		if err := InvoiceTransitions.Check(current.Status, status); err != nil {
			return nil, err
		}
		updates["status"] = status
		now := service.now()
		switch status {
		case models.InvoiceStatusSent:
			updates["sent_date"] = now
		case models.InvoiceStatusPaid:
			updates["paid_date"] = now
		}
	}
	return updates, nil
}

func (service *InvoiceService) Delete(ctx context.Context, owner string, invoiceID string) error {
	deleted, err := service.invoices.DeleteByUserAndID(ctx, owner, invoiceID)
	if err != nil {
		return persistenceError("delete invoice", err)
	}
	if !deleted {
		return notFoundError("invoice")
	}
	return nil
}

func (service *InvoiceService) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	changed, err := service.invoices.MarkSentOverdue(ctx, Today(now, service.location))
	if err != nil {
		return 0, persistenceError("mark overdue invoices", err)
	}
	return changed, nil
}

func (service *InvoiceService) requireClient(ctx context.Context, owner string, clientID string) error {
	_, found, err := service.clients.FindByUserAndID(ctx, owner, clientID)
	if err != nil {
		return persistenceError("fetch client", err)
	}
	if !found {
		return notFoundError("client")
	}
	return nil
}

func (service *InvoiceService) requireUnusedNumber(ctx context.Context, owner string, number string, excludeID string) error {
	exists, err := service.invoices.NumberExists(ctx, owner, number, excludeID)
	if err != nil {
		return persistenceError("check invoice number", err)
	}
	if exists {
		return newValidationError("invoice_number", "invoice number %s already exists", number)
	}
	return nil
}

func (service *InvoiceService) numberSequence(number string) int64 {
	sequence, _ := invoiceSequence(service.numbers.Prefix(), number)
	return sequence
}

type CurrencyTotals struct {
	Currency             string          `json:"currency"`
	Outstanding          decimal.Decimal `json:"outstanding"`
	Paid                 decimal.Decimal `json:"paid"`
	Draft                decimal.Decimal `json:"draft"`
	OutstandingFormatted string          `json:"outstanding_formatted"`
	PaidFormatted        string          `json:"paid_formatted"`
	DraftFormatted       string          `json:"draft_formatted"`
}

type InvoiceSummary struct {
	InvoiceCount int              `json:"invoice_count"`
	OverdueCount int              `json:"overdue_count"`
	ByStatus     map[string]int   `json:"by_status"`
	Currencies   []CurrencyTotals `json:"currencies"`
}

func (service *InvoiceService) Summary(ctx context.Context, owner string) (InvoiceSummary, error) {
	invoices, err := service.invoices.ListByUser(ctx, owner)
	if err != nil {
		return InvoiceSummary{}, persistenceError("fetch invoices", err)
	}
	return SummarizeInvoices(invoices, Today(service.now(), service.location)), nil
}

// SummarizeInvoices totals invoices per currency including tax. Sent
// invoices past their due date count as overdue even before the sweep
// has flipped their status.
func SummarizeInvoices(invoices []models.Invoice, today time.Time) InvoiceSummary {
	summary := InvoiceSummary{
		InvoiceCount: len(invoices),
		ByStatus:     make(map[string]int),
		Currencies:   make([]CurrencyTotals, 0),
	}
	totals := make(map[string]*CurrencyTotals)
	for _, invoice := range invoices {
		summary.ByStatus[invoice.Status]++
		pastDue := invoice.Status == models.InvoiceStatusSent && CalendarDate(invoice.DueDate).Before(today)
		if invoice.Status == models.InvoiceStatusOverdue || pastDue {
			summary.OverdueCount++
		}

		entry, ok := totals[invoice.Currency]
		if !ok {
			entry = &CurrencyTotals{Currency: invoice.Currency}
			totals[invoice.Currency] = entry
		}
		total := invoice.TotalWithTax()
		switch invoice.Status {
		case models.InvoiceStatusSent, models.InvoiceStatusOverdue:
			entry.Outstanding = entry.Outstanding.Add(total)
		case models.InvoiceStatusPaid:
			entry.Paid = entry.Paid.Add(total)
		case models.InvoiceStatusDraft:
			entry.Draft = entry.Draft.Add(total)
		}
	}

	for _, entry := range totals {
		entry.OutstandingFormatted = FormatMoney(entry.Outstanding, entry.Currency)
		entry.PaidFormatted = FormatMoney(entry.Paid, entry.Currency)
		entry.DraftFormatted = FormatMoney(entry.Draft, entry.Currency)
		summary.Currencies = append(summary.Currencies, *entry)
	}
	sort.Slice(summary.Currencies, func(i, j int) bool {
		return summary.Currencies[i].Currency < summary.Currencies[j].Currency
	})
	return summary
}
