package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

func init() {
	// Amounts travel as JSON numbers, the way API clients send them.
	decimal.MarshalJSONWithoutQuotes = true
}

type Invoice struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	UserID        string          `gorm:"not null;uniqueIndex:uidx_invoices_user_number;index:idx_invoices_user_seq" json:"user_id"`
	ClientID      string          `gorm:"not null;index" json:"client_id"`
	InvoiceNumber string          `gorm:"not null;uniqueIndex:uidx_invoices_user_number" json:"invoice_number"`
	NumberSeq     int64           `gorm:"not null;default:0;index:idx_invoices_user_seq" json:"-"`
	Title         string          `gorm:"not null" json:"title"`
	Description   *string         `json:"description"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency      string          `gorm:"size:3;not null;default:USD" json:"currency"`
	TaxRate       float64         `gorm:"not null;default:0" json:"tax_rate"`
	Status        string          `gorm:"not null;default:draft;index" json:"status"`
	IssueDate     time.Time       `gorm:"type:date;not null" json:"issue_date"`
	DueDate       time.Time       `gorm:"type:date;not null" json:"due_date"`
	SentDate      *time.Time      `json:"sent_date"`
	PaidDate      *time.Time      `json:"paid_date"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Client *InvoiceClient `gorm:"-" json:"client,omitempty"`
}

type InvoiceClient struct {
	Name    string  `json:"name"`
	Company *string `json:"company"`
}

// TotalWithTax returns amount plus tax_rate percent, rounded to cents.
func (invoice Invoice) TotalWithTax() decimal.Decimal {
	rate := decimal.NewFromFloat(invoice.TaxRate).Div(decimal.NewFromInt(100))
	return invoice.Amount.Add(invoice.Amount.Mul(rate)).Round(2)
}
