package db

import (
	"context"
	"time"

	"github.com/terraincognita07/dayledger/internal/models"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	database *gorm.DB
}

func NewInvoiceRepository(database *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{database: database}
}

func (repo *InvoiceRepository) ListByUser(ctx context.Context, userID string) ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (repo *InvoiceRepository) FindByUserAndID(ctx context.Context, userID string, invoiceID string) (models.Invoice, bool, error) {
	invoice := models.Invoice{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, invoiceID).
		Limit(1).
		Find(&invoice)
	if result.Error != nil {
		return models.Invoice{}, false, result.Error
	}
	return invoice, result.RowsAffected > 0, nil
}

// FindLatestNumber returns the invoice number with the highest numeric
// suffix for the user, falling back to length then string order among equal suffixes.
func (repo *InvoiceRepository) FindLatestNumber(ctx context.Context, userID string) (string, bool, error) {
	invoice := models.Invoice{}
	result := repo.database.WithContext(ctx).
		Select("invoice_number").
		Where("user_id = ?", userID).
		Order("number_seq DESC, LENGTH(invoice_number) DESC, invoice_number DESC").
		Limit(1).
		Find(&invoice)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return invoice.InvoiceNumber, true, nil
}

func (repo *InvoiceRepository) NumberExists(ctx context.Context, userID string, invoiceNumber string, excludeID string) (bool, error) {
	var count int64
	query := repo.database.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("user_id = ? AND invoice_number = ?", userID, invoiceNumber)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return repo.database.WithContext(ctx).Create(invoice).Error
}

func (repo *InvoiceRepository) UpdateColumns(ctx context.Context, userID string, invoiceID string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return repo.database.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("user_id = ? AND id = ?", userID, invoiceID).
		Updates(updates).Error
}

func (repo *InvoiceRepository) DeleteByUserAndID(ctx context.Context, userID string, invoiceID string) (bool, error) {
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, invoiceID).
		Delete(&models.Invoice{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkSentOverdue flips every sent invoice due before dueBefore to overdue
// across all owners and reports how many rows changed.
func (repo *InvoiceRepository) MarkSentOverdue(ctx context.Context, dueBefore time.Time) (int64, error) {
	result := repo.database.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("status = ? AND due_date < ?", models.InvoiceStatusSent, dueBefore).
		Update("status", models.InvoiceStatusOverdue)
	return result.RowsAffected, result.Error
}
