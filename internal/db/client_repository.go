package db

import (
	"context"

	"github.com/terraincognita07/dayledger/internal/models"
	"gorm.io/gorm"
)

type ClientRepository struct {
	database *gorm.DB
}

func NewClientRepository(database *gorm.DB) *ClientRepository {
	return &ClientRepository{database: database}
}

func (repo *ClientRepository) ListByUser(ctx context.Context, userID string) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (repo *ClientRepository) FindByUserAndID(ctx context.Context, userID string, clientID string) (models.Client, bool, error) {
	client := models.Client{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, clientID).
		Limit(1).
		Find(&client)
	if result.Error != nil {
		return models.Client{}, false, result.Error
	}
	return client, result.RowsAffected > 0, nil
}

func (repo *ClientRepository) FindManyByUser(ctx context.Context, userID string, clientIDs []string) ([]models.Client, error) {
	clients := make([]models.Client, 0, len(clientIDs))
	if len(clientIDs) == 0 {
		return clients, nil
	}
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, clientIDs).
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (repo *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	return repo.database.WithContext(ctx).Create(client).Error
}

func (repo *ClientRepository) UpdateColumns(ctx context.Context, userID string, clientID string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return repo.database.WithContext(ctx).
		Model(&models.Client{}).
		Where("user_id = ? AND id = ?", userID, clientID).
		Updates(updates).Error
}

func (repo *ClientRepository) DeleteByUserAndID(ctx context.Context, userID string, clientID string) (bool, error) {
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, clientID).
		Delete(&models.Client{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
