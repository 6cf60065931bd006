package db

import (
	"context"
	"fmt"

	"github.com/terraincognita07/dayledger/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// Ensure inserts the user unless a row with the same email already exists.
func (repo *UserRepository) Ensure(ctx context.Context, user *models.User) error {
	result := repo.database.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(user)
	if result.Error != nil {
		return fmt.Errorf("ensure user: %w", result.Error)
	}
	return nil
}

func (repo *UserRepository) FindByID(ctx context.Context, userID string) (models.User, bool, error) {
	var user models.User
	result := repo.database.WithContext(ctx).Where("id = ?", userID).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	return user, result.RowsAffected > 0, nil
}
