package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"gorm.io/gorm"
)

type SettingsRepositoryImpl interface {
	GetAdminCredentials(ctx context.Context) (*models.AdminCredentials, error)
	SaveAdminCredentials(ctx context.Context, creds models.AdminCredentials) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepositoryImpl {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetAdminCredentials(ctx context.Context) (*models.AdminCredentials, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).First(&setting, "`key` = ?", models.AdminCredentialsKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read admin credentials: %w", err)
	}
	return &models.AdminCredentials{Username: setting.Username, PasswordHash: setting.PasswordHash}, nil
}

// SaveAdminCredentials updates the settings row and creates it when it does not exist yet.
func (r *settingsRepository) SaveAdminCredentials(ctx context.Context, creds models.AdminCredentials) error {
	result := r.db.WithContext(ctx).
		Model(&models.Setting{}).
		Where("`key` = ?", models.AdminCredentialsKey).
		Updates(map[string]interface{}{
			"username":      creds.Username,
			"password_hash": creds.PasswordHash,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update admin credentials: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	setting := &models.Setting{
		Key:          models.AdminCredentialsKey,
		Username:     creds.Username,
		PasswordHash: creds.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(setting).Error; err != nil {
		return fmt.Errorf("failed to create admin credentials: %w", err)
	}
	return nil
}
