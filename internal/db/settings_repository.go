package db

import (
	"github.com/hydraflow/hydraflow/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) FindByUserID(userID string) (models.UserSettings, bool, error) {
	settings := models.UserSettings{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&settings)
	if result.Error != nil {
		return models.UserSettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserSettings{}, false, nil
	}
	return settings, true, nil
}

func (repo *SettingsRepository) Create(settings *models.UserSettings) error {
	return repo.database.Create(settings).Error
}

func (repo *SettingsRepository) Save(settings *models.UserSettings) error {
	return repo.database.Save(settings).Error
}

func (repo *SettingsRepository) UpdateByUserID(userID string, updates map[string]any) error {
	return repo.database.Model(&models.UserSettings{}).Where("user_id = ?", userID).Updates(updates).Error
}

// ListWithRemindersEnabled feeds scheduler re-arming at process start.
func (repo *SettingsRepository) ListWithRemindersEnabled() ([]models.UserSettings, error) {
	rows := make([]models.UserSettings, 0)
	if err := repo.database.
		Where("reminders_enabled = ?", true).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
