package db

import (
	"github.com/hydraflow/hydraflow/internal/models"
	"gorm.io/gorm"
)

type WaterLogRepository struct {
	database *gorm.DB
}

func NewWaterLogRepository(database *gorm.DB) *WaterLogRepository {
	return &WaterLogRepository{database: database}
}

// ListByUser returns all intake events for a user, newest first.
func (repo *WaterLogRepository) ListByUser(userID string) ([]models.WaterLog, error) {
	logs := make([]models.WaterLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserSince returns events with timestamp >= sinceMs, newest first.
func (repo *WaterLogRepository) ListByUserSince(userID string, sinceMs int64) ([]models.WaterLog, error) {
	logs := make([]models.WaterLog, 0)
	if err := repo.database.
		Where("user_id = ? AND timestamp >= ?", userID, sinceMs).
		Order("timestamp DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserRange returns events with fromMs <= timestamp < toMs, oldest first.
func (repo *WaterLogRepository) ListByUserRange(userID string, fromMs int64, toMs int64) ([]models.WaterLog, error) {
	logs := make([]models.WaterLog, 0)
	if err := repo.database.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, fromMs, toMs).
		Order("timestamp ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *WaterLogRepository) FindByID(id string) (models.WaterLog, bool, error) {
	entry := models.WaterLog{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.WaterLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WaterLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *WaterLogRepository) Create(entry *models.WaterLog) error {
	return repo.database.Create(entry).Error
}

func (repo *WaterLogRepository) Save(entry *models.WaterLog) error {
	return repo.database.Save(entry).Error
}

func (repo *WaterLogRepository) DeleteByID(id string) error {
	return repo.database.Where("id = ?", id).Delete(&models.WaterLog{}).Error
}
