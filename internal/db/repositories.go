package db

import "gorm.io/gorm"

type Repositories struct {
	WaterLogs *WaterLogRepository
	Settings  *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		WaterLogs: NewWaterLogRepository(database),
		Settings:  NewSettingsRepository(database),
	}
}
