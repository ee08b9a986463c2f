package api

import (
	"time"

	"github.com/hydraflow/hydraflow/internal/db"
	"github.com/hydraflow/hydraflow/internal/services"
)

type Handler struct {
	logs      *services.WaterLogService
	settings  *services.SettingsService
	reminders *services.ReminderService
	advice    *services.AdviceService
	location  *time.Location
}

func NewHandler(repos *db.Repositories, reminders *services.ReminderService, advice *services.AdviceService, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		logs:      services.NewWaterLogService(repos.WaterLogs, location),
		settings:  services.NewSettingsService(repos.Settings),
		reminders: reminders,
		advice:    advice,
		location:  location,
	}
}

type waterLogPayload struct {
	UserID    string `json:"user_id"`
	Amount    int    `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

type waterLogUpdatePayload struct {
	Amount    int   `json:"amount"`
	Timestamp int64 `json:"timestamp"`
}

// settingsPayload covers both the full POST upsert and the PATCH partial
// update; nil fields were absent from the request body.
type settingsPayload struct {
	UserID           string   `json:"user_id"`
	Name             *string  `json:"name"`
	DailyGoal        *int     `json:"daily_goal"`
	Weight           *float64 `json:"weight"`
	ActivityLevel    *string  `json:"activity_level"`
	IsDarkMode       *bool    `json:"is_dark_mode"`
	Avatar           *string  `json:"avatar"`
	RemindersEnabled *bool    `json:"reminders_enabled"`
	ReminderInterval *int     `json:"reminder_interval"`
}

type advicePayload struct {
	CurrentAmount *int `json:"current_amount"`
	DailyGoal     *int `json:"daily_goal"`
}
