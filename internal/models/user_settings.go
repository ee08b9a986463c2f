package models

import "time"

const (
	ActivityLow    = "low"
	ActivityMedium = "medium"
	ActivityHigh   = "high"
)

const (
	DefaultName             = "Alex"
	DefaultDailyGoal        = 2000
	DefaultWeight           = 70.0
	DefaultReminderInterval = 60
)

// UserSettings holds one logical settings row per user, last write wins.
// ReminderInterval is kept even while RemindersEnabled is false so that
// re-enabling restores the previous cadence.
type UserSettings struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	UserID           string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Name             string    `gorm:"not null" json:"name"`
	DailyGoal        int       `gorm:"not null" json:"daily_goal"`
	Weight           float64   `json:"weight"`
	ActivityLevel    string    `gorm:"not null;default:medium" json:"activity_level"`
	IsDarkMode       bool      `gorm:"not null;default:false" json:"is_dark_mode"`
	Avatar           string    `json:"avatar"`
	RemindersEnabled bool      `gorm:"not null;default:false" json:"reminders_enabled"`
	ReminderInterval int       `gorm:"not null;default:60" json:"reminder_interval"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func IsValidActivityLevel(level string) bool {
	switch level {
	case ActivityLow, ActivityMedium, ActivityHigh:
		return true
	default:
		return false
	}
}

// DefaultSettings mirrors the client-side defaults used before a profile
// has ever been saved.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:           userID,
		Name:             DefaultName,
		DailyGoal:        DefaultDailyGoal,
		Weight:           DefaultWeight,
		ActivityLevel:    ActivityMedium,
		RemindersEnabled: false,
		ReminderInterval: DefaultReminderInterval,
	}
}
