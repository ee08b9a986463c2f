package services

import (
	"errors"

	"github.com/hydraflow/hydraflow/internal/models"
)

var (
	ErrInvalidSettings    = errors.New("invalid settings input")
	ErrSettingsNotFound   = errors.New("settings not found")
	ErrSettingsSaveFailed = errors.New("settings save failed")
)

type SettingsStore interface {
	FindByUserID(userID string) (models.UserSettings, bool, error)
	Create(settings *models.UserSettings) error
	Save(settings *models.UserSettings) error
	UpdateByUserID(userID string, updates map[string]any) error
}

// SettingsPatch carries a partial settings update; nil fields are left
// untouched. Last write wins, no conflict resolution.
type SettingsPatch struct {
	Name             *string
	DailyGoal        *int
	Weight           *float64
	ActivityLevel    *string
	IsDarkMode       *bool
	Avatar           *string
	RemindersEnabled *bool
	ReminderInterval *int
}

type SettingsService struct {
	settings SettingsStore
}

func NewSettingsService(settings SettingsStore) *SettingsService {
	return &SettingsService{settings: settings}
}

// Load returns the stored settings, or the client defaults when the user
// has never saved a profile. The found flag distinguishes the two.
func (service *SettingsService) Load(userID string) (models.UserSettings, bool, error) {
	stored, found, err := service.settings.FindByUserID(userID)
	if err != nil {
		return models.UserSettings{}, false, err
	}
	if !found {
		return models.DefaultSettings(userID), false, nil
	}
	return stored, true, nil
}

// Upsert creates or fully replaces the user's settings row.
func (service *SettingsService) Upsert(userID string, incoming models.UserSettings) (models.UserSettings, error) {
	if err := validateSettings(incoming); err != nil {
		return models.UserSettings{}, err
	}

	stored, found, err := service.settings.FindByUserID(userID)
	if err != nil {
		return models.UserSettings{}, ErrSettingsSaveFailed
	}

	incoming.UserID = userID
	if found {
		incoming.ID = stored.ID
		incoming.CreatedAt = stored.CreatedAt
		if err := service.settings.Save(&incoming); err != nil {
			return models.UserSettings{}, ErrSettingsSaveFailed
		}
		return incoming, nil
	}

	if err := service.settings.Create(&incoming); err != nil {
		return models.UserSettings{}, ErrSettingsSaveFailed
	}
	return incoming, nil
}

// ApplyPartial updates only the fields present in the patch and returns
// the settings row as stored afterwards.
func (service *SettingsService) ApplyPartial(userID string, patch SettingsPatch) (models.UserSettings, error) {
	if err := validatePatch(patch); err != nil {
		return models.UserSettings{}, err
	}

	_, found, err := service.settings.FindByUserID(userID)
	if err != nil {
		return models.UserSettings{}, ErrSettingsSaveFailed
	}
	if !found {
		return models.UserSettings{}, ErrSettingsNotFound
	}

	updates := patchUpdates(patch)
	if len(updates) > 0 {
		if err := service.settings.UpdateByUserID(userID, updates); err != nil {
			return models.UserSettings{}, ErrSettingsSaveFailed
		}
	}

	updated, _, err := service.settings.FindByUserID(userID)
	if err != nil {
		return models.UserSettings{}, ErrSettingsSaveFailed
	}
	return updated, nil
}

func validateSettings(settings models.UserSettings) error {
	if settings.DailyGoal <= 0 {
		return ErrInvalidSettings
	}
	if settings.Weight <= 0 {
		return ErrInvalidSettings
	}
	if !models.IsValidActivityLevel(settings.ActivityLevel) {
		return ErrInvalidSettings
	}
	// A stale interval while reminders are disabled is tolerated; an
	// explicit non-positive interval is not.
	if settings.ReminderInterval < 1 {
		return ErrInvalidSettings
	}
	return nil
}

func validatePatch(patch SettingsPatch) error {
	if patch.DailyGoal != nil && *patch.DailyGoal <= 0 {
		return ErrInvalidSettings
	}
	if patch.Weight != nil && *patch.Weight <= 0 {
		return ErrInvalidSettings
	}
	if patch.ActivityLevel != nil && !models.IsValidActivityLevel(*patch.ActivityLevel) {
		return ErrInvalidSettings
	}
	if patch.ReminderInterval != nil && *patch.ReminderInterval < 1 {
		return ErrInvalidSettings
	}
	return nil
}

func patchUpdates(patch SettingsPatch) map[string]any {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.DailyGoal != nil {
		updates["daily_goal"] = *patch.DailyGoal
	}
	if patch.Weight != nil {
		updates["weight"] = *patch.Weight
	}
	if patch.ActivityLevel != nil {
		updates["activity_level"] = *patch.ActivityLevel
	}
	if patch.IsDarkMode != nil {
		updates["is_dark_mode"] = *patch.IsDarkMode
	}
	if patch.Avatar != nil {
		updates["avatar"] = *patch.Avatar
	}
	if patch.RemindersEnabled != nil {
		updates["reminders_enabled"] = *patch.RemindersEnabled
	}
	if patch.ReminderInterval != nil {
		updates["reminder_interval"] = *patch.ReminderInterval
	}
	return updates
}
