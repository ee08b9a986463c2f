package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hydraflow/hydraflow/internal/models"
	"github.com/hydraflow/hydraflow/internal/services"
)

func (handler *Handler) GetUserSettings(c *fiber.Ctx) error {
	userID, ok := requiredParam(c, "userId")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing user id")
	}

	settings, found, err := handler.settings.Load(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch user settings")
	}
	if !found {
		// The client creates its defaults on first launch.
		return c.JSON(nil)
	}
	return c.JSON(settings)
}

// UpsertUserSettings creates or fully replaces the settings row, then
// reconfigures the user's reminder scheduler with the post-write state.
func (handler *Handler) UpsertUserSettings(c *fiber.Ctx) error {
	payload := settingsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.UserID == "" {
		return apiError(c, fiber.StatusBadRequest, "missing required field: user_id")
	}

	base, _, err := handler.settings.Load(payload.UserID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch user settings")
	}
	merged := overlaySettings(base, payload)

	saved, err := handler.settings.Upsert(payload.UserID, merged)
	if errors.Is(err, services.ErrInvalidSettings) {
		return apiError(c, fiber.StatusBadRequest, "invalid settings input")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save user settings")
	}

	handler.reminders.Configure(saved.UserID, saved.RemindersEnabled, saved.ReminderInterval)
	return c.JSON(saved)
}

// PatchUserSettings applies a partial update. A patch for a user without a
// stored row falls back to the client defaults so a PATCH-before-POST
// client still converges.
func (handler *Handler) PatchUserSettings(c *fiber.Ctx) error {
	userID, ok := requiredParam(c, "userId")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing user id")
	}

	payload := settingsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	saved, err := handler.settings.ApplyPartial(userID, settingsPatch(payload))
	if errors.Is(err, services.ErrSettingsNotFound) {
		saved, err = handler.settings.Upsert(userID, overlaySettings(models.DefaultSettings(userID), payload))
	}
	if errors.Is(err, services.ErrInvalidSettings) {
		return apiError(c, fiber.StatusBadRequest, "invalid settings input")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update user settings")
	}

	handler.reminders.Configure(saved.UserID, saved.RemindersEnabled, saved.ReminderInterval)
	return c.JSON(saved)
}

func overlaySettings(base models.UserSettings, payload settingsPayload) models.UserSettings {
	if payload.Name != nil {
		base.Name = *payload.Name
	}
	if payload.DailyGoal != nil {
		base.DailyGoal = *payload.DailyGoal
	}
	if payload.Weight != nil {
		base.Weight = *payload.Weight
	}
	if payload.ActivityLevel != nil {
		base.ActivityLevel = *payload.ActivityLevel
	}
	if payload.IsDarkMode != nil {
		base.IsDarkMode = *payload.IsDarkMode
	}
	if payload.Avatar != nil {
		base.Avatar = *payload.Avatar
	}
	if payload.RemindersEnabled != nil {
		base.RemindersEnabled = *payload.RemindersEnabled
	}
	if payload.ReminderInterval != nil {
		base.ReminderInterval = *payload.ReminderInterval
	}
	return base
}

func settingsPatch(payload settingsPayload) services.SettingsPatch {
	return services.SettingsPatch{
		Name:             payload.Name,
		DailyGoal:        payload.DailyGoal,
		Weight:           payload.Weight,
		ActivityLevel:    payload.ActivityLevel,
		IsDarkMode:       payload.IsDarkMode,
		Avatar:           payload.Avatar,
		RemindersEnabled: payload.RemindersEnabled,
		ReminderInterval: payload.ReminderInterval,
	}
}
