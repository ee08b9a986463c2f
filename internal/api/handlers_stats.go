package api

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hydraflow/hydraflow/internal/services"
)

const maxRollupDays = 90

type statsOverviewResponse struct {
	Today           services.Progress         `json:"today"`
	Buckets         []services.DayBucket      `json:"buckets"`
	AverageDaily    float64                   `json:"average_daily"`
	Completion      services.CompletionRate   `json:"completion"`
	CurrentStreak   int                       `json:"current_streak"`
	RecommendedGoal int                       `json:"recommended_goal,omitempty"`
	QuickAddPresets []services.QuickAddPreset `json:"quick_add_presets"`
}

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	userID, ok := requiredParam(c, "userId")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing user id")
	}

	days := services.DefaultRollupDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxRollupDays {
			return apiError(c, fiber.StatusBadRequest, "days must be between 1 and 90")
		}
		days = parsed
	}

	settings, _, err := handler.settings.Load(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch user settings")
	}

	logs, err := handler.logs.ListByUser(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch water logs")
	}
	if invalid := services.CountInvalidAmounts(logs); invalid > 0 {
		log.Printf("stats: user %s has %d non-positive amounts in store", userID, invalid)
	}

	now := time.Now().In(handler.location)

	today, err := services.TodayProgress(logs, settings.DailyGoal, now, handler.location)
	if errors.Is(err, services.ErrInvalidGoal) {
		return apiError(c, fiber.StatusUnprocessableEntity, "stored daily goal must be positive")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute progress")
	}

	buckets, err := services.BuildRollupWindow(logs, settings.DailyGoal, now, days, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute rollup")
	}

	completion, err := services.BuildCompletionRate(buckets, settings.DailyGoal)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute completion rate")
	}

	response := statsOverviewResponse{
		Today:           today,
		Buckets:         buckets,
		AverageDaily:    services.AverageDaily(buckets),
		Completion:      completion,
		CurrentStreak:   services.CurrentStreak(buckets, now, handler.location),
		QuickAddPresets: services.QuickAddPresets(),
	}

	// Advisory only; a profile without a usable weight simply omits it.
	if recommended, err := services.RecommendedGoal(settings.Weight, settings.ActivityLevel); err == nil {
		response.RecommendedGoal = recommended
	}

	return c.JSON(response)
}

func (handler *Handler) GetReminderStatus(c *fiber.Ctx) error {
	userID, ok := requiredParam(c, "userId")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing user id")
	}
	return c.JSON(handler.reminders.Status(userID))
}
