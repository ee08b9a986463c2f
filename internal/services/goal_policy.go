package services

import (
	"errors"
	"math"

	"github.com/hydraflow/hydraflow/internal/models"
)

var ErrInvalidProfile = errors.New("invalid profile for goal recommendation")

const (
	goalPerKilogramML = 30
	goalRoundingML    = 50
)

type QuickAddPreset struct {
	Amount int    `json:"amount"`
	Label  string `json:"label"`
}

// RecommendedGoal derives an advisory daily goal from body weight and
// activity level: 30 ml per kg, scaled by activity, rounded to the nearest
// 50 ml. The effective goal everywhere else is always the user's explicit
// DailyGoal, never this value.
func RecommendedGoal(weightKg float64, activityLevel string) (int, error) {
	if weightKg <= 0 || !models.IsValidActivityLevel(activityLevel) {
		return 0, ErrInvalidProfile
	}

	multiplier := 1.0
	switch activityLevel {
	case models.ActivityMedium:
		multiplier = 1.15
	case models.ActivityHigh:
		multiplier = 1.3
	}

	raw := weightKg * goalPerKilogramML * multiplier
	rounded := math.Round(raw/goalRoundingML) * goalRoundingML
	return int(rounded), nil
}

// QuickAddPresets is the fixed quick-add catalog, stable order.
func QuickAddPresets() []QuickAddPreset {
	return []QuickAddPreset{
		{Amount: 250, Label: "Cup"},
		{Amount: 330, Label: "Glass"},
		{Amount: 500, Label: "Bottle"},
	}
}
