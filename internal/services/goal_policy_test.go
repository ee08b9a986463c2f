package services

import (
	"errors"
	"testing"

	"github.com/hydraflow/hydraflow/internal/models"
)

func TestRecommendedGoal(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		activity string
		want     int
	}{
		{name: "low activity", weight: 70, activity: models.ActivityLow, want: 2100},
		{name: "medium activity", weight: 70, activity: models.ActivityMedium, want: 2400},
		{name: "high activity", weight: 70, activity: models.ActivityHigh, want: 2750},
		{name: "rounds to nearest 50", weight: 61, activity: models.ActivityLow, want: 1850},
		{name: "light person high activity", weight: 50, activity: models.ActivityHigh, want: 1950},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecommendedGoal(tt.weight, tt.activity)
			if err != nil {
				t.Fatalf("RecommendedGoal() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("RecommendedGoal(%v, %s) = %d, want %d", tt.weight, tt.activity, got, tt.want)
			}
			if got%50 != 0 {
				t.Fatalf("expected multiple of 50, got %d", got)
			}
		})
	}
}

func TestRecommendedGoalRejectsInvalidProfile(t *testing.T) {
	if _, err := RecommendedGoal(0, models.ActivityLow); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile for zero weight, got %v", err)
	}
	if _, err := RecommendedGoal(70, "extreme"); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile for unknown activity, got %v", err)
	}
}

func TestQuickAddPresetsStableOrder(t *testing.T) {
	presets := QuickAddPresets()
	if len(presets) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(presets))
	}
	wantAmounts := []int{250, 330, 500}
	for i, preset := range presets {
		if preset.Amount != wantAmounts[i] {
			t.Fatalf("preset %d: expected amount %d, got %d", i, wantAmounts[i], preset.Amount)
		}
		if preset.Label == "" {
			t.Fatalf("preset %d: expected non-empty label", i)
		}
	}
}
