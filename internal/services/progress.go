package services

import (
	"errors"
	"math"
	"time"

	"github.com/hydraflow/hydraflow/internal/models"
)

var ErrInvalidGoal = errors.New("daily goal must be positive")

const DefaultRollupDays = 7

// Progress is the live state of the current local day.
type Progress struct {
	Total      int `json:"total_amount"`
	Percentage int `json:"percentage"`
	Remaining  int `json:"remaining"`
}

// DayBucket is one local calendar day of a rollup window. Goal is the
// current daily goal applied uniformly across the window, deliberately not
// a historical snapshot of the goal in effect on that day.
type DayBucket struct {
	Date  time.Time `json:"date"`
	Total int       `json:"total_amount"`
	Goal  int       `json:"goal"`
}

type CompletionRate struct {
	CompletedDays int `json:"completed_days"`
	Rate          int `json:"rate"`
}

// TodayProgress sums events falling in [local midnight, now]. Non-positive
// amounts contribute nothing; callers surface them via CountInvalidAmounts.
func TodayProgress(logs []models.WaterLog, goal int, now time.Time, location *time.Location) (Progress, error) {
	if goal <= 0 {
		return Progress{}, ErrInvalidGoal
	}

	dayStart, _ := DayRange(now, location)
	total := 0
	for _, entry := range logs {
		if entry.Amount <= 0 {
			continue
		}
		at := LogTime(entry, location)
		if at.Before(dayStart) || at.After(now) {
			continue
		}
		total += entry.Amount
	}

	remaining := goal - total
	if remaining < 0 {
		remaining = 0
	}

	return Progress{
		Total:      total,
		Percentage: percentageOfGoal(total, goal),
		Remaining:  remaining,
	}, nil
}

// BuildRollupWindow produces exactly `days` buckets for the consecutive
// local calendar days ending at now's day, oldest first. Days without
// events yield a zero total.
func BuildRollupWindow(logs []models.WaterLog, goal int, now time.Time, days int, location *time.Location) ([]DayBucket, error) {
	if goal <= 0 {
		return nil, ErrInvalidGoal
	}
	if days <= 0 {
		days = DefaultRollupDays
	}

	today := DateAtLocation(now, location)
	buckets := make([]DayBucket, days)
	indexByDayStart := make(map[int64]int, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i-(days-1))
		buckets[i] = DayBucket{Date: date, Goal: goal}
		indexByDayStart[date.Unix()] = i
	}

	for _, entry := range logs {
		if entry.Amount <= 0 {
			continue
		}
		dayStart := DateAtLocation(LogTime(entry, location), location)
		index, inWindow := indexByDayStart[dayStart.Unix()]
		if !inWindow {
			continue
		}
		buckets[index].Total += entry.Amount
	}

	return buckets, nil
}

// AverageDaily is the arithmetic mean over all buckets; empty days count
// as zero rather than being excluded.
func AverageDaily(buckets []DayBucket) float64 {
	if len(buckets) == 0 {
		return 0
	}
	sum := 0
	for _, bucket := range buckets {
		sum += bucket.Total
	}
	return float64(sum) / float64(len(buckets))
}

// BuildCompletionRate counts days whose total reached the goal.
func BuildCompletionRate(buckets []DayBucket, goal int) (CompletionRate, error) {
	if goal <= 0 {
		return CompletionRate{}, ErrInvalidGoal
	}
	if len(buckets) == 0 {
		return CompletionRate{}, nil
	}

	completed := 0
	for _, bucket := range buckets {
		if bucket.Total >= goal {
			completed++
		}
	}

	return CompletionRate{
		CompletedDays: completed,
		Rate:          int(math.Round(float64(completed) / float64(len(buckets)) * 100)),
	}, nil
}

// CurrentStreak walks backward from the most recent bucket counting
// consecutive completed days. An in-progress current day that has not yet
// reached the goal is skipped rather than breaking the streak; once it is
// complete it counts like any other day.
func CurrentStreak(buckets []DayBucket, now time.Time, location *time.Location) int {
	if len(buckets) == 0 {
		return 0
	}

	today := DateAtLocation(now, location)
	start := len(buckets) - 1

	last := buckets[start]
	if sameDay(last.Date, today) && !bucketComplete(last) {
		start--
	}

	streak := 0
	for i := start; i >= 0; i-- {
		if !bucketComplete(buckets[i]) {
			break
		}
		streak++
	}
	return streak
}

// CountInvalidAmounts reports how many events carry a non-positive amount.
// Such events should never survive boundary validation; when they do, the
// aggregator treats them as zero and the caller logs the count.
func CountInvalidAmounts(logs []models.WaterLog) int {
	invalid := 0
	for _, entry := range logs {
		if entry.Amount <= 0 {
			invalid++
		}
	}
	return invalid
}

func bucketComplete(bucket DayBucket) bool {
	return bucket.Goal > 0 && bucket.Total >= bucket.Goal
}

func percentageOfGoal(total int, goal int) int {
	percentage := int(math.Round(float64(total) / float64(goal) * 100))
	if percentage < 0 {
		return 0
	}
	if percentage > 100 {
		return 100
	}
	return percentage
}
