package services

import (
	"time"

	"github.com/hydraflow/hydraflow/internal/models"
)

// DateAtLocation truncates an instant to local midnight in the given timezone.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the [start, end) bounds of the local calendar day
// containing value.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// LogTime converts an event's epoch-ms timestamp into a localized instant.
func LogTime(entry models.WaterLog, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return time.UnixMilli(entry.Timestamp).In(location)
}

func sameDay(a time.Time, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
