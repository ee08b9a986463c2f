package services

import (
	"errors"
	"time"

	"github.com/hydraflow/hydraflow/internal/models"
)

var (
	ErrInvalidAmount    = errors.New("intake amount must be positive")
	ErrInvalidTimestamp = errors.New("intake timestamp must be positive")
	ErrLogNotFound      = errors.New("water log not found")
	ErrLogStoreFailed   = errors.New("water log store failed")
)

type WaterLogStore interface {
	ListByUser(userID string) ([]models.WaterLog, error)
	ListByUserSince(userID string, sinceMs int64) ([]models.WaterLog, error)
	FindByID(id string) (models.WaterLog, bool, error)
	Create(entry *models.WaterLog) error
	Save(entry *models.WaterLog) error
	DeleteByID(id string) error
}

type WaterLogService struct {
	logs     WaterLogStore
	location *time.Location
}

func NewWaterLogService(logs WaterLogStore, location *time.Location) *WaterLogService {
	if location == nil {
		location = time.UTC
	}
	return &WaterLogService{
		logs:     logs,
		location: location,
	}
}

// Append records one intake event. The store assigns the ID when the
// client did not send one. Amounts and timestamps are validated here, at
// the boundary, so nothing non-positive ever reaches the aggregator.
func (service *WaterLogService) Append(userID string, amount int, timestampMs int64) (models.WaterLog, error) {
	if amount <= 0 {
		return models.WaterLog{}, ErrInvalidAmount
	}
	if timestampMs <= 0 {
		return models.WaterLog{}, ErrInvalidTimestamp
	}

	entry := models.WaterLog{
		UserID:    userID,
		Amount:    amount,
		Timestamp: timestampMs,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.WaterLog{}, ErrLogStoreFailed
	}
	return entry, nil
}

// Update edits amount and timestamp of an existing event. A backdated
// timestamp is allowed; it moves the event to another day bucket.
func (service *WaterLogService) Update(id string, amount int, timestampMs int64) (models.WaterLog, error) {
	if amount <= 0 {
		return models.WaterLog{}, ErrInvalidAmount
	}
	if timestampMs <= 0 {
		return models.WaterLog{}, ErrInvalidTimestamp
	}

	entry, found, err := service.logs.FindByID(id)
	if err != nil {
		return models.WaterLog{}, ErrLogStoreFailed
	}
	if !found {
		return models.WaterLog{}, ErrLogNotFound
	}

	entry.Amount = amount
	entry.Timestamp = timestampMs
	if err := service.logs.Save(&entry); err != nil {
		return models.WaterLog{}, ErrLogStoreFailed
	}
	return entry, nil
}

func (service *WaterLogService) Delete(id string) error {
	_, found, err := service.logs.FindByID(id)
	if err != nil {
		return ErrLogStoreFailed
	}
	if !found {
		return ErrLogNotFound
	}
	if err := service.logs.DeleteByID(id); err != nil {
		return ErrLogStoreFailed
	}
	return nil
}

func (service *WaterLogService) ListByUser(userID string) ([]models.WaterLog, error) {
	return service.logs.ListByUser(userID)
}

// ListToday returns the user's events since local midnight, newest first.
func (service *WaterLogService) ListToday(userID string, now time.Time) ([]models.WaterLog, error) {
	dayStart, _ := DayRange(now, service.location)
	return service.logs.ListByUserSince(userID, dayStart.UnixMilli())
}
