package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/hydraflow/hydraflow/internal/models"
)

type ReminderSettingsReader interface {
	ListWithRemindersEnabled() ([]models.UserSettings, error)
}

// SinkFactory builds the delivery sink for one user's reminders.
type SinkFactory func(userID string) NotificationSink

type ReminderStatus struct {
	Armed           bool       `json:"armed"`
	IntervalMinutes int        `json:"interval_minutes"`
	LastFiredAt     *time.Time `json:"last_fired_at,omitempty"`
}

// ReminderService keeps one ReminderScheduler per user. Every settings
// write goes through Configure, which always fully reconfigures the user's
// scheduler instead of diffing fields.
type ReminderService struct {
	settings ReminderSettingsReader
	newSink  SinkFactory

	mu         sync.Mutex
	schedulers map[string]*ReminderScheduler
}

func NewReminderService(settings ReminderSettingsReader, newSink SinkFactory) *ReminderService {
	if newSink == nil {
		newSink = NewLogNotificationSink
	}
	return &ReminderService{
		settings:   settings,
		newSink:    newSink,
		schedulers: make(map[string]*ReminderScheduler),
	}
}

// Start re-arms schedulers from persisted settings and tears every timer
// down when the lifecycle context ends.
func (service *ReminderService) Start(ctx context.Context) {
	rows, err := service.settings.ListWithRemindersEnabled()
	if err != nil {
		// Reminders resume on the next settings write; aggregation and
		// everything else stays unaffected.
		log.Printf("reminders: load persisted settings failed: %v", err)
	} else {
		for _, row := range rows {
			service.Configure(row.UserID, row.RemindersEnabled, row.ReminderInterval)
		}
	}

	go func() {
		<-ctx.Done()
		service.TeardownAll()
	}()
}

func (service *ReminderService) Configure(userID string, enabled bool, intervalMinutes int) {
	service.schedulerFor(userID).Configure(enabled, intervalMinutes)
}

func (service *ReminderService) Status(userID string) ReminderStatus {
	service.mu.Lock()
	scheduler, exists := service.schedulers[userID]
	service.mu.Unlock()
	if !exists {
		return ReminderStatus{}
	}

	status := ReminderStatus{
		Armed:           scheduler.IsArmed(),
		IntervalMinutes: scheduler.Interval(),
	}
	if firedAt, fired := scheduler.LastFiredAt(); fired {
		status.LastFiredAt = &firedAt
	}
	return status
}

func (service *ReminderService) TeardownAll() {
	service.mu.Lock()
	defer service.mu.Unlock()
	for _, scheduler := range service.schedulers {
		scheduler.Teardown()
	}
}

func (service *ReminderService) schedulerFor(userID string) *ReminderScheduler {
	service.mu.Lock()
	defer service.mu.Unlock()

	scheduler, exists := service.schedulers[userID]
	if !exists {
		scheduler = NewReminderScheduler(service.newSink(userID))
		service.schedulers[userID] = scheduler
	}
	return scheduler
}

type logNotificationSink struct {
	userID string
}

// NewLogNotificationSink is the default delivery path: reminders are
// written to the process log. Platform push delivery plugs in through the
// same interface.
func NewLogNotificationSink(userID string) NotificationSink {
	return &logNotificationSink{userID: userID}
}

func (sink *logNotificationSink) Fire(title string, body string) error {
	log.Printf("reminders: user %s: %s: %s", sink.userID, title, body)
	return nil
}
