package services

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

const (
	reminderTitle = "Time to drink water!"
	reminderBody  = "Stay hydrated and log your next glass."
)

// NotificationSink delivers a reminder to the user. Delivery is
// best-effort; a failed delivery must never stop the schedule.
type NotificationSink interface {
	Fire(title string, body string) error
}

// ReminderScheduler owns at most one recurring timer. Configure and
// Teardown are serialized by a mutex so cancel-then-start never interleaves
// with another call, which would otherwise leak a duplicate timer.
type ReminderScheduler struct {
	sink NotificationSink

	mu              sync.Mutex
	armed           bool
	intervalMinutes int
	lastFiredAt     time.Time
	stop            chan struct{}

	liveTimers atomic.Int32

	// tickPeriod maps the configured interval to the ticker period.
	// Replaced in tests to avoid minute-long waits.
	tickPeriod func(intervalMinutes int) time.Duration
}

func NewReminderScheduler(sink NotificationSink) *ReminderScheduler {
	return &ReminderScheduler{
		sink:       sink,
		tickPeriod: minutesToPeriod,
	}
}

// Configure fully reconfigures the scheduler: any active timer is cancelled
// first, then a fresh recurring timer is started when enabled. Repeated
// calls with the same arguments are idempotent.
func (scheduler *ReminderScheduler) Configure(enabled bool, intervalMinutes int) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	scheduler.disarmLocked()
	if !enabled {
		return
	}
	if intervalMinutes < 1 {
		log.Printf("reminders: refusing to arm with interval %d minutes", intervalMinutes)
		return
	}

	stop := make(chan struct{})
	scheduler.stop = stop
	scheduler.armed = true
	scheduler.intervalMinutes = intervalMinutes

	scheduler.liveTimers.Add(1)
	go scheduler.runTimer(scheduler.tickPeriod(intervalMinutes), stop)
}

// Teardown cancels any active timer unconditionally.
func (scheduler *ReminderScheduler) Teardown() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.disarmLocked()
}

func (scheduler *ReminderScheduler) IsArmed() bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.armed
}

func (scheduler *ReminderScheduler) Interval() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if !scheduler.armed {
		return 0
	}
	return scheduler.intervalMinutes
}

func (scheduler *ReminderScheduler) LastFiredAt() (time.Time, bool) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.lastFiredAt, !scheduler.lastFiredAt.IsZero()
}

func (scheduler *ReminderScheduler) disarmLocked() {
	if scheduler.stop != nil {
		close(scheduler.stop)
		scheduler.stop = nil
	}
	scheduler.armed = false
	scheduler.intervalMinutes = 0
}

func (scheduler *ReminderScheduler) runTimer(period time.Duration, stop chan struct{}) {
	defer scheduler.liveTimers.Add(-1)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			scheduler.fire(stop)
		}
	}
}

func (scheduler *ReminderScheduler) fire(stop chan struct{}) {
	scheduler.mu.Lock()
	if scheduler.stop != stop {
		// A reconfigure raced this tick; the new timer owns the schedule.
		scheduler.mu.Unlock()
		return
	}
	scheduler.mu.Unlock()

	if err := scheduler.sink.Fire(reminderTitle, reminderBody); err != nil {
		log.Printf("reminders: delivery failed: %v", err)
	}

	scheduler.mu.Lock()
	if scheduler.stop == stop {
		scheduler.lastFiredAt = time.Now()
	}
	scheduler.mu.Unlock()
}

func minutesToPeriod(intervalMinutes int) time.Duration {
	return time.Duration(intervalMinutes) * time.Minute
}
