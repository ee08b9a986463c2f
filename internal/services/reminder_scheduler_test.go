package services

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type countingSink struct {
	mu    sync.Mutex
	fires int
	err   error
}

func (sink *countingSink) Fire(string, string) error {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.fires++
	return sink.err
}

func (sink *countingSink) count() int {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	return sink.fires
}

func newTestScheduler(sink NotificationSink) *ReminderScheduler {
	scheduler := NewReminderScheduler(sink)
	scheduler.tickPeriod = func(int) time.Duration {
		return 2 * time.Millisecond
	}
	return scheduler
}

func waitFor(t *testing.T, what string, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestConfigureReplacesExistingTimer(t *testing.T) {
	sink := &countingSink{}
	scheduler := newTestScheduler(sink)
	defer scheduler.Teardown()

	scheduler.Configure(true, 30)
	scheduler.Configure(true, 60)

	if !scheduler.IsArmed() {
		t.Fatal("expected scheduler to stay armed")
	}
	if got := scheduler.Interval(); got != 60 {
		t.Fatalf("expected the newest interval 60, got %d", got)
	}
	waitFor(t, "single live timer", func() bool {
		return scheduler.liveTimers.Load() == 1
	})
}

func TestConfigureDisabledCancelsTimer(t *testing.T) {
	sink := &countingSink{}
	scheduler := newTestScheduler(sink)

	scheduler.Configure(true, 60)
	scheduler.Configure(false, 60)

	if scheduler.IsArmed() {
		t.Fatal("expected scheduler to be idle after disable")
	}
	if got := scheduler.Interval(); got != 0 {
		t.Fatalf("expected no interval while idle, got %d", got)
	}
	waitFor(t, "zero live timers", func() bool {
		return scheduler.liveTimers.Load() == 0
	})

	// Re-enabling arms exactly one fresh timer.
	scheduler.Configure(true, 60)
	defer scheduler.Teardown()
	if !scheduler.IsArmed() {
		t.Fatal("expected scheduler to re-arm")
	}
	waitFor(t, "single live timer after re-arm", func() bool {
		return scheduler.liveTimers.Load() == 1
	})
}

func TestConfigureIsIdempotentUnderRepetition(t *testing.T) {
	scheduler := newTestScheduler(&countingSink{})
	defer scheduler.Teardown()

	for i := 0; i < 25; i++ {
		scheduler.Configure(true, 45)
	}

	waitFor(t, "single live timer", func() bool {
		return scheduler.liveTimers.Load() == 1
	})
	if got := scheduler.Interval(); got != 45 {
		t.Fatalf("expected interval 45, got %d", got)
	}
}

func TestConcurrentConfigureNeverLeaksTimers(t *testing.T) {
	scheduler := newTestScheduler(&countingSink{})
	defer scheduler.Teardown()

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(interval int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				scheduler.Configure(true, interval)
			}
		}(worker + 1)
	}
	wg.Wait()

	waitFor(t, "at most one live timer", func() bool {
		return scheduler.liveTimers.Load() == 1
	})
}

func TestArmedSchedulerFiresRepeatedly(t *testing.T) {
	sink := &countingSink{}
	scheduler := newTestScheduler(sink)
	defer scheduler.Teardown()

	scheduler.Configure(true, 1)

	waitFor(t, "at least three fires", func() bool {
		return sink.count() >= 3
	})
	if _, fired := scheduler.LastFiredAt(); !fired {
		t.Fatal("expected lastFiredAt to be recorded")
	}
}

func TestDeliveryFailureDoesNotStopTimer(t *testing.T) {
	sink := &countingSink{err: errors.New("permission denied")}
	scheduler := newTestScheduler(sink)
	defer scheduler.Teardown()

	scheduler.Configure(true, 1)

	waitFor(t, "fires despite sink failures", func() bool {
		return sink.count() >= 3
	})
	if !scheduler.IsArmed() {
		t.Fatal("expected scheduler to stay armed after delivery failures")
	}
}

func TestConfigureRefusesNonPositiveInterval(t *testing.T) {
	scheduler := newTestScheduler(&countingSink{})

	scheduler.Configure(true, 0)
	if scheduler.IsArmed() {
		t.Fatal("expected scheduler to stay idle with non-positive interval")
	}
	waitFor(t, "zero live timers", func() bool {
		return scheduler.liveTimers.Load() == 0
	})
}

func TestTeardownIsIdempotent(t *testing.T) {
	scheduler := newTestScheduler(&countingSink{})
	scheduler.Configure(true, 10)

	scheduler.Teardown()
	scheduler.Teardown()

	if scheduler.IsArmed() {
		t.Fatal("expected scheduler idle after teardown")
	}
	waitFor(t, "zero live timers", func() bool {
		return scheduler.liveTimers.Load() == 0
	})
}
