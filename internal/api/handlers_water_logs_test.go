package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hydraflow/hydraflow/internal/models"
)

func createTestLog(t *testing.T, app *fiber.App, userID string, amount int, at time.Time) models.WaterLog {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/water-logs", map[string]any{
		"user_id":   userID,
		"amount":    amount,
		"timestamp": at.UnixMilli(),
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}

	entry := models.WaterLog{}
	decodeJSON(t, response, &entry)
	if entry.ID == "" {
		t.Fatal("expected server-assigned log id")
	}
	return entry
}

func TestCreateAndListWaterLogs(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	now := time.Now().UTC()

	createTestLog(t, app, "user-1", 250, now.Add(-2*time.Hour))
	createTestLog(t, app, "user-1", 500, now.Add(-1*time.Hour))
	createTestLog(t, app, "user-2", 330, now)

	response := doJSON(t, app, http.MethodGet, "/api/water-logs/user-1", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	var logs []models.WaterLog
	decodeJSON(t, response, &logs)
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs for user-1, got %d", len(logs))
	}
	// Repository returns newest first.
	if logs[0].Amount != 500 || logs[1].Amount != 250 {
		t.Fatalf("expected newest-first ordering, got %+v", logs)
	}
}

func TestCreateWaterLogValidation(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/water-logs", map[string]any{
		"amount": 250,
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing user_id, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodPost, "/api/water-logs", map[string]any{
		"user_id": "user-1",
		"amount":  -50,
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative amount, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestCreateWaterLogDefaultsTimestampToNow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	before := time.Now().UnixMilli()

	response := doJSON(t, app, http.MethodPost, "/api/water-logs", map[string]any{
		"user_id": "user-1",
		"amount":  250,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", response.StatusCode)
	}

	entry := models.WaterLog{}
	decodeJSON(t, response, &entry)
	if entry.Timestamp < before || entry.Timestamp > time.Now().UnixMilli() {
		t.Fatalf("expected timestamp defaulted to now, got %d", entry.Timestamp)
	}
}

func TestTodayWaterLogsExcludeYesterday(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	now := time.Now().UTC()

	todayEntry := createTestLog(t, app, "user-1", 250, now)
	createTestLog(t, app, "user-1", 500, now.AddDate(0, 0, -1))

	response := doJSON(t, app, http.MethodGet, "/api/water-logs/user-1/today", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	var logs []models.WaterLog
	decodeJSON(t, response, &logs)
	if len(logs) != 1 || logs[0].ID != todayEntry.ID {
		t.Fatalf("expected only today's entry, got %+v", logs)
	}
}

func TestUpdateWaterLog(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	now := time.Now().UTC()
	entry := createTestLog(t, app, "user-1", 250, now)

	backdated := now.AddDate(0, 0, -3)
	response := doJSON(t, app, http.MethodPut, "/api/water-logs/"+entry.ID, map[string]any{
		"amount":    400,
		"timestamp": backdated.UnixMilli(),
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	updated := models.WaterLog{}
	decodeJSON(t, response, &updated)
	if updated.Amount != 400 || updated.Timestamp != backdated.UnixMilli() {
		t.Fatalf("expected updated entry, got %+v", updated)
	}

	response = doJSON(t, app, http.MethodPut, "/api/water-logs/no-such-id", map[string]any{
		"amount":    400,
		"timestamp": backdated.UnixMilli(),
	})
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown log, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestDeleteWaterLog(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	entry := createTestLog(t, app, "user-1", 250, time.Now().UTC())

	response := doJSON(t, app, http.MethodDelete, "/api/water-logs/"+entry.ID, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodDelete, "/api/water-logs/"+entry.ID, nil)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", response.StatusCode)
	}
	response.Body.Close()
}
