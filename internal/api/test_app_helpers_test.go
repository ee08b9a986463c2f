package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hydraflow/hydraflow/internal/db"
	"github.com/hydraflow/hydraflow/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, *services.ReminderService) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "hydraflow-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	reminders := services.NewReminderService(repos.Settings, nil)
	t.Cleanup(reminders.TeardownAll)

	handler := NewHandler(repos, reminders, services.NewAdviceService(""), time.UTC)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, reminders
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var request *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		request = httptest.NewRequest(method, path, bytes.NewReader(body))
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	} else {
		request = httptest.NewRequest(method, path, nil)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
