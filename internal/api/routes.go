package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/health", handler.Health)

	waterLogs := api.Group("/water-logs")
	waterLogs.Get("/:userId/today", handler.GetTodayWaterLogs)
	waterLogs.Get("/:userId", handler.GetWaterLogs)
	waterLogs.Post("", handler.CreateWaterLog)
	waterLogs.Put("/:id", handler.UpdateWaterLog)
	waterLogs.Delete("/:id", handler.DeleteWaterLog)

	settings := api.Group("/user-settings")
	settings.Get("/:userId", handler.GetUserSettings)
	settings.Post("", handler.UpsertUserSettings)
	settings.Patch("/:userId", handler.PatchUserSettings)

	api.Post("/advice", handler.GetAdvice)

	stats := api.Group("/stats")
	stats.Get("/:userId/overview", handler.GetStatsOverview)

	reminders := api.Group("/reminders")
	reminders.Get("/:userId/status", handler.GetReminderStatus)

	export := api.Group("/export")
	export.Get("/:userId/csv", handler.ExportCSV)
	export.Get("/:userId/summary", handler.ExportSummary)
}
