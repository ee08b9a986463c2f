package api

import (
	"bytes"
	"encoding/csv"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hydraflow/hydraflow/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	userID, ok := requiredParam(c, "userId")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing user id")
	}

	logs, err := handler.logs.ListByUser(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch water logs")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range services.BuildExportRows(logs, handler.location) {
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="hydraflow-export.csv"`)
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	userID, ok := requiredParam(c, "userId")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing user id")
	}

	settings, _, err := handler.settings.Load(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch user settings")
	}

	logs, err := handler.logs.ListByUser(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch water logs")
	}

	now := time.Now().In(handler.location)
	summary, err := services.BuildExportSummary(logs, settings.DailyGoal, now, services.DefaultRollupDays, handler.location)
	if errors.Is(err, services.ErrInvalidGoal) {
		return apiError(c, fiber.StatusUnprocessableEntity, "stored daily goal must be positive")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export summary")
	}
	return c.JSON(summary)
}
