package api

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hydraflow/hydraflow/internal/services"
)

func (handler *Handler) GetWaterLogs(c *fiber.Ctx) error {
	userID, ok := requiredParam(c, "userId")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing user id")
	}

	logs, err := handler.logs.ListByUser(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch water logs")
	}
	if invalid := services.CountInvalidAmounts(logs); invalid > 0 {
		log.Printf("water-logs: user %s has %d non-positive amounts in store", userID, invalid)
	}
	return c.JSON(logs)
}

func (handler *Handler) GetTodayWaterLogs(c *fiber.Ctx) error {
	userID, ok := requiredParam(c, "userId")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing user id")
	}

	logs, err := handler.logs.ListToday(userID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch today's water logs")
	}
	return c.JSON(logs)
}

func (handler *Handler) CreateWaterLog(c *fiber.Ctx) error {
	payload := waterLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.UserID == "" {
		return apiError(c, fiber.StatusBadRequest, "missing required field: user_id")
	}
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().UnixMilli()
	}

	entry, err := handler.logs.Append(payload.UserID, payload.Amount, payload.Timestamp)
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return apiError(c, fiber.StatusBadRequest, "amount must be positive")
	case errors.Is(err, services.ErrInvalidTimestamp):
		return apiError(c, fiber.StatusBadRequest, "timestamp must be positive")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to create water log")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateWaterLog(c *fiber.Ctx) error {
	id, ok := requiredParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing log id")
	}

	payload := waterLogUpdatePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.logs.Update(id, payload.Amount, payload.Timestamp)
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return apiError(c, fiber.StatusBadRequest, "amount must be positive")
	case errors.Is(err, services.ErrInvalidTimestamp):
		return apiError(c, fiber.StatusBadRequest, "timestamp must be positive")
	case errors.Is(err, services.ErrLogNotFound):
		return apiError(c, fiber.StatusNotFound, "water log not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update water log")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteWaterLog(c *fiber.Ctx) error {
	id, ok := requiredParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "missing log id")
	}

	err := handler.logs.Delete(id)
	switch {
	case errors.Is(err, services.ErrLogNotFound):
		return apiError(c, fiber.StatusNotFound, "water log not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to delete water log")
	}
	return c.JSON(fiber.Map{"message": "Water log deleted successfully"})
}
