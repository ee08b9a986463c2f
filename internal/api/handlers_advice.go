package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetAdvice(c *fiber.Ctx) error {
	payload := advicePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.CurrentAmount == nil || payload.DailyGoal == nil {
		return apiError(c, fiber.StatusBadRequest, "missing or invalid parameters: current_amount, daily_goal")
	}

	advice := handler.advice.GetAdvice(c.Context(), *payload.CurrentAmount, *payload.DailyGoal)
	return c.JSON(fiber.Map{"advice": advice})
}
