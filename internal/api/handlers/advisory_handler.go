package handlers

import (
	"Spendwise-Backend/domain"
	"Spendwise-Backend/internal/api/presenters"
	"Spendwise-Backend/pkg/advisory"

	"github.com/gofiber/fiber/v2"
)

type (
	AdvisoryHandler interface {
		GetAdvisoryLogs(c *fiber.Ctx) error
	}

	advisoryHandler struct {
		advisoryLogService advisory.AdvisoryLogService
	}
)

func NewAdvisoryHandler(advisoryLogService advisory.AdvisoryLogService) AdvisoryHandler {
	return &advisoryHandler{advisoryLogService: advisoryLogService}
}

func (h *advisoryHandler) GetAdvisoryLogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.advisoryLogService.GetAdvisoryLogs(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAdvisoryLogs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"logs": res}, fiber.StatusOK, domain.MessageSuccessGetAdvisoryLogs)
}
