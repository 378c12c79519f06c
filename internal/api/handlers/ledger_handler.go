package handlers

import (
	"Spendwise-Backend/domain"
	"Spendwise-Backend/internal/api/presenters"
	"Spendwise-Backend/pkg/ledger"

	"github.com/gofiber/fiber/v2"
)

type (
	LedgerHandler interface {
		GetSummary(c *fiber.Ctx) error
	}

	ledgerHandler struct {
		ledgerService ledger.LedgerService
	}
)

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

func (h *ledgerHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.ledgerService.GetSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLedgerSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLedgerSummary)
}
