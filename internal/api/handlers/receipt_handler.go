package handlers

import (
	"Spendwise-Backend/domain"
	"Spendwise-Backend/internal/api/presenters"
	"Spendwise-Backend/pkg/receipt"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiptHandler interface {
		UploadReceipt(c *fiber.Ctx) error
		GetReceipts(c *fiber.Ctx) error
		GetAdvice(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
	}
}

func (h *receiptHandler) UploadReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadReceiptRequest)

	// Missing file is a client error, reported before anything else runs.
	file, err := c.FormFile("receipt")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, domain.ErrNoFileProvided)
	}
	req.ReceiptImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	res, err := h.receiptService.UploadReceipt(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFileProvided), errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
		case errors.Is(err, domain.ErrTotalNotFound):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageTotalNotFound, err)
		case errors.Is(err, domain.ErrRecognitionUnavailable):
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedUploadReceipt, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadReceipt, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadReceipt)
}

func (h *receiptHandler) GetReceipts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.receiptService.GetReceipts(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"receipts": res}, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) GetAdvice(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	receiptID := c.Params("id")

	res, err := h.receiptService.GetAdvice(c.Context(), receiptID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) || errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetAdvice, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAdvice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAdvice)
}
