package domain

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessUploadReceipt = "receipt uploaded and processed successfully"
	MessageSuccessGetReceipts   = "receipts retrieved successfully"
	MessageSuccessGetAdvice     = "advice retrieved successfully"

	MessageFailedUploadReceipt = "failed to upload receipt"
	MessageFailedGetReceipts   = "failed to retrieve receipts"
	MessageFailedGetAdvice     = "failed to retrieve advice"
	MessageTotalNotFound       = "unable to detect total amount, please upload a valid receipt"

	ErrNoFileProvided           = errors.New("no file uploaded")
	ErrRecognitionUnavailable   = errors.New("text recognition service unavailable")
	ErrTotalNotFound            = errors.New("unable to detect total amount")
	ErrAdvisoryGenerationFailed = errors.New("advisory generation failed")
	ErrReceiptNotFound          = errors.New("receipt not found")
)

type (
	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt" form:"receipt" validate:"required"`
	}

	ParsedItem struct {
		Name     string          `json:"name"`
		Amount   decimal.Decimal `json:"amount"`
		Category string          `json:"category,omitempty"`
	}

	ReceiptItemResponse struct {
		Name     string          `json:"name"`
		Amount   decimal.Decimal `json:"amount"`
		Category string          `json:"category"`
	}

	ReceiptResponse struct {
		ID        string                `json:"id"`
		ImageURL  string                `json:"image_url"`
		Items     []ReceiptItemResponse `json:"items"`
		Total     decimal.Decimal       `json:"total"`
		CreatedAt time.Time             `json:"created_at"`
	}

	UploadReceiptResponse struct {
		Receipt  ReceiptResponse `json:"receipt"`
		Advisory AdvisoryResult  `json:"advisory"`
	}

	AdviceResponse struct {
		ReceiptID string `json:"receipt_id"`
		Advice    string `json:"advice"`
	}
)
