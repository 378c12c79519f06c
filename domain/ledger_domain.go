package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetLedgerSummary = "account summary retrieved successfully"
	MessageFailedGetLedgerSummary  = "failed to retrieve account summary"
)

type (
	CategoryTotal struct {
		Category    string          `json:"category"`
		TotalAmount decimal.Decimal `json:"total_amount"`
	}

	LedgerEntryResponse struct {
		ID          string          `json:"id"`
		Date        time.Time       `json:"date"`
		Category    string          `json:"category"`
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
		ReceiptID   string          `json:"receipt_id,omitempty"`
	}

	LedgerSummaryResponse struct {
		CategoryTotals []CategoryTotal       `json:"category_totals"`
		RecentEntries  []LedgerEntryResponse `json:"recent_entries"`
	}
)
