package domain

import (
	"time"
)

const (
	AdvisoryStatusCompleted = "completed"
	AdvisoryStatusFailed    = "failed"
)

var (
	MessageSuccessGetAdvisoryLogs = "advisory logs retrieved successfully"
	MessageFailedGetAdvisoryLogs  = "failed to retrieve advisory logs"
)

type (
	AdvisoryResult struct {
		Advice               string `json:"advice"`
		SavingsTip           string `json:"savings_tip,omitempty"`
		InvestmentSuggestion string `json:"investment_suggestion,omitempty"`
		InputSummary         string `json:"input_summary,omitempty"`
	}

	AdvisoryLogResponse struct {
		ID        string    `json:"id"`
		InputText string    `json:"input_text"`
		Advice    string    `json:"advice"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
)
