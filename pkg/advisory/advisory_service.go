package advisory

import (
	"Spendwise-Backend/domain"
	"Spendwise-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

type (
	// Generator wraps the external advisory capability: given recognized
	// receipt text, return free-form guidance. A deterministic mock is used
	// when no API endpoint is configured.
	Generator interface {
		GenerateAdvisory(ctx context.Context, extractedText string) (domain.AdvisoryResult, error)
	}

	advisoryService struct {
		apiURL     string
		apiKey     string
		model      string
		httpClient *http.Client
	}
)

func NewAdvisoryService() Generator {
	return &advisoryService{
		apiURL:     utils.GetConfig("ADVISORY_API_URL"),
		apiKey:     utils.GetConfig("ADVISORY_API_KEY"),
		model:      utils.GetConfig("ADVISORY_MODEL"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *advisoryService) GenerateAdvisory(ctx context.Context, extractedText string) (domain.AdvisoryResult, error) {
	if s.apiURL == "" {
		return mockAdvisoryResult(extractedText), nil
	}

	requestBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a personal finance consultant. Given the raw text of a purchase receipt, give short practical advice on spending and budgeting.",
			},
			{
				"role":    "user",
				"content": extractedText,
			},
		},
		"temperature": 0.2,
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.AdvisoryResult{}, domain.ErrAdvisoryGenerationFailed
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.AdvisoryResult{}, domain.ErrAdvisoryGenerationFailed
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Error calling advisory API: %v", err)
		return domain.AdvisoryResult{}, domain.ErrAdvisoryGenerationFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Printf("Advisory API error: %s - %s", resp.Status, string(bodyBytes))
		return domain.AdvisoryResult{}, domain.ErrAdvisoryGenerationFailed
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return domain.AdvisoryResult{}, domain.ErrAdvisoryGenerationFailed
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return domain.AdvisoryResult{}, domain.ErrAdvisoryGenerationFailed
	}

	return domain.AdvisoryResult{
		Advice:       completion.Choices[0].Message.Content,
		InputSummary: summarizeInput(extractedText),
	}, nil
}

func mockAdvisoryResult(extractedText string) domain.AdvisoryResult {
	return domain.AdvisoryResult{
		Advice:               "Based on your recent expenses, consider reducing dining out to save more.",
		SavingsTip:           "Try budgeting 20% less on discretionary spending next month.",
		InvestmentSuggestion: "Look into low-cost index funds to grow your savings steadily.",
		InputSummary:         summarizeInput(extractedText),
	}
}

func summarizeInput(extractedText string) string {
	text := strings.TrimSpace(extractedText)
	if text == "" {
		return "No text provided"
	}
	if len(text) > 100 {
		return text[:100] + "..."
	}
	return text
}
