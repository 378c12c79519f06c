package ledger

import (
	"Spendwise-Backend/domain"
	"context"
	"time"
)

const recentEntriesLimit = 20

type (
	LedgerService interface {
		GetSummary(ctx context.Context, userID string) (domain.LedgerSummaryResponse, error)
	}

	ledgerService struct {
		ledgerRepository LedgerRepository
	}
)

func NewLedgerService(ledgerRepository LedgerRepository) LedgerService {
	return &ledgerService{ledgerRepository: ledgerRepository}
}

// GetSummary aggregates per-category spending for the current month and the
// most recent entries, mirroring the accounting dashboard.
func (s *ledgerService) GetSummary(ctx context.Context, userID string) (domain.LedgerSummaryResponse, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	categoryTotals, err := s.ledgerRepository.GetCategoryTotalsSince(ctx, userID, startOfMonth)
	if err != nil {
		return domain.LedgerSummaryResponse{}, err
	}

	entries, err := s.ledgerRepository.GetRecentEntries(ctx, userID, recentEntriesLimit)
	if err != nil {
		return domain.LedgerSummaryResponse{}, err
	}

	recent := make([]domain.LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		recent = append(recent, domain.LedgerEntryResponse{
			ID:          entry.ID.String(),
			Date:        entry.Date,
			Category:    entry.Category,
			Amount:      entry.Amount,
			Description: entry.Description,
			ReceiptID:   entry.ReceiptID.String(),
		})
	}

	return domain.LedgerSummaryResponse{
		CategoryTotals: categoryTotals,
		RecentEntries:  recent,
	}, nil
}
