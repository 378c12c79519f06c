package ledger

import (
	"Spendwise-Backend/domain"
	"Spendwise-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	LedgerRepository interface {
		GetCategoryTotalsSince(ctx context.Context, userID string, since time.Time) ([]domain.CategoryTotal, error)
		GetRecentEntries(ctx context.Context, userID string, limit int) ([]*entities.LedgerEntry, error)
	}

	ledgerRepository struct {
		db *gorm.DB
	}
)

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) GetCategoryTotalsSince(ctx context.Context, userID string, since time.Time) ([]domain.CategoryTotal, error) {
	var totals []domain.CategoryTotal
	if err := r.db.WithContext(ctx).
		Model(&entities.LedgerEntry{}).
		Select("category, SUM(amount) as total_amount").
		Where("user_id = ? AND date >= ?", userID, since).
		Group("category").
		Order("total_amount desc").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *ledgerRepository) GetRecentEntries(ctx context.Context, userID string, limit int) ([]*entities.LedgerEntry, error) {
	var entries []*entities.LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
