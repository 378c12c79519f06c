package advisory

import (
	"Spendwise-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AdvisoryRepository interface {
		GetAdvisoryLogsByUser(ctx context.Context, userID string) ([]*entities.AdvisoryLog, error)
	}

	advisoryRepository struct {
		db *gorm.DB
	}
)

func NewAdvisoryRepository(db *gorm.DB) AdvisoryRepository {
	return &advisoryRepository{db: db}
}

func (r *advisoryRepository) GetAdvisoryLogsByUser(ctx context.Context, userID string) ([]*entities.AdvisoryLog, error) {
	var logs []*entities.AdvisoryLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
