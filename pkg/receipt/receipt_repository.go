package receipt

import (
	"Spendwise-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ReceiptRepository interface {
		CreateAdvisoryLog(ctx context.Context, advisoryLog *entities.AdvisoryLog) error
		CreateReceipt(ctx context.Context, receipt *entities.Receipt) error
		CreateLedgerEntries(ctx context.Context, entries []*entities.LedgerEntry) error
		GetReceiptsByUser(ctx context.Context, userID string) ([]*entities.Receipt, error)
		GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error)
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateAdvisoryLog(ctx context.Context, advisoryLog *entities.AdvisoryLog) error {
	return r.db.WithContext(ctx).Create(advisoryLog).Error
}

func (r *receiptRepository) CreateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) CreateLedgerEntries(ctx context.Context, entries []*entities.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(entries).Error
}

func (r *receiptRepository) GetReceiptsByUser(ctx context.Context, userID string) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error) {
	var receipt entities.Receipt
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("id = ?", id).
		First(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}
