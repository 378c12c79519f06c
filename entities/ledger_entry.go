package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LedgerEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Date        time.Time       `json:"date"`
	Category    string          `gorm:"default:Uncategorized" json:"category"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	Description string          `json:"description"`
	ReceiptID   uuid.UUID       `json:"receipt_id"` // lookup only, no cascade from receipts

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
