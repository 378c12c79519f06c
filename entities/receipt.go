package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Receipt struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	ImageURL      string          `json:"image_url"`
	ExtractedText string          `gorm:"type:text" json:"extracted_text"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2)" json:"total"`

	User  *User          `gorm:"foreignKey:UserID"`
	Items []*ReceiptItem `gorm:"foreignKey:ReceiptID" json:"items"`
	Timestamp
}

type ReceiptItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceiptID uuid.UUID       `json:"receipt_id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	Category  string          `gorm:"default:Uncategorized" json:"category"`
	Position  int             `json:"position"` // source line order

	Timestamp
}
