package entities

import (
	"github.com/google/uuid"
)

type AdvisoryLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	InputText string    `gorm:"type:text" json:"input_text"`
	Advice    string    `gorm:"type:text" json:"advice"`
	Status    string    `json:"status"` // "completed", "failed"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
