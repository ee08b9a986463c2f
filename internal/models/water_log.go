package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaterLog is a single intake event. Timestamp is the moment of consumption
// in epoch milliseconds, not the insertion time, and may be backdated by an
// edit. Amount is always positive; the service layer rejects anything else
// before it reaches the database.
type WaterLog struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Amount    int       `gorm:"not null" json:"amount"`
	Timestamp int64     `gorm:"not null;index" json:"timestamp"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate assigns a server-side ID when the client did not send one.
func (log *WaterLog) BeforeCreate(tx *gorm.DB) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	return nil
}
