package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is the shared record base. IDs are store-generated uuid strings,
// timestamps are stamped at the store boundary so ordering by time is
// monotonic regardless of caller clock skew.
type Model struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
