package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// List is a user-owned collection of item references.
type List struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	OwnerID   uuid.UUID `json:"owner_id" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Owner User `json:"-" gorm:"foreignKey:OwnerID"`
}

// BeforeCreate sets UUID before creating the record.
func (l *List) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
