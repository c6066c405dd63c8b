package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a user-owned catalog entry that lists can reference.
type Item struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null;index"`
	QuantityUnits string    `json:"quantity_units,omitempty" gorm:"size:50"` // g, ml, kg, units...
	OwnerID       uuid.UUID `json:"owner_id" gorm:"type:char(36);not null;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Owner User `json:"-" gorm:"foreignKey:OwnerID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
