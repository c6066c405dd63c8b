package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListItem links an item into a list with quantity and completion state.
// It carries no owner column: ownership is derived through the parent list.
type ListItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Quantity  int       `json:"quantity" gorm:"not null;default:0"`
	Completed bool      `json:"completed" gorm:"not null;default:false"`
	ListID    uuid.UUID `json:"list_id" gorm:"type:char(36);not null;index;uniqueIndex:idx_list_item"`
	ItemID    uuid.UUID `json:"item_id" gorm:"type:char(36);not null;index;uniqueIndex:idx_list_item"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	List List `json:"-" gorm:"foreignKey:ListID"`
	Item Item `json:"-" gorm:"foreignKey:ItemID"`
}

// BeforeCreate sets UUID before creating the record.
func (li *ListItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}
