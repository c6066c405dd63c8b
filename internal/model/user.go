package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role tags a user with a capability level.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleSuperUser Role = "superUser"
)

// ValidRoles lists every role accepted in inputs.
var ValidRoles = []Role{RoleUser, RoleAdmin, RoleSuperUser}

// IsValid reports whether r is a known role tag.
func (r Role) IsValid() bool {
	for _, valid := range ValidRoles {
		if r == valid {
			return true
		}
	}
	return false
}

// Roles is a set of role tags persisted as a JSON array column.
type Roles []Role

// Value implements driver.Valuer.
func (r Roles) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner.
func (r *Roles) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported roles column type %T", src)
	}
}

// User represents an account able to authenticate and own resources.
type User struct {
	ID              uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	FullName        string     `json:"full_name" gorm:"size:255;not null"`
	Email           string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash    string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Roles           Roles      `json:"roles" gorm:"type:json;not null"`
	IsActive        bool       `json:"is_active" gorm:"default:true;index"`
	LastUpdatedByID *uuid.UUID `json:"last_updated_by_id,omitempty" gorm:"type:char(36)"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relations
	LastUpdatedBy *User `json:"-" gorm:"foreignKey:LastUpdatedByID"`
}

// BeforeCreate sets UUID and the default role before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if len(u.Roles) == 0 {
		u.Roles = Roles{RoleUser}
	}
	return nil
}

// Public returns a caller-safe projection of the user. The password digest
// is stripped from the copy rather than relying on JSON tags alone.
func (u *User) Public() *User {
	pub := *u
	pub.PasswordHash = ""
	return &pub
}
