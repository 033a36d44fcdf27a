package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an office operator. Authorization stays coarse: a single role
// string carried in the JWT, checked by the transport layer.
type User struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string           `gorm:"size:100;not null" json:"name"`
	Email             string           `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone             string           `gorm:"size:15;uniqueIndex;not null" json:"phone"`
	PasswordHash      string           `gorm:"size:255;not null" json:"-"`
	Role              string           `gorm:"size:50;not null;default:operator" json:"role"` // admin, registrar, surveyor, operator
	OversightOfficeID *uint            `json:"oversightOfficeId,omitempty"`
	OversightOffice   *OversightOffice `gorm:"foreignKey:OversightOfficeID" json:"oversightOffice,omitempty"`
	IsActive          bool             `gorm:"default:true" json:"isActive"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
