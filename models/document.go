package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LandDocument is the metadata row for a scanned deed, site plan, tax
// clearance or similar attachment on a parcel. The binary itself lives on
// disk under UPLOAD_DIR; only the stored file name is recorded here.
type LandDocument struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	LandRecordID uint           `gorm:"not null;index" json:"landRecordId"`
	LandRecord   *LandRecord    `gorm:"foreignKey:LandRecordID" json:"-"`
	Title        string         `gorm:"size:150;not null" json:"title"`
	DocType      string         `gorm:"size:50;not null" json:"docType"` // title_deed, site_plan, tax_clearance, ...
	ReferenceNo  *string        `gorm:"size:50" json:"referenceNo,omitempty"`
	FileName     *string        `gorm:"size:255" json:"fileName,omitempty"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	Attributes   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"attributes,omitempty"`
	UploadedBy   *uuid.UUID     `gorm:"type:uuid" json:"uploadedBy,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
