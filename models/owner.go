package models

import (
	"time"

	"gorm.io/gorm"
)

// Owner is a registered holder of a parcel. Parcels can have several owners
// with fractional shares.
type Owner struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	LandRecordID    uint           `gorm:"not null;index" json:"landRecordId"`
	LandRecord      *LandRecord    `gorm:"foreignKey:LandRecordID" json:"-"`
	FullName        string         `gorm:"size:150;not null" json:"fullName"`
	NationalID      *string        `gorm:"column:national_id;size:30" json:"nationalId,omitempty"`
	Phone           *string        `gorm:"size:15" json:"phone,omitempty"`
	SharePercent    float64        `gorm:"not null;default:100" json:"sharePercent"`
	AcquisitionType string         `gorm:"size:50;not null" json:"acquisitionType"` // grant, inheritance, transfer, ...
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
