package models

import (
	"time"

	"gorm.io/gorm"
)

// LandRecordStatus tracks where a parcel sits in its registration lifecycle.
type LandRecordStatus string

const (
	LandRecordStatusDraft     LandRecordStatus = "draft"
	LandRecordStatusActive    LandRecordStatus = "active"
	LandRecordStatusSuspended LandRecordStatus = "suspended"
	LandRecordStatusRetired   LandRecordStatus = "retired"
)

// LandRecord is one registered parcel. DeedAreaM2 is the legal figure copied
// from the paper title deed; the geometric area is always derived fresh from
// the parcel's boundary points and never stored here.
type LandRecord struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	UPIN              string           `gorm:"column:upin;size:30;uniqueIndex;not null" json:"upin"`
	WoredaID          uint             `gorm:"not null;index" json:"woredaId"`
	Woreda            *Woreda          `gorm:"foreignKey:WoredaID" json:"woreda,omitempty"`
	OversightOfficeID uint             `gorm:"not null;index" json:"oversightOfficeId"`
	OversightOffice   *OversightOffice `gorm:"foreignKey:OversightOfficeID" json:"oversightOffice,omitempty"`
	Kebele            string           `gorm:"size:50;not null" json:"kebele"`
	Block             *string          `gorm:"size:50" json:"block,omitempty"`
	HouseNumber       *string          `gorm:"size:30" json:"houseNumber,omitempty"`
	LandUse           string           `gorm:"size:50;not null" json:"landUse"`    // residential, commercial, agricultural, ...
	TenureType        string           `gorm:"size:50;not null" json:"tenureType"` // lease, permit, communal, ...
	DeedAreaM2        *float64         `gorm:"column:deed_area_m2" json:"deedAreaM2,omitempty"`
	AcquisitionYear   *int             `json:"acquisitionYear,omitempty"`
	Status            LandRecordStatus `gorm:"size:20;not null;default:draft;index" json:"status"`
	SurveyDate        *JSONTime        `gorm:"column:survey_date" json:"surveyDate,omitempty"`
	Remarks           *string          `gorm:"size:500" json:"remarks,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Owners    []Owner        `gorm:"foreignKey:LandRecordID" json:"owners,omitempty"`
	Documents []LandDocument `gorm:"foreignKey:LandRecordID" json:"documents,omitempty"`
}
