package models

import (
	"time"

	"gorm.io/gorm"
)

// Region is the top level of the administrative hierarchy.
type Region struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Code      string         `gorm:"size:20;uniqueIndex;not null" json:"code"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Zones []Zone `gorm:"foreignKey:RegionID" json:"zones,omitempty"`
}

// Zone belongs to a region.
type Zone struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	RegionID  uint           `gorm:"not null;index" json:"regionId"`
	Region    *Region        `gorm:"foreignKey:RegionID" json:"region,omitempty"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Code      string         `gorm:"size:20;uniqueIndex;not null" json:"code"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Woredas []Woreda `gorm:"foreignKey:ZoneID" json:"woredas,omitempty"`
}

// Woreda is the district level; land records are registered per woreda.
type Woreda struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ZoneID    uint           `gorm:"not null;index" json:"zoneId"`
	Zone      *Zone          `gorm:"foreignKey:ZoneID" json:"zone,omitempty"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Code      string         `gorm:"size:20;uniqueIndex;not null" json:"code"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// OversightOffice is the land-administration office responsible for parcels
// within a woreda.
type OversightOffice struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	WoredaID  uint           `gorm:"not null;index" json:"woredaId"`
	Woreda    *Woreda        `gorm:"foreignKey:WoredaID" json:"woreda,omitempty"`
	Name      string         `gorm:"size:150;not null" json:"name"`
	Code      string         `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Phone     *string        `gorm:"size:15" json:"phone,omitempty"`
	Email     *string        `gorm:"size:100" json:"email,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
