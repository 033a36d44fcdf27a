package models

import (
	"time"

	"gorm.io/gorm"
)

// GeoPoint is one vertex of a parcel's boundary polygon. Easting and
// northing are the surveyed figures from the title deed and are the source
// of truth; longitude and latitude are derived from them on every write and
// never accepted from a caller. Sequence is the vertex's zero-based position
// in the ring and defines the polygon's edges.
//
// Points are never edited individually: a boundary correction retires the
// whole ring (soft delete) and inserts a fresh one. A partial unique index
// on (land_record_id, sequence) over live rows backs that invariant.
type GeoPoint struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	LandRecordID uint        `gorm:"not null;index:idx_geo_points_ring" json:"landRecordId"`
	LandRecord   *LandRecord `gorm:"foreignKey:LandRecordID" json:"-"`
	Easting      float64     `gorm:"not null" json:"easting"`
	Northing     float64     `gorm:"not null" json:"northing"`
	Longitude    float64     `gorm:"not null" json:"longitude"`
	Latitude     float64     `gorm:"not null" json:"latitude"`
	Sequence     int         `gorm:"not null;index:idx_geo_points_ring" json:"sequence"`
	Label        string      `gorm:"size:20" json:"label"`
	Description  *string     `gorm:"size:255" json:"description,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
