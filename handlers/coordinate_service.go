package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"p9e.in/landreg/geo"
	"p9e.in/landreg/models"
)

// ParcelLookup answers whether a live land record exists.
type ParcelLookup interface {
	LandRecordExists(id uint) (bool, error)
}

// RingStore persists boundary rings. ReplaceRing must retire the old ring
// and insert the new one as a single atomic unit: a failure mid-way leaves
// the prior ring in place.
type RingStore interface {
	ReplaceRing(landRecordID uint, points []models.GeoPoint) ([]models.GeoPoint, error)
	RingByLandRecord(landRecordID uint) ([]models.GeoPoint, error)
}

// PointInput is one submitted boundary vertex. Easting and northing are
// pointers so a missing field is distinguishable from zero.
type PointInput struct {
	Easting     *float64 `json:"easting"`
	Northing    *float64 `json:"northing"`
	Label       *string  `json:"label,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// RingResult is the polygon summary returned by both the write and read
// paths. Area, perimeter and center are always recomputed from the stored
// points, never cached.
type RingResult struct {
	Coordinates []models.GeoPoint `json:"coordinates"`
	Polygon     [][2]float64      `json:"polygon"`
	Center      geo.Center        `json:"center"`
	AreaM2      float64           `json:"area_m2"`
	PerimeterM  float64           `json:"perimeter_m"`
}

// CoordinateService orchestrates boundary validation, projection and
// whole-ring replacement for a parcel.
type CoordinateService struct {
	parcels ParcelLookup
	rings   RingStore
}

func NewCoordinateService(parcels ParcelLookup, rings RingStore) *CoordinateService {
	return &CoordinateService{parcels: parcels, rings: rings}
}

// NewGormCoordinateService wires the service to the database-backed stores.
func NewGormCoordinateService(db *gorm.DB) *CoordinateService {
	return NewCoordinateService(gormParcelLookup{db: db}, gormRingStore{db: db})
}

// ReplaceRing validates the submitted ring, converts each point to WGS84,
// atomically swaps the parcel's stored ring for the new one and returns the
// recomputed polygon summary. Points keep their submission order: the point
// at position i is stored with sequence i.
func (s *CoordinateService) ReplaceRing(landRecordID uint, points []PointInput) (*RingResult, error) {
	if landRecordID == 0 {
		return nil, fmt.Errorf("%w: land record id is required", ErrInvalidInput)
	}
	if len(points) < geo.MinVertices {
		return nil, fmt.Errorf("%w: at least %d points are required to form a boundary polygon",
			ErrInvalidInput, geo.MinVertices)
	}

	exists, err := s.parcels.LandRecordExists(landRecordID)
	if err != nil {
		return nil, fmt.Errorf("look up land record %d: %w", landRecordID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrLandRecordNotFound, landRecordID)
	}

	rows := make([]models.GeoPoint, len(points))
	for i, p := range points {
		if p.Easting == nil || p.Northing == nil {
			return nil, fmt.Errorf("%w: point %d is missing a numeric easting or northing",
				ErrInvalidInput, i+1)
		}
		lng, lat, err := geo.Project(*p.Easting, *p.Northing)
		if err != nil {
			if errors.Is(err, geo.ErrInvalidCoordinate) {
				return nil, fmt.Errorf("%w: point %d has a non-numeric easting or northing",
					ErrInvalidInput, i+1)
			}
			return nil, fmt.Errorf("project point %d: %w", i+1, err)
		}

		label := strconv.Itoa(i + 1)
		if p.Label != nil && *p.Label != "" {
			label = *p.Label
		}
		rows[i] = models.GeoPoint{
			LandRecordID: landRecordID,
			Easting:      *p.Easting,
			Northing:     *p.Northing,
			Longitude:    lng,
			Latitude:     lat,
			Sequence:     i,
			Label:        label,
			Description:  p.Description,
		}
	}

	saved, err := s.rings.ReplaceRing(landRecordID, rows)
	if err != nil {
		return nil, fmt.Errorf("replace boundary ring for land record %d: %w", landRecordID, err)
	}
	return buildRingResult(saved)
}

// GetRing loads the parcel's stored ring in sequence order and recomputes
// the summary. A parcel with no stored ring returns (nil, nil) so callers
// can tell "no boundary yet" apart from an unknown parcel.
func (s *CoordinateService) GetRing(landRecordID uint) (*RingResult, error) {
	if landRecordID == 0 {
		return nil, fmt.Errorf("%w: land record id is required", ErrInvalidInput)
	}

	exists, err := s.parcels.LandRecordExists(landRecordID)
	if err != nil {
		return nil, fmt.Errorf("look up land record %d: %w", landRecordID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrLandRecordNotFound, landRecordID)
	}

	points, err := s.rings.RingByLandRecord(landRecordID)
	if err != nil {
		return nil, fmt.Errorf("load boundary ring for land record %d: %w", landRecordID, err)
	}
	if len(points) == 0 {
		return nil, nil
	}
	if len(points) < geo.MinVertices {
		// The write path refuses short rings, so this is table corruption.
		return nil, fmt.Errorf("%w: land record %d has only %d stored points",
			ErrCorruptBoundary, landRecordID, len(points))
	}
	return buildRingResult(points)
}

func buildRingResult(points []models.GeoPoint) (*RingResult, error) {
	ring := make([]geo.Vertex, len(points))
	for i, p := range points {
		ring[i] = geo.Vertex{
			Easting:   p.Easting,
			Northing:  p.Northing,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		}
	}
	summary, err := geo.Summarize(ring)
	if err != nil {
		return nil, err
	}
	return &RingResult{
		Coordinates: points,
		Polygon:     summary.Polygon,
		Center:      summary.Center,
		AreaM2:      summary.AreaM2,
		PerimeterM:  summary.PerimeterM,
	}, nil
}

type gormParcelLookup struct {
	db *gorm.DB
}

func (g gormParcelLookup) LandRecordExists(id uint) (bool, error) {
	var count int64
	err := g.db.Model(&models.LandRecord{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

type gormRingStore struct {
	db *gorm.DB
}

// ReplaceRing retires the old ring and inserts the new one in a single
// transaction, so a reader never observes a half-replaced boundary and any
// failure rolls back to the prior ring.
func (g gormRingStore) ReplaceRing(landRecordID uint, points []models.GeoPoint) ([]models.GeoPoint, error) {
	err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("land_record_id = ?", landRecordID).Delete(&models.GeoPoint{}).Error; err != nil {
			return err
		}
		return tx.Create(&points).Error
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (g gormRingStore) RingByLandRecord(landRecordID uint) ([]models.GeoPoint, error) {
	var points []models.GeoPoint
	err := g.db.Where("land_record_id = ?", landRecordID).Order("sequence asc").Find(&points).Error
	return points, err
}
