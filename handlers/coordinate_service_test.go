package handlers

import (
	"errors"
	"strings"
	"testing"

	"p9e.in/landreg/models"
)

// memoryParcels is an in-memory ParcelLookup for tests.
type memoryParcels struct {
	ids map[uint]bool
}

func (m memoryParcels) LandRecordExists(id uint) (bool, error) {
	return m.ids[id], nil
}

// memoryRings is an in-memory RingStore. failNext makes the next ReplaceRing
// fail before committing, mimicking a rolled-back transaction.
type memoryRings struct {
	rings    map[uint][]models.GeoPoint
	failNext bool
}

func newMemoryRings() *memoryRings {
	return &memoryRings{rings: map[uint][]models.GeoPoint{}}
}

func (m *memoryRings) ReplaceRing(landRecordID uint, points []models.GeoPoint) ([]models.GeoPoint, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("connection reset")
	}
	stored := make([]models.GeoPoint, len(points))
	copy(stored, points)
	m.rings[landRecordID] = stored
	return stored, nil
}

func (m *memoryRings) RingByLandRecord(landRecordID uint) ([]models.GeoPoint, error) {
	return m.rings[landRecordID], nil
}

func newTestService(parcelIDs ...uint) (*CoordinateService, *memoryRings) {
	ids := map[uint]bool{}
	for _, id := range parcelIDs {
		ids[id] = true
	}
	rings := newMemoryRings()
	return NewCoordinateService(memoryParcels{ids: ids}, rings), rings
}

func f(v float64) *float64 { return &v }

func squareInput() []PointInput {
	return []PointInput{
		{Easting: f(478000), Northing: f(1000000)},
		{Easting: f(478100), Northing: f(1000000)},
		{Easting: f(478100), Northing: f(1000100)},
		{Easting: f(478000), Northing: f(1000100)},
	}
}

func TestReplaceRingValidationOrder(t *testing.T) {
	service, _ := newTestService(7)

	t.Run("zero id", func(t *testing.T) {
		_, err := service.ReplaceRing(0, squareInput())
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("too few points beats parcel lookup", func(t *testing.T) {
		// Parcel 999 does not exist, but the short ring must be reported
		// first.
		_, err := service.ReplaceRing(999, squareInput()[:2])
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
		if !strings.Contains(err.Error(), "3") {
			t.Errorf("message %q does not name the minimum vertex count", err.Error())
		}
	})

	t.Run("unknown parcel", func(t *testing.T) {
		_, err := service.ReplaceRing(999, squareInput())
		if !errors.Is(err, ErrLandRecordNotFound) {
			t.Fatalf("err = %v, want ErrLandRecordNotFound", err)
		}
	})

	t.Run("missing coordinate names the point", func(t *testing.T) {
		points := squareInput()
		points[2].Northing = nil
		_, err := service.ReplaceRing(7, points)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
		if !strings.Contains(err.Error(), "point 3") {
			t.Errorf("message %q does not identify point 3", err.Error())
		}
	})
}

func TestReplaceRingAssignsSequenceAndLabels(t *testing.T) {
	service, _ := newTestService(7)

	points := squareInput()
	corner := "NE corner"
	points[1].Label = &corner

	result, err := service.ReplaceRing(7, points)
	if err != nil {
		t.Fatalf("ReplaceRing: %v", err)
	}
	if len(result.Coordinates) != 4 {
		t.Fatalf("got %d coordinates, want 4", len(result.Coordinates))
	}
	for i, p := range result.Coordinates {
		if p.Sequence != i {
			t.Errorf("coordinate %d has sequence %d", i, p.Sequence)
		}
		if p.Longitude == 0 || p.Latitude == 0 {
			t.Errorf("coordinate %d missing derived geographic values", i)
		}
	}
	if result.Coordinates[0].Label != "1" {
		t.Errorf("default label = %q, want \"1\"", result.Coordinates[0].Label)
	}
	if result.Coordinates[1].Label != "NE corner" {
		t.Errorf("explicit label = %q, want \"NE corner\"", result.Coordinates[1].Label)
	}
	if result.AreaM2 != 10000.00 {
		t.Errorf("area = %v, want 10000.00", result.AreaM2)
	}
	if result.PerimeterM != 400.00 {
		t.Errorf("perimeter = %v, want 400.00", result.PerimeterM)
	}
}

func TestRingRoundTrip(t *testing.T) {
	service, _ := newTestService(7)

	written, err := service.ReplaceRing(7, squareInput())
	if err != nil {
		t.Fatalf("ReplaceRing: %v", err)
	}
	read, err := service.GetRing(7)
	if err != nil {
		t.Fatalf("GetRing: %v", err)
	}
	if read == nil {
		t.Fatal("GetRing returned no data after a write")
	}
	if read.AreaM2 != written.AreaM2 || read.PerimeterM != written.PerimeterM {
		t.Errorf("read summary (%v, %v) differs from written (%v, %v)",
			read.AreaM2, read.PerimeterM, written.AreaM2, written.PerimeterM)
	}
	if read.Center != written.Center {
		t.Errorf("read center %+v differs from written %+v", read.Center, written.Center)
	}
	for i := range written.Coordinates {
		if read.Coordinates[i].Sequence != written.Coordinates[i].Sequence ||
			read.Coordinates[i].Easting != written.Coordinates[i].Easting {
			t.Errorf("point %d changed across the round trip", i)
		}
	}
}

func TestReplaceRingIsIdempotent(t *testing.T) {
	service, rings := newTestService(7)

	if _, err := service.ReplaceRing(7, squareInput()); err != nil {
		t.Fatalf("first ReplaceRing: %v", err)
	}
	if _, err := service.ReplaceRing(7, squareInput()); err != nil {
		t.Fatalf("second ReplaceRing: %v", err)
	}
	if n := len(rings.rings[7]); n != 4 {
		t.Errorf("stored ring has %d points after resubmission, want 4", n)
	}
}

func TestReplaceRingKeepsOldRingOnStoreFailure(t *testing.T) {
	service, rings := newTestService(7)

	if _, err := service.ReplaceRing(7, squareInput()); err != nil {
		t.Fatalf("ReplaceRing: %v", err)
	}
	rings.failNext = true

	bigger := append(squareInput(), PointInput{Easting: f(478050), Northing: f(1000150)})
	if _, err := service.ReplaceRing(7, bigger); err == nil {
		t.Fatal("expected store failure to surface")
	}

	read, err := service.GetRing(7)
	if err != nil {
		t.Fatalf("GetRing after failed replace: %v", err)
	}
	if read == nil || len(read.Coordinates) != 4 {
		t.Fatal("prior ring was not preserved after a failed replacement")
	}
}

func TestGetRingDistinguishesEmptyFromMissing(t *testing.T) {
	service, _ := newTestService(7)

	t.Run("unknown parcel", func(t *testing.T) {
		_, err := service.GetRing(999)
		if !errors.Is(err, ErrLandRecordNotFound) {
			t.Fatalf("err = %v, want ErrLandRecordNotFound", err)
		}
	})

	t.Run("parcel without boundary", func(t *testing.T) {
		result, err := service.GetRing(7)
		if err != nil {
			t.Fatalf("GetRing: %v", err)
		}
		if result != nil {
			t.Fatalf("expected no-data result, got %+v", result)
		}
	})
}

func TestGetRingFailsLoudlyOnCorruptRing(t *testing.T) {
	service, rings := newTestService(7)

	// Simulate a manual edit that left two live points behind.
	rings.rings[7] = []models.GeoPoint{
		{LandRecordID: 7, Easting: 478000, Northing: 1000000, Sequence: 0},
		{LandRecordID: 7, Easting: 478100, Northing: 1000000, Sequence: 1},
	}

	_, err := service.GetRing(7)
	if !errors.Is(err, ErrCorruptBoundary) {
		t.Fatalf("err = %v, want ErrCorruptBoundary", err)
	}
}
