package geo

import (
	"errors"
	"math"
	"testing"
)

// square returns a 100 m square in projected meters. Geographic fields are
// filled with small synthetic values so the centroid is checkable too.
func square() []Vertex {
	return []Vertex{
		{Easting: 0, Northing: 0, Latitude: 9.0, Longitude: 38.0},
		{Easting: 100, Northing: 0, Latitude: 9.0, Longitude: 38.001},
		{Easting: 100, Northing: 100, Latitude: 9.001, Longitude: 38.001},
		{Easting: 0, Northing: 100, Latitude: 9.001, Longitude: 38.0},
	}
}

func TestSummarizeSquare(t *testing.T) {
	s, err := Summarize(square())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.AreaM2 != 10000.00 {
		t.Errorf("area = %v, want 10000.00", s.AreaM2)
	}
	if s.PerimeterM != 400.00 {
		t.Errorf("perimeter = %v, want 400.00", s.PerimeterM)
	}
	if s.Center.Latitude != 9.0005 || s.Center.Longitude != 38.0005 {
		t.Errorf("center = %+v, want (9.0005, 38.0005)", s.Center)
	}
}

func TestSummarizePreservesRingOrder(t *testing.T) {
	ring := square()
	s, err := Summarize(ring)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(s.Polygon) != len(ring) {
		t.Fatalf("polygon has %d points, want %d", len(s.Polygon), len(ring))
	}
	for i, v := range ring {
		if s.Polygon[i][0] != v.Latitude || s.Polygon[i][1] != v.Longitude {
			t.Errorf("polygon[%d] = %v, want [%v %v]", i, s.Polygon[i], v.Latitude, v.Longitude)
		}
	}
}

func TestSummarizeStartVertexInvariance(t *testing.T) {
	ring := square()
	base, err := Summarize(ring)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	for shift := 1; shift < len(ring); shift++ {
		rotated := append(append([]Vertex{}, ring[shift:]...), ring[:shift]...)
		s, err := Summarize(rotated)
		if err != nil {
			t.Fatalf("Summarize shift %d: %v", shift, err)
		}
		if math.Abs(s.AreaM2-base.AreaM2) > 1e-6 {
			t.Errorf("shift %d: area = %v, want %v", shift, s.AreaM2, base.AreaM2)
		}
		if math.Abs(s.PerimeterM-base.PerimeterM) > 1e-6 {
			t.Errorf("shift %d: perimeter = %v, want %v", shift, s.PerimeterM, base.PerimeterM)
		}
	}
}

func TestSummarizeOrientationInvariance(t *testing.T) {
	ring := square()
	reversed := make([]Vertex, len(ring))
	for i, v := range ring {
		reversed[len(ring)-1-i] = v
	}

	cw, err := Summarize(reversed)
	if err != nil {
		t.Fatalf("Summarize reversed: %v", err)
	}
	ccw, err := Summarize(ring)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if cw.AreaM2 != ccw.AreaM2 {
		t.Errorf("clockwise area = %v, counter-clockwise = %v", cw.AreaM2, ccw.AreaM2)
	}
}

func TestSummarizeIrregularPolygon(t *testing.T) {
	// Right triangle with legs 300 and 400.
	ring := []Vertex{
		{Easting: 0, Northing: 0},
		{Easting: 300, Northing: 0},
		{Easting: 0, Northing: 400},
	}
	s, err := Summarize(ring)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.AreaM2 != 60000.00 {
		t.Errorf("area = %v, want 60000.00", s.AreaM2)
	}
	if s.PerimeterM != 1200.00 { // 300 + 400 + 500 hypotenuse
		t.Errorf("perimeter = %v, want 1200.00", s.PerimeterM)
	}
}

func TestSummarizeRejectsShortRings(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		ring := square()[:n]
		if _, err := Summarize(ring); !errors.Is(err, ErrInsufficientVertices) {
			t.Errorf("Summarize with %d points: err = %v, want ErrInsufficientVertices", n, err)
		}
	}
}
