package geo

import (
	"errors"
	"math"
	"testing"
)

func TestProjectDeterministic(t *testing.T) {
	lng1, lat1, err := Project(478000, 1000000)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	for i := 0; i < 10; i++ {
		lng, lat, err := Project(478000, 1000000)
		if err != nil {
			t.Fatalf("Project repeat %d: %v", i, err)
		}
		if lng != lng1 || lat != lat1 {
			t.Fatalf("repeat %d: got (%v, %v), first call gave (%v, %v)", i, lng, lat, lng1, lat1)
		}
	}
}

func TestProjectLandsInZone37(t *testing.T) {
	// An easting west of the 500 km central meridian in zone 37N, about a
	// degree of latitude north of 8°N. The transform must land near the
	// 39°E meridian in the northern hemisphere.
	lng, lat, err := Project(478000, 1000000)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if lng < 36 || lng > 42 {
		t.Errorf("longitude = %v, want within zone 37 (36..42)", lng)
	}
	if lat < 7 || lat > 11 {
		t.Errorf("latitude = %v, want roughly 9°N (7..11)", lat)
	}
	if lng >= 39 {
		t.Errorf("longitude = %v, want west of the 39°E central meridian", lng)
	}
}

func TestProjectRounding(t *testing.T) {
	lng, lat, err := Project(478123.456, 1001234.789)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	for _, v := range []float64{lng, lat} {
		if math.Round(v*1e8)/1e8 != v {
			t.Errorf("value %v not rounded to 8 decimal places", v)
		}
	}
}

func TestProjectRejectsNonFinite(t *testing.T) {
	cases := []struct {
		name     string
		easting  float64
		northing float64
	}{
		{"NaN easting", math.NaN(), 1000000},
		{"NaN northing", 478000, math.NaN()},
		{"positive infinity", math.Inf(1), 1000000},
		{"negative infinity", 478000, math.Inf(-1)},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Project(tt.easting, tt.northing); !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("err = %v, want ErrInvalidCoordinate", err)
			}
		})
	}
}
