package geo

import (
	"errors"
	"math"
)

// MinVertices is the smallest ring that forms a polygon.
const MinVertices = 3

// ErrInsufficientVertices is returned when a ring has fewer than MinVertices
// points.
var ErrInsufficientVertices = errors.New("a boundary needs at least 3 points to form a polygon")

// Vertex is one boundary point carrying both the surveyed planar position
// and its derived geographic position.
type Vertex struct {
	Easting   float64
	Northing  float64
	Latitude  float64
	Longitude float64
}

// Center is a display centroid for map centering.
type Center struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Summary describes a closed parcel boundary. Polygon preserves the ring
// order exactly as submitted, as [lat, lng] pairs for map clients.
type Summary struct {
	AreaM2     float64      `json:"area_m2"`
	PerimeterM float64      `json:"perimeter_m"`
	Center     Center       `json:"center"`
	Polygon    [][2]float64 `json:"polygon"`
}

// Summarize computes the shoelace area, Euclidean perimeter and display
// center of an ordered ring. The last vertex implicitly connects back to the
// first. Area and perimeter are computed from the projected meters only;
// mixing in degree values would corrupt the area by orders of magnitude.
func Summarize(ring []Vertex) (*Summary, error) {
	if len(ring) < MinVertices {
		return nil, ErrInsufficientVertices
	}

	var cross, perimeter, sumLat, sumLng float64
	polygon := make([][2]float64, len(ring))
	for i, v := range ring {
		next := ring[(i+1)%len(ring)]
		cross += v.Easting*next.Northing - next.Easting*v.Northing
		perimeter += math.Hypot(next.Easting-v.Easting, next.Northing-v.Northing)
		sumLat += v.Latitude
		sumLng += v.Longitude
		polygon[i] = [2]float64{v.Latitude, v.Longitude}
	}

	n := float64(len(ring))
	return &Summary{
		AreaM2:     Round2(math.Abs(cross) / 2),
		PerimeterM: Round2(perimeter),
		Center: Center{
			Latitude:  Round8(sumLat / n),
			Longitude: Round8(sumLng / n),
		},
		Polygon: polygon,
	}, nil
}
