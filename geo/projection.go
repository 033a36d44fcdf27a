package geo

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/ctessum/geom/proj"
)

// The national cadastre surveys parcels in Adindan / UTM zone 37N on the
// Clarke 1866 ellipsoid. Title deeds record eastings and northings in this
// system, so it is a fixed constant here, not configuration.
const adindanUTM37N = "+proj=utm +zone=37 +ellps=clrk66 +towgs84=-166,-15,204,0,0,0,0 +units=m +no_defs"

const wgs84 = "+proj=longlat +datum=WGS84 +no_defs"

// ErrInvalidCoordinate is returned when an easting or northing is not a
// finite number.
var ErrInvalidCoordinate = errors.New("easting and northing must be finite numbers")

var (
	transformOnce sync.Once
	transform     proj.Transformer
	transformErr  error
)

// adindanToWGS84 builds the forward transform once and reuses it. The
// returned Transformer is a pure function and safe for concurrent use.
func adindanToWGS84() (proj.Transformer, error) {
	transformOnce.Do(func() {
		src, err := proj.Parse(adindanUTM37N)
		if err != nil {
			transformErr = fmt.Errorf("parse source reference system: %w", err)
			return
		}
		dst, err := proj.Parse(wgs84)
		if err != nil {
			transformErr = fmt.Errorf("parse WGS84 reference system: %w", err)
			return
		}
		transform, transformErr = src.NewTransform(dst)
	})
	return transform, transformErr
}

// Project converts one surveyed (easting, northing) pair to WGS84
// (longitude, latitude) degrees, rounded to 8 decimal places.
func Project(easting, northing float64) (lng, lat float64, err error) {
	if !isFinite(easting) || !isFinite(northing) {
		return 0, 0, ErrInvalidCoordinate
	}
	t, err := adindanToWGS84()
	if err != nil {
		return 0, 0, err
	}
	lng, lat, err = t(easting, northing)
	if err != nil {
		return 0, 0, fmt.Errorf("transform (%v, %v): %w", easting, northing, err)
	}
	return Round8(lng), Round8(lat), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round8 rounds to 8 decimal places, sub-millimeter on the ground.
func Round8(v float64) float64 { return math.Round(v*1e8) / 1e8 }

// Round2 rounds to 2 decimal places, used for areas and lengths in meters.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }
