package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"p9e.in/landreg/config"
)

func parseLandRecordID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: land record id must be a positive number, got %q", ErrInvalidInput, raw)
	}
	return uint(id), nil
}

// SaveLandCoordinates replaces a parcel's boundary ring with the submitted
// points and returns the computed polygon summary.
func SaveLandCoordinates(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var body struct {
		Points []PointInput `json:"points"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "request body must be JSON with a points array")
		return
	}

	service := NewGormCoordinateService(config.DB)
	result, err := service.ReplaceRing(id, body.Points)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondData(w, http.StatusCreated, result)
}

// GetLandCoordinates returns the parcel's stored ring with the summary
// recomputed fresh. A parcel without a boundary yields a 404 distinct from
// the unknown-parcel case.
func GetLandCoordinates(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	service := NewGormCoordinateService(config.DB)
	result, err := service.GetRing(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if result == nil {
		respondError(w, http.StatusNotFound, "no coordinates found for this land record")
		return
	}
	respondData(w, http.StatusOK, result)
}

// GetLandCoordinatesGeoJSON serves the boundary as a GeoJSON Feature for
// map clients. GeoJSON wants [lng, lat] order and a closed ring.
func GetLandCoordinatesGeoJSON(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	service := NewGormCoordinateService(config.DB)
	result, err := service.GetRing(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if result == nil {
		respondError(w, http.StatusNotFound, "no coordinates found for this land record")
		return
	}

	ring := make(orb.Ring, 0, len(result.Polygon)+1)
	for _, p := range result.Polygon {
		ring = append(ring, orb.Point{p[1], p[0]})
	}
	ring = append(ring, ring[0])

	feature := geojson.NewFeature(orb.Polygon{ring})
	feature.Properties["land_record_id"] = id
	feature.Properties["area_m2"] = result.AreaM2
	feature.Properties["perimeter_m"] = result.PerimeterM
	feature.Properties["center"] = result.Center

	body, err := feature.MarshalJSON()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
