package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"p9e.in/landreg/geo"
)

// respondData writes the success envelope used across the API.
func respondData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// respondError writes the failure envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// respondServiceError maps a service error kind to an HTTP status. Anything
// unrecognized is logged and reported as a generic failure so internals
// never leak into responses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, geo.ErrInsufficientVertices),
		errors.Is(err, geo.ErrInvalidCoordinate):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrLandRecordNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrCorruptBoundary):
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("unexpected service error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
