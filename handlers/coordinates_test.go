package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func coordinateRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/land-records/{id}/coordinates", SaveLandCoordinates).Methods("POST")
	r.HandleFunc("/api/v1/land-records/{id}/coordinates", GetLandCoordinates).Methods("GET")
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, w.Body.String())
	}
	return body
}

func TestSaveLandCoordinatesRejectsBadID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		t.Run(id, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/land-records/"+id+"/coordinates",
				strings.NewReader(`{"points":[]}`))
			w := httptest.NewRecorder()
			coordinateRouter().ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			body := decodeEnvelope(t, w)
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
			if msg, _ := body["message"].(string); !strings.Contains(msg, "land record id") {
				t.Errorf("message %q does not explain the id problem", msg)
			}
		})
	}
}

func TestSaveLandCoordinatesRejectsBadBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/v1/land-records/7/coordinates",
		strings.NewReader(`{"points": "not an array"`))
	w := httptest.NewRecorder()
	coordinateRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeEnvelope(t, w); body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestGetLandCoordinatesRejectsBadID(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/land-records/not-a-number/coordinates", nil)
	w := httptest.NewRecorder()
	coordinateRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
