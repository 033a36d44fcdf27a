package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/landreg/config"
	"p9e.in/landreg/models"
)

// Reference-data CRUD for the administrative hierarchy. These tables change
// rarely and only through admin tooling, so the handlers stay plain.

func GetAllRegions(w http.ResponseWriter, r *http.Request) {
	var regions []models.Region
	if err := config.DB.Order("name asc").Find(&regions).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, regions)
}

func CreateRegion(w http.ResponseWriter, r *http.Request) {
	var region models.Region
	if err := json.NewDecoder(r.Body).Decode(&region); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if region.Name == "" || region.Code == "" {
		respondError(w, http.StatusBadRequest, "name and code are required")
		return
	}
	if err := config.DB.Create(&region).Error; err != nil {
		respondError(w, http.StatusConflict, "a region with that code already exists")
		return
	}
	respondData(w, http.StatusCreated, region)
}

func GetRegion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var region models.Region
	if err := config.DB.Preload("Zones").First(&region, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "region not found")
		return
	}
	respondData(w, http.StatusOK, region)
}

func UpdateRegion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var region models.Region
	if err := config.DB.First(&region, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "region not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&region); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := config.DB.Save(&region).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, region)
}

func DeleteRegion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := config.DB.Delete(&models.Region{}, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "region deleted"})
}

func GetAllZones(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Order("name asc")
	if regionID := r.URL.Query().Get("region_id"); regionID != "" {
		query = query.Where("region_id = ?", regionID)
	}
	var zones []models.Zone
	if err := query.Find(&zones).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, zones)
}

func CreateZone(w http.ResponseWriter, r *http.Request) {
	var zone models.Zone
	if err := json.NewDecoder(r.Body).Decode(&zone); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if zone.Name == "" || zone.Code == "" || zone.RegionID == 0 {
		respondError(w, http.StatusBadRequest, "name, code and regionId are required")
		return
	}
	if err := config.DB.Create(&zone).Error; err != nil {
		respondError(w, http.StatusConflict, "a zone with that code already exists")
		return
	}
	respondData(w, http.StatusCreated, zone)
}

func GetZone(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var zone models.Zone
	if err := config.DB.Preload("Woredas").First(&zone, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "zone not found")
		return
	}
	respondData(w, http.StatusOK, zone)
}

func UpdateZone(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var zone models.Zone
	if err := config.DB.First(&zone, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "zone not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&zone); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := config.DB.Save(&zone).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, zone)
}

func DeleteZone(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := config.DB.Delete(&models.Zone{}, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "zone deleted"})
}

func GetAllWoredas(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Order("name asc")
	if zoneID := r.URL.Query().Get("zone_id"); zoneID != "" {
		query = query.Where("zone_id = ?", zoneID)
	}
	var woredas []models.Woreda
	if err := query.Find(&woredas).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, woredas)
}

func CreateWoreda(w http.ResponseWriter, r *http.Request) {
	var woreda models.Woreda
	if err := json.NewDecoder(r.Body).Decode(&woreda); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if woreda.Name == "" || woreda.Code == "" || woreda.ZoneID == 0 {
		respondError(w, http.StatusBadRequest, "name, code and zoneId are required")
		return
	}
	if err := config.DB.Create(&woreda).Error; err != nil {
		respondError(w, http.StatusConflict, "a woreda with that code already exists")
		return
	}
	respondData(w, http.StatusCreated, woreda)
}

func GetWoreda(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var woreda models.Woreda
	if err := config.DB.Preload("Zone").First(&woreda, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "woreda not found")
		return
	}
	respondData(w, http.StatusOK, woreda)
}

func UpdateWoreda(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var woreda models.Woreda
	if err := config.DB.First(&woreda, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "woreda not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&woreda); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := config.DB.Save(&woreda).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, woreda)
}

func DeleteWoreda(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := config.DB.Delete(&models.Woreda{}, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "woreda deleted"})
}

func GetAllOversightOffices(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Order("name asc")
	if woredaID := r.URL.Query().Get("woreda_id"); woredaID != "" {
		query = query.Where("woreda_id = ?", woredaID)
	}
	var offices []models.OversightOffice
	if err := query.Find(&offices).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, offices)
}

func CreateOversightOffice(w http.ResponseWriter, r *http.Request) {
	var office models.OversightOffice
	if err := json.NewDecoder(r.Body).Decode(&office); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if office.Name == "" || office.Code == "" || office.WoredaID == 0 {
		respondError(w, http.StatusBadRequest, "name, code and woredaId are required")
		return
	}
	if err := config.DB.Create(&office).Error; err != nil {
		respondError(w, http.StatusConflict, "an office with that code already exists")
		return
	}
	respondData(w, http.StatusCreated, office)
}

func GetOversightOffice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var office models.OversightOffice
	if err := config.DB.Preload("Woreda").First(&office, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "oversight office not found")
		return
	}
	respondData(w, http.StatusOK, office)
}

func UpdateOversightOffice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var office models.OversightOffice
	if err := config.DB.First(&office, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "oversight office not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&office); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := config.DB.Save(&office).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, office)
}

func DeleteOversightOffice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := config.DB.Delete(&models.OversightOffice{}, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "oversight office deleted"})
}
