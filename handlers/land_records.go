package handlers

import (
	"encoding/json"
	"net/http"

	"p9e.in/landreg/config"
	"p9e.in/landreg/models"
)

// GetAllLandRecords lists the register with pagination; supports filtering
// by status, woreda, office and land use, plus a UPIN/kebele search.
func GetAllLandRecords(w http.ResponseWriter, r *http.Request) {
	params, err := models.ParseListParams(r, "status", "woreda_id", "oversight_office_id", "land_use", "tenure_type")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	service := models.NewListService(config.DB, models.LandRecord{}, "upin", "status", "woreda_id")
	var records []models.LandRecord
	page, err := service.GetPage(params, &records, "upin", "kebele")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, page)
}

func CreateLandRecord(w http.ResponseWriter, r *http.Request) {
	var record models.LandRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if record.UPIN == "" || record.WoredaID == 0 || record.OversightOfficeID == 0 ||
		record.Kebele == "" || record.LandUse == "" || record.TenureType == "" {
		respondError(w, http.StatusBadRequest,
			"upin, woredaId, oversightOfficeId, kebele, landUse and tenureType are required")
		return
	}
	if record.Status == "" {
		record.Status = models.LandRecordStatusDraft
	}
	if err := config.DB.Create(&record).Error; err != nil {
		respondError(w, http.StatusConflict, "a land record with that UPIN already exists")
		return
	}
	respondData(w, http.StatusCreated, record)
}

func GetLandRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	var record models.LandRecord
	result := config.DB.Preload("Woreda").Preload("OversightOffice").
		Preload("Owners").Preload("Documents").First(&record, "id = ?", id)
	if result.Error != nil {
		respondError(w, http.StatusNotFound, "land record not found")
		return
	}
	respondData(w, http.StatusOK, record)
}

func UpdateLandRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	var record models.LandRecord
	if err := config.DB.First(&record, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "land record not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	record.ID = id // the path wins over any id in the body
	if err := config.DB.Save(&record).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, record)
}

func DeleteLandRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	var record models.LandRecord
	if err := config.DB.First(&record, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "land record not found")
		return
	}
	if err := config.DB.Delete(&record).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "land record deleted"})
}
