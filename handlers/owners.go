package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"p9e.in/landreg/config"
	"p9e.in/landreg/models"
)

// Owners are a nested resource under a land record.

func GetLandRecordOwners(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	var owners []models.Owner
	if err := config.DB.Where("land_record_id = ?", id).Order("id asc").Find(&owners).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, owners)
}

func AddLandRecordOwner(w http.ResponseWriter, r *http.Request) {
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

	var owner models.Owner
	if err := json.NewDecoder(r.Body).Decode(&owner); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if owner.FullName == "" || owner.AcquisitionType == "" {
		respondError(w, http.StatusBadRequest, "fullName and acquisitionType are required")
		return
	}
	if owner.SharePercent <= 0 || owner.SharePercent > 100 {
		respondError(w, http.StatusBadRequest, "sharePercent must be between 0 and 100")
		return
	}
	owner.LandRecordID = id
	if err := config.DB.Create(&owner).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusCreated, owner)
}

func UpdateLandRecordOwner(w http.ResponseWriter, r *http.Request) {
	recordID, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	ownerID, err := strconv.ParseUint(mux.Vars(r)["ownerId"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "owner id must be a number")
		return
	}

	var owner models.Owner
	if err := config.DB.Where("id = ? AND land_record_id = ?", ownerID, recordID).First(&owner).Error; err != nil {
		respondError(w, http.StatusNotFound, "owner not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&owner); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	owner.LandRecordID = recordID
	if err := config.DB.Save(&owner).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, owner)
}

func DeleteLandRecordOwner(w http.ResponseWriter, r *http.Request) {
	recordID, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	ownerID, err := strconv.ParseUint(mux.Vars(r)["ownerId"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "owner id must be a number")
		return
	}
	result := config.DB.Where("land_record_id = ?", recordID).Delete(&models.Owner{}, ownerID)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "owner not found")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "owner removed"})
}
