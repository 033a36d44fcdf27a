package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"p9e.in/landreg/config"
	"p9e.in/landreg/models"
)

// Ownership transfer records. Fee assessment happens in the finance system;
// this registry only tracks who transferred what to whom and when it was
// approved.

func GetAllTransfers(w http.ResponseWriter, r *http.Request) {
	params, err := models.ParseListParams(r, "status", "land_record_id", "transfer_type")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	service := models.NewListService(config.DB, models.OwnershipTransfer{}, "status", "reference_no")
	var transfers []models.OwnershipTransfer
	page, err := service.GetPage(params, &transfers, "reference_no", "from_owner", "to_owner")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, page)
}

func CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var transfer models.OwnershipTransfer
	if err := json.NewDecoder(r.Body).Decode(&transfer); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if transfer.LandRecordID == 0 || transfer.FromOwner == "" || transfer.ToOwner == "" ||
		transfer.TransferType == "" || transfer.ReferenceNo == "" {
		respondError(w, http.StatusBadRequest,
			"landRecordId, fromOwner, toOwner, transferType and referenceNo are required")
		return
	}

	var record models.LandRecord
	if err := config.DB.First(&record, "id = ?", transfer.LandRecordID).Error; err != nil {
		respondError(w, http.StatusNotFound, "land record not found")
		return
	}

	transfer.Status = models.TransferStatusPending
	transfer.ApprovedAt = nil
	if err := config.DB.Create(&transfer).Error; err != nil {
		respondError(w, http.StatusConflict, "a transfer with that reference number already exists")
		return
	}
	respondData(w, http.StatusCreated, transfer)
}

func GetTransfer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var transfer models.OwnershipTransfer
	if err := config.DB.Preload("LandRecord").First(&transfer, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "transfer not found")
		return
	}
	respondData(w, http.StatusOK, transfer)
}

// ApproveTransfer moves a pending transfer to approved and stamps the time.
func ApproveTransfer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var transfer models.OwnershipTransfer
	if err := config.DB.First(&transfer, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "transfer not found")
		return
	}
	if transfer.Status != models.TransferStatusPending {
		respondError(w, http.StatusConflict, "only pending transfers can be approved")
		return
	}
	now := time.Now()
	transfer.Status = models.TransferStatusApproved
	transfer.ApprovedAt = &now
	if err := config.DB.Save(&transfer).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, transfer)
}

func RejectTransfer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var transfer models.OwnershipTransfer
	if err := config.DB.First(&transfer, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "transfer not found")
		return
	}
	if transfer.Status != models.TransferStatusPending {
		respondError(w, http.StatusConflict, "only pending transfers can be rejected")
		return
	}
	transfer.Status = models.TransferStatusRejected
	if err := config.DB.Save(&transfer).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, transfer)
}
