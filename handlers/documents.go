package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"p9e.in/landreg/config"
	"p9e.in/landreg/middleware"
	"p9e.in/landreg/models"
)

const maxDocumentUploadBytes = 20 << 20 // 20 MiB

func GetLandRecordDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	var docs []models.LandDocument
	if err := config.DB.Where("land_record_id = ?", id).Order("id asc").Find(&docs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, docs)
}

func AddLandRecordDocument(w http.ResponseWriter, r *http.Request) {
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

	var doc models.LandDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if doc.Title == "" || doc.DocType == "" {
		respondError(w, http.StatusBadRequest, "title and docType are required")
		return
	}
	doc.LandRecordID = id
	if claims := middleware.GetClaims(r); claims != nil {
		if userID, err := claims.UserUUID(); err == nil {
			doc.UploadedBy = &userID
		}
	}
	if err := config.DB.Create(&doc).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusCreated, doc)
}

// UploadLandRecordDocumentFile attaches a scanned file to an existing
// document row. Files go to local disk under UPLOAD_DIR; the stored name is
// recorded on the document.
func UploadLandRecordDocumentFile(w http.ResponseWriter, r *http.Request) {
	recordID, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	docID, err := strconv.ParseUint(mux.Vars(r)["docId"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "document id must be a number")
		return
	}

	var doc models.LandDocument
	if err := config.DB.Where("id = ? AND land_record_id = ?", docID, recordID).First(&doc).Error; err != nil {
		respondError(w, http.StatusNotFound, "document not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	ext := filepath.Ext(header.Filename)
	safeName := fmt.Sprintf("lr%d_doc%d_%d%s", recordID, docID, time.Now().UnixNano(), strings.ToLower(ext))
	dst, err := os.Create(filepath.Join(uploadDir, safeName))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	doc.FileName = &safeName
	if err := config.DB.Save(&doc).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondData(w, http.StatusOK, doc)
}

func DeleteLandRecordDocument(w http.ResponseWriter, r *http.Request) {
	recordID, err := parseLandRecordID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	docID, err := strconv.ParseUint(mux.Vars(r)["docId"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "document id must be a number")
		return
	}
	result := config.DB.Where("land_record_id = ?", recordID).Delete(&models.LandDocument{}, docID)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "document not found")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "document deleted"})
}
