package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"p9e.in/landreg/config"
	"p9e.in/landreg/models"
)

var registerExportHeader = []string{
	"UPIN", "Woreda", "Oversight Office", "Kebele", "Land Use", "Tenure Type",
	"Deed Area (m2)", "Status", "Registered At",
}

func loadRegisterForExport(r *http.Request) ([]models.LandRecord, error) {
	query := config.DB.Preload("Woreda").Preload("OversightOffice").Order("upin asc")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if woredaID := r.URL.Query().Get("woreda_id"); woredaID != "" {
		query = query.Where("woreda_id = ?", woredaID)
	}
	var records []models.LandRecord
	err := query.Find(&records).Error
	return records, err
}

func registerExportRow(rec models.LandRecord) []string {
	woreda, office := "", ""
	if rec.Woreda != nil {
		woreda = rec.Woreda.Name
	}
	if rec.OversightOffice != nil {
		office = rec.OversightOffice.Name
	}
	deedArea := ""
	if rec.DeedAreaM2 != nil {
		deedArea = strconv.FormatFloat(*rec.DeedAreaM2, 'f', 2, 64)
	}
	return []string{
		rec.UPIN, woreda, office, rec.Kebele, rec.LandUse, rec.TenureType,
		deedArea, string(rec.Status), rec.CreatedAt.Format("2006-01-02"),
	}
}

// ExportLandRecordsToExcel downloads the (optionally filtered) register as
// an .xlsx sheet.
func ExportLandRecordsToExcel(w http.ResponseWriter, r *http.Request) {
	records, err := loadRegisterForExport(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Land Register"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range registerExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row, rec := range records {
		for col, value := range registerExportRow(rec) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	filename := fmt.Sprintf("land_register_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// ExportLandRecordsToCSV is the CSV sibling of the Excel export.
func ExportLandRecordsToCSV(w http.ResponseWriter, r *http.Request) {
	records, err := loadRegisterForExport(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	writer.Write(registerExportHeader)
	for _, rec := range records {
		writer.Write(registerExportRow(rec))
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	filename := fmt.Sprintf("land_register_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}
