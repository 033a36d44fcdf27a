package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/landreg/handlers"
	"p9e.in/landreg/middleware"
)

func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// Public routes (no authentication required)
	r.HandleFunc("/api/v1/register", handlers.Register).Methods("POST")
	r.HandleFunc("/api/v1/login", handlers.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// Protected API routes (require authentication)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/me", handlers.GetCurrentUser).Methods("GET")

	// Administrative hierarchy reference data
	api.HandleFunc("/regions", handlers.GetAllRegions).Methods("GET")
	api.Handle("/regions", middleware.RequireRole()(
		http.HandlerFunc(handlers.CreateRegion))).Methods("POST")
	api.HandleFunc("/regions/{id}", handlers.GetRegion).Methods("GET")
	api.Handle("/regions/{id}", middleware.RequireRole()(
		http.HandlerFunc(handlers.UpdateRegion))).Methods("PUT")
	api.Handle("/regions/{id}", middleware.RequireRole()(
		http.HandlerFunc(handlers.DeleteRegion))).Methods("DELETE")

	api.HandleFunc("/zones", handlers.GetAllZones).Methods("GET")
	api.Handle("/zones", middleware.RequireRole()(
		http.HandlerFunc(handlers.CreateZone))).Methods("POST")
	api.HandleFunc("/zones/{id}", handlers.GetZone).Methods("GET")
	api.Handle("/zones/{id}", middleware.RequireRole()(
		http.HandlerFunc(handlers.UpdateZone))).Methods("PUT")
	api.Handle("/zones/{id}", middleware.RequireRole()(
		http.HandlerFunc(handlers.DeleteZone))).Methods("DELETE")

	api.HandleFunc("/woredas", handlers.GetAllWoredas).Methods("GET")
	api.Handle("/woredas", middleware.RequireRole()(
		http.HandlerFunc(handlers.CreateWoreda))).Methods("POST")
	api.HandleFunc("/woredas/{id}", handlers.GetWoreda).Methods("GET")
	api.Handle("/woredas/{id}", middleware.RequireRole()(
		http.HandlerFunc(handlers.UpdateWoreda))).Methods("PUT")
	api.Handle("/woredas/{id}", middleware.RequireRole()(
		http.HandlerFunc(handlers.DeleteWoreda))).Methods("DELETE")

	api.HandleFunc("/oversight-offices", handlers.GetAllOversightOffices).Methods("GET")
	api.Handle("/oversight-offices", middleware.RequireRole()(
		http.HandlerFunc(handlers.CreateOversightOffice))).Methods("POST")
	api.HandleFunc("/oversight-offices/{id}", handlers.GetOversightOffice).Methods("GET")
	api.Handle("/oversight-offices/{id}", middleware.RequireRole()(
		http.HandlerFunc(handlers.UpdateOversightOffice))).Methods("PUT")
	api.Handle("/oversight-offices/{id}", middleware.RequireRole()(
		http.HandlerFunc(handlers.DeleteOversightOffice))).Methods("DELETE")

	// Land records
	api.HandleFunc("/land-records", handlers.GetAllLandRecords).Methods("GET")
	api.Handle("/land-records", middleware.RequireRole("registrar")(
		http.HandlerFunc(handlers.CreateLandRecord))).Methods("POST")
	api.HandleFunc("/land-records/export/excel", handlers.ExportLandRecordsToExcel).Methods("GET")
	api.HandleFunc("/land-records/export/csv", handlers.ExportLandRecordsToCSV).Methods("GET")
	api.HandleFunc("/land-records/{id}", handlers.GetLandRecord).Methods("GET")
	api.Handle("/land-records/{id}", middleware.RequireRole("registrar")(
		http.HandlerFunc(handlers.UpdateLandRecord))).Methods("PUT")
	api.Handle("/land-records/{id}", middleware.RequireRole("registrar")(
		http.HandlerFunc(handlers.DeleteLandRecord))).Methods("DELETE")

	// Parcel boundary coordinates
	api.Handle("/land-records/{id}/coordinates", middleware.RequireRole("registrar", "surveyor")(
		http.HandlerFunc(handlers.SaveLandCoordinates))).Methods("POST")
	api.HandleFunc("/land-records/{id}/coordinates", handlers.GetLandCoordinates).Methods("GET")
	api.HandleFunc("/land-records/{id}/coordinates/geojson", handlers.GetLandCoordinatesGeoJSON).Methods("GET")

	// Owners
	api.HandleFunc("/land-records/{id}/owners", handlers.GetLandRecordOwners).Methods("GET")
	api.Handle("/land-records/{id}/owners", middleware.RequireRole("registrar")(
		http.HandlerFunc(handlers.AddLandRecordOwner))).Methods("POST")
	api.Handle("/land-records/{id}/owners/{ownerId}", middleware.RequireRole("registrar")(
		http.HandlerFunc(handlers.UpdateLandRecordOwner))).Methods("PUT")
	api.Handle("/land-records/{id}/owners/{ownerId}", middleware.RequireRole("registrar")(
		http.HandlerFunc(handlers.DeleteLandRecordOwner))).Methods("DELETE")

	// Documents
	api.HandleFunc("/land-records/{id}/documents", handlers.GetLandRecordDocuments).Methods("GET")
	api.Handle("/land-records/{id}/documents", middleware.RequireRole("registrar", "operator")(
		http.HandlerFunc(handlers.AddLandRecordDocument))).Methods("POST")
	api.Handle("/land-records/{id}/documents/{docId}/file", middleware.RequireRole("registrar", "operator")(
		http.HandlerFunc(handlers.UploadLandRecordDocumentFile))).Methods("POST")
	api.Handle("/land-records/{id}/documents/{docId}", middleware.RequireRole("registrar")(
		http.HandlerFunc(handlers.DeleteLandRecordDocument))).Methods("DELETE")

	// Ownership transfers
	api.HandleFunc("/transfers", handlers.GetAllTransfers).Methods("GET")
	api.Handle("/transfers", middleware.RequireRole("registrar")(
		http.HandlerFunc(handlers.CreateTransfer))).Methods("POST")
	api.HandleFunc("/transfers/{id}", handlers.GetTransfer).Methods("GET")
	api.Handle("/transfers/{id}/approve", middleware.RequireRole("registrar")(
		http.HandlerFunc(handlers.ApproveTransfer))).Methods("POST")
	api.Handle("/transfers/{id}/reject", middleware.RequireRole("registrar")(
		http.HandlerFunc(handlers.RejectTransfer))).Methods("POST")

	return r
}
