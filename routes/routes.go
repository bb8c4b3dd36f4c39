package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sitehub/handlers"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(h *handlers.Handler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Sites and enrollment
	api.HandleFunc("/sites", h.ListSites).Methods("GET")
	api.HandleFunc("/sites", h.CreateSite).Methods("POST")
	api.HandleFunc("/sites/{id}", h.GetSite).Methods("GET")
	api.HandleFunc("/sites/{id}/rotate-code", h.RotateSiteCode).Methods("POST")
	api.HandleFunc("/sites/join", h.JoinSite).Methods("POST")

	// Attendance
	api.HandleFunc("/attendance", h.ListAttendance).Methods("GET")
	api.HandleFunc("/attendance", h.MarkAttendance).Methods("POST")
	api.HandleFunc("/attendance/{id}/decide", h.DecideAttendance).Methods("POST")

	// Material requests
	api.HandleFunc("/materials", h.ListMaterialRequests).Methods("GET")
	api.HandleFunc("/materials", h.RequestMaterial).Methods("POST")
	api.HandleFunc("/materials/{id}/decide", h.DecideMaterialRequest).Methods("POST")

	// Tasks
	api.HandleFunc("/tasks", h.ListTasks).Methods("GET")
	api.HandleFunc("/tasks", h.CreateTask).Methods("POST")
	api.HandleFunc("/tasks/{id}/status", h.UpdateTaskStatus).Methods("PUT")

	// Stock
	api.HandleFunc("/stock", h.ListStock).Methods("GET")
	api.HandleFunc("/stock", h.CreateStockItem).Methods("POST")
	api.HandleFunc("/stock/{id}/move", h.MoveStock).Methods("POST")

	// Tool library
	api.HandleFunc("/tools", h.ListTools).Methods("GET")
	api.HandleFunc("/tool-requests", h.ListToolRequests).Methods("GET")
	api.HandleFunc("/tool-requests", h.RequestTool).Methods("POST")
	api.HandleFunc("/tool-requests/{id}/issue", h.IssueTool).Methods("POST")
	api.HandleFunc("/tool-requests/{id}/return", h.ReturnTool).Methods("POST")
	api.HandleFunc("/tool-requests/{id}/reject", h.RejectToolRequest).Methods("POST")

	// Permit-to-work
	api.HandleFunc("/permits", h.ListPermits).Methods("GET")
	api.HandleFunc("/permits", h.RequestPermit).Methods("POST")
	api.HandleFunc("/permits/{id}/send-otp", h.SendPermitOTP).Methods("POST")
	api.HandleFunc("/permits/{id}/verify", h.VerifyPermitOTP).Methods("POST")
	api.HandleFunc("/permits/{id}/reject", h.RejectPermit).Methods("POST")

	// Petty cash
	api.HandleFunc("/petty-cash", h.ListPettyCash).Methods("GET")
	api.HandleFunc("/petty-cash", h.AddPettyCash).Methods("POST")
	api.HandleFunc("/petty-cash/{id}/decide", h.DecidePettyCash).Methods("POST")

	// GST bills
	api.HandleFunc("/gst-bills", h.ListGSTBills).Methods("GET")
	api.HandleFunc("/gst-bills", h.CreateGSTBill).Methods("POST")
	api.HandleFunc("/gst-bills/{id}/send", h.MarkGSTBillSent).Methods("POST")
	api.HandleFunc("/gst-bills/{id}/pay", h.MarkGSTBillPaid).Methods("POST")

	// Work logs and photos
	api.HandleFunc("/work-logs", h.ListWorkLogs).Methods("GET")
	api.HandleFunc("/work-logs", h.AddWorkLog).Methods("POST")
	api.HandleFunc("/work-photos", h.ListWorkPhotos).Methods("GET")
	api.HandleFunc("/work-photos", h.AddWorkPhoto).Methods("POST")

	// Reports
	api.HandleFunc("/dashboard", h.GetDashboard).Methods("GET")
	api.HandleFunc("/consumption-variance", h.ListConsumptionVariance).Methods("GET")
	api.HandleFunc("/consumption-variance", h.RecordConsumption).Methods("POST")
	api.HandleFunc("/contractors", h.ListContractors).Methods("GET")
	api.HandleFunc("/reports/stock/export", h.ExportStockToExcel).Methods("GET")
	api.HandleFunc("/reports/gst/export", h.ExportGSTBillsToExcel).Methods("GET")
	api.HandleFunc("/reports/variance/export", h.ExportVarianceToExcel).Methods("GET")

	// Change feed
	api.HandleFunc("/events", h.StreamEvents).Methods("GET")

	return r
}
