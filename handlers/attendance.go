package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/service"
)

// ListAttendance returns attendance for a site; status is an optional
// query filter.
func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records := h.svc.Attendance(q.Get("siteId"), models.AttendanceStatus(q.Get("status")))
	writeJSON(w, http.StatusOK, records)
}

// MarkAttendance creates a pending attendance record.
func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var payload service.MarkAttendancePayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	record, err := h.svc.MarkAttendance(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// DecideAttendance approves or rejects a pending record.
func (h *Handler) DecideAttendance(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Approve   bool        `json:"approve"`
		ActorRole models.Role `json:"actorRole"`
	}
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	record, err := h.svc.ApproveAttendance(mux.Vars(r)["id"], payload.Approve, payload.ActorRole)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
