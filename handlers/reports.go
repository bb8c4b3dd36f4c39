package handlers

import (
	"net/http"

	"p9e.in/sitehub/service"
)

// GetDashboard returns the owner's summary view.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dashboard(r.URL.Query().Get("siteId")))
}

// ListConsumptionVariance returns the derived variance report.
func (h *Handler) ListConsumptionVariance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ConsumptionVariance(r.URL.Query().Get("siteId")))
}

// RecordConsumption upserts a consumption snapshot.
func (h *Handler) RecordConsumption(w http.ResponseWriter, r *http.Request) {
	var payload service.RecordConsumptionPayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	snap, err := h.svc.RecordConsumption(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// ListContractors returns the contractor rating report.
func (h *Handler) ListContractors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Contractors())
}

// ListWorkLogs returns daily work logs for a site.
func (h *Handler) ListWorkLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.WorkLogs(r.URL.Query().Get("siteId")))
}

// AddWorkLog records a daily work log.
func (h *Handler) AddWorkLog(w http.ResponseWriter, r *http.Request) {
	var payload service.AddWorkLogPayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	wl, err := h.svc.AddWorkLog(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wl)
}

// ListWorkPhotos returns documentation photos for a site.
func (h *Handler) ListWorkPhotos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.WorkPhotos(r.URL.Query().Get("siteId")))
}

// AddWorkPhoto records a documentation photo reference.
func (h *Handler) AddWorkPhoto(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SiteID   string `json:"siteId"`
		UserID   string `json:"userId"`
		PhotoRef string `json:"photoRef"`
	}
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	wp, err := h.svc.AddWorkPhoto(payload.SiteID, payload.UserID, payload.PhotoRef)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wp)
}
