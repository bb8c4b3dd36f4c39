package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sitehub/service"
)

// ListSites returns all sites, or the caller's sites when userId is given.
func (h *Handler) ListSites(w http.ResponseWriter, r *http.Request) {
	if userID := r.URL.Query().Get("userId"); userID != "" {
		writeJSON(w, http.StatusOK, h.svc.SitesForUser(userID))
		return
	}
	writeJSON(w, http.StatusOK, h.svc.AllSites())
}

// GetSite returns one site by id.
func (h *Handler) GetSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.svc.SiteByID(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, site)
}

// CreateSite registers a new site.
func (h *Handler) CreateSite(w http.ResponseWriter, r *http.Request) {
	var payload service.CreateSitePayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	site, err := h.svc.CreateSite(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, site)
}

// RotateSiteCode replaces a site's enrollment code.
func (h *Handler) RotateSiteCode(w http.ResponseWriter, r *http.Request) {
	site, err := h.svc.RotateEnrollmentCode(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, site)
}

// JoinSite enrolls a user into a site by code.
func (h *Handler) JoinSite(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Code   string `json:"code"`
		UserID string `json:"userId"`
	}
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	result, err := h.svc.JoinSiteByCode(payload.Code, payload.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
