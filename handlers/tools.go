package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sitehub/service"
)

// ListTools returns the tool catalog for a site.
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Tools(r.URL.Query().Get("siteId")))
}

// ListToolRequests returns checkout requests filtered by site and user.
func (h *Handler) ListToolRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.svc.ToolRequests(q.Get("siteId"), q.Get("userId")))
}

// RequestTool creates a pending checkout.
func (h *Handler) RequestTool(w http.ResponseWriter, r *http.Request) {
	var payload service.RequestToolPayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req, err := h.svc.RequestTool(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// IssueTool moves a pending checkout to issued.
func (h *Handler) IssueTool(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.IssueTool(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// ReturnTool closes an issued checkout.
func (h *Handler) ReturnTool(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.ReturnTool(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// RejectToolRequest declines a pending checkout.
func (h *Handler) RejectToolRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.RejectToolRequest(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
