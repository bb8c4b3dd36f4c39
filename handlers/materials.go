package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/service"
)

// ListMaterialRequests returns material requests, optionally by site.
func (h *Handler) ListMaterialRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.MaterialRequests(r.URL.Query().Get("siteId")))
}

// RequestMaterial raises a new material indent.
func (h *Handler) RequestMaterial(w http.ResponseWriter, r *http.Request) {
	var payload service.RequestMaterialPayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req, err := h.svc.RequestMaterial(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// DecideMaterialRequest approves or rejects a pending request.
func (h *Handler) DecideMaterialRequest(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Approve         bool        `json:"approve"`
		Actor           string      `json:"actor"`
		ActorRole       models.Role `json:"actorRole"`
		RejectionReason string      `json:"rejectionReason"`
	}
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req, err := h.svc.DecideMaterialRequest(mux.Vars(r)["id"], payload.Approve, payload.Actor, payload.ActorRole, payload.RejectionReason)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
