package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sitehub/service"
)

// ListPettyCash returns claims, optionally by user.
func (h *Handler) ListPettyCash(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.PettyCash(r.URL.Query().Get("userId")))
}

// AddPettyCash records an expense claim.
func (h *Handler) AddPettyCash(w http.ResponseWriter, r *http.Request) {
	var payload service.AddPettyCashPayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	entry, err := h.svc.AddPettyCash(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// DecidePettyCash approves or rejects a claim.
func (h *Handler) DecidePettyCash(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Approve bool `json:"approve"`
	}
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	entry, err := h.svc.DecidePettyCash(mux.Vars(r)["id"], payload.Approve)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
