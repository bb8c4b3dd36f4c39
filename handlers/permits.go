package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sitehub/service"
)

// ListPermits returns permit requests, optionally by site.
func (h *Handler) ListPermits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Permits(r.URL.Query().Get("siteId")))
}

// RequestPermit opens a permit-to-work.
func (h *Handler) RequestPermit(w http.ResponseWriter, r *http.Request) {
	var payload service.RequestPermitPayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	permit, err := h.svc.RequestPermit(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, permit)
}

// SendPermitOTP generates and attaches the one-time code.
func (h *Handler) SendPermitOTP(w http.ResponseWriter, r *http.Request) {
	permit, err := h.svc.SendPermitOTP(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, permit)
}

// VerifyPermitOTP checks the entered code. A wrong code is a normal
// response with verified=false, not an error.
func (h *Handler) VerifyPermitOTP(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OTP string `json:"otp"`
	}
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ok, err := h.svc.VerifyPermitOTP(mux.Vars(r)["id"], payload.OTP)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"verified": ok})
}

// RejectPermit declines a permit.
func (h *Handler) RejectPermit(w http.ResponseWriter, r *http.Request) {
	permit, err := h.svc.RejectPermit(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, permit)
}
