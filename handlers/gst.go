package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sitehub/service"
)

// ListGSTBills returns all bills.
func (h *Handler) ListGSTBills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GSTBills())
}

// CreateGSTBill records a vendor invoice with derived totals.
func (h *Handler) CreateGSTBill(w http.ResponseWriter, r *http.Request) {
	var payload service.CreateGSTBillPayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	bill, err := h.svc.CreateGSTBill(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bill)
}

// MarkGSTBillSent moves a draft bill to sent.
func (h *Handler) MarkGSTBillSent(w http.ResponseWriter, r *http.Request) {
	bill, err := h.svc.MarkGSTBillSent(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

// MarkGSTBillPaid settles a sent bill.
func (h *Handler) MarkGSTBillPaid(w http.ResponseWriter, r *http.Request) {
	bill, err := h.svc.MarkGSTBillPaid(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}
