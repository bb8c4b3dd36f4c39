package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/service"
)

// ListStock returns the stock register, optionally by site.
func (h *Handler) ListStock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.StockItems(r.URL.Query().Get("siteId")))
}

// CreateStockItem registers a new stock item.
func (h *Handler) CreateStockItem(w http.ResponseWriter, r *http.Request) {
	var payload service.CreateStockItemPayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	item, err := h.svc.CreateStockItem(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// MoveStock applies an in/out movement.
func (h *Handler) MoveStock(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity  float64               `json:"quantity"`
		Direction models.StockDirection `json:"direction"`
	}
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	item, err := h.svc.MoveStock(mux.Vars(r)["id"], payload.Quantity, payload.Direction)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
