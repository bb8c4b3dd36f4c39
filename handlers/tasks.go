package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/service"
)

// ListTasks returns tasks, optionally by site.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Tasks(r.URL.Query().Get("siteId")))
}

// CreateTask adds a task.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var payload service.CreateTaskPayload
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	task, err := h.svc.CreateTask(payload)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// UpdateTaskStatus sets a task's status.
func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status models.TaskStatus `json:"status"`
	}
	if err := decode(r, &payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	task, err := h.svc.UpdateTaskStatus(mux.Vars(r)["id"], payload.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}
