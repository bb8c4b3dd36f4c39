package service

import (
	"fmt"
	"time"

	"p9e.in/sitehub/models"
)

// CreateTaskPayload is the input for CreateTask.
type CreateTaskPayload struct {
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	SiteID         string     `json:"siteId" validate:"required"`
	AssignedTo     string     `json:"assignedTo"`
	AssignedByName string     `json:"assignedByName"`
	DueDate        *time.Time `json:"dueDate"`
	Priority       string     `json:"priority"`
}

// CreateTask adds a pending task for a site.
func (s *Service) CreateTask(p CreateTaskPayload) (models.Task, error) {
	if err := s.checkPayload(p); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:             s.newID(),
		Title:          p.Title,
		Description:    p.Description,
		Status:         models.TaskPending,
		SiteID:         p.SiteID,
		AssignedTo:     p.AssignedTo,
		AssignedByName: p.AssignedByName,
		DueDate:        p.DueDate,
		Priority:       p.Priority,
	}

	err := s.store.Tasks.Mutate(func(current []models.Task) ([]models.Task, error) {
		return append(append([]models.Task(nil), current...), task), nil
	})
	if err != nil {
		return models.Task{}, err
	}

	s.committed("task", task.ID, "created")
	return task, nil
}

// UpdateTaskStatus sets a task's status directly. Progression is
// deliberately not monotonic: a completed task may be reopened.
func (s *Service) UpdateTaskStatus(id string, status models.TaskStatus) (models.Task, error) {
	if !models.ValidTaskStatus(status) {
		return models.Task{}, fmt.Errorf("%w: unknown task status %q", ErrValidation, status)
	}

	var updated models.Task
	err := s.store.Tasks.Mutate(func(current []models.Task) ([]models.Task, error) {
		next := make([]models.Task, len(current))
		found := false
		for i, task := range current {
			if task.ID == id {
				task.Status = status
				updated = task
				found = true
			}
			next[i] = task
		}
		if !found {
			return nil, fmt.Errorf("%w: task %s", ErrNotFound, id)
		}
		return next, nil
	})
	if err != nil {
		return models.Task{}, err
	}

	s.committed("task", id, "status_"+string(status))
	return updated, nil
}

// Tasks returns tasks, optionally filtered by site.
func (s *Service) Tasks(siteID string) []models.Task {
	out := []models.Task{}
	for _, task := range s.store.Tasks.List() {
		if siteID != "" && task.SiteID != siteID {
			continue
		}
		out = append(out, task)
	}
	return out
}
