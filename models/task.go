package models

import "time"

// TaskStatus is the progress state of a site task. Progression is not
// monotonic: any status may be set directly.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task represents a unit of site work assigned by a supervisor.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         TaskStatus `json:"status"`
	SiteID         string     `json:"siteId"`
	AssignedTo     string     `json:"assignedTo,omitempty"`
	AssignedByName string     `json:"assignedByName,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Priority       string     `json:"priority,omitempty"`
}
