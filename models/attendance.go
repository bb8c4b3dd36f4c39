package models

import "time"

// AttendanceStatus is the approval state of an attendance record.
type AttendanceStatus string

const (
	AttendancePending  AttendanceStatus = "pending"
	AttendanceApproved AttendanceStatus = "approved"
	AttendanceRejected AttendanceStatus = "rejected"
)

// AttendanceRecord is a geotagged check-in created by a worker and decided
// by a supervisor. Approved and rejected are terminal.
type AttendanceRecord struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	SiteID    string           `json:"siteId"`
	Timestamp time.Time        `json:"timestamp"`
	PhotoRef  string           `json:"photoRef,omitempty"`
	Lat       float64          `json:"lat"`
	Lon       float64          `json:"lon"`
	Address   string           `json:"address,omitempty"`
	Status    AttendanceStatus `json:"status"`
}
