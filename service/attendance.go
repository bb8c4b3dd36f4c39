package service

import (
	"fmt"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/utils"
	"p9e.in/sitehub/workflow"
)

// MarkAttendancePayload is the input for MarkAttendance. Coordinates and
// the resolved address arrive already acquired; the core never talks to GPS.
type MarkAttendancePayload struct {
	UserID   string  `json:"userId" validate:"required"`
	SiteID   string  `json:"siteId" validate:"required"`
	PhotoRef string  `json:"photoRef"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Address  string  `json:"address"`
}

// MarkAttendance creates a pending attendance record. When the site defines
// a fence the reported position must be inside it.
func (s *Service) MarkAttendance(p MarkAttendancePayload) (models.AttendanceRecord, error) {
	if err := s.checkPayload(p); err != nil {
		return models.AttendanceRecord{}, err
	}
	point := models.Coordinate{Lat: p.Lat, Lon: p.Lon}
	if err := utils.ValidateCoordinate(point); err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	site, err := s.SiteByID(p.SiteID)
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	if site.HasFence() && !utils.InsideSiteFence(point, site) {
		return models.AttendanceRecord{}, fmt.Errorf("%w: position is outside the site fence", ErrValidation)
	}

	record := models.AttendanceRecord{
		ID:        s.newID(),
		UserID:    p.UserID,
		SiteID:    p.SiteID,
		Timestamp: s.now(),
		PhotoRef:  p.PhotoRef,
		Lat:       p.Lat,
		Lon:       p.Lon,
		Address:   p.Address,
		Status:    workflow.Attendance.Initial,
	}

	err = s.store.Attendance.Mutate(func(current []models.AttendanceRecord) ([]models.AttendanceRecord, error) {
		return append(append([]models.AttendanceRecord(nil), current...), record), nil
	})
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	s.committed("attendance", record.ID, "marked")
	return record, nil
}

// ApproveAttendance decides a pending record. approve=false rejects it.
// Both outcomes are terminal. The actor must hold a supervising role.
func (s *Service) ApproveAttendance(id string, approve bool, actorRole models.Role) (models.AttendanceRecord, error) {
	if !actorRole.CanApproveAttendance() {
		return models.AttendanceRecord{}, fmt.Errorf("%w: role %q may not decide attendance", ErrAuthorization, actorRole)
	}

	action := workflow.ActionApprove
	if !approve {
		action = workflow.ActionReject
	}

	var updated models.AttendanceRecord
	err := s.store.Attendance.Mutate(func(current []models.AttendanceRecord) ([]models.AttendanceRecord, error) {
		next := make([]models.AttendanceRecord, len(current))
		found := false
		for i, rec := range current {
			if rec.ID == id {
				found = true
				nextStatus, ok := workflow.Attendance.Next(rec.Status, action)
				if !ok {
					return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, workflow.Attendance.ErrIllegal(rec.Status, action))
				}
				if approve && s.cfg.RevalidateGPSOnApproval {
					if err := s.revalidateProximity(rec); err != nil {
						return nil, err
					}
				}
				rec.Status = nextStatus
				updated = rec
			}
			next[i] = rec
		}
		if !found {
			return nil, fmt.Errorf("%w: attendance record %s", ErrNotFound, id)
		}
		return next, nil
	})
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	s.committed("attendance", id, action)
	return updated, nil
}

// revalidateProximity re-checks the recorded coordinates against the site
// fence. Optional policy; off by default to match the original behavior.
func (s *Service) revalidateProximity(rec models.AttendanceRecord) error {
	site, err := s.SiteByID(rec.SiteID)
	if err != nil {
		return err
	}
	point := models.Coordinate{Lat: rec.Lat, Lon: rec.Lon}
	if site.HasFence() && !utils.InsideSiteFence(point, site) {
		return fmt.Errorf("%w: recorded position is outside the site fence", ErrValidation)
	}
	return nil
}

// Attendance returns records for a site, optionally filtered by status.
// An empty status returns everything.
func (s *Service) Attendance(siteID string, status models.AttendanceStatus) []models.AttendanceRecord {
	out := []models.AttendanceRecord{}
	for _, rec := range s.store.Attendance.List() {
		if siteID != "" && rec.SiteID != siteID {
			continue
		}
		if status != "" && rec.Status != status {
			continue
		}
		out = append(out, rec)
	}
	return out
}
