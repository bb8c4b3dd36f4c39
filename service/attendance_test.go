package service

import (
	"errors"
	"testing"

	"p9e.in/sitehub/models"
)

func TestMarkAttendanceInsideFence(t *testing.T) {
	svc := newTestService(t)
	notified := countNotifications(svc)

	rec, err := svc.MarkAttendance(MarkAttendancePayload{
		UserID: "u1", SiteID: "s1",
		Lat: 19.076, Lon: 72.8777,
		Address: "Main Gate",
	})
	if err != nil {
		t.Fatalf("MarkAttendance returned error: %v", err)
	}
	if rec.Status != models.AttendancePending {
		t.Errorf("new record status = %q, expected pending", rec.Status)
	}
	if rec.Timestamp != testNow {
		t.Errorf("record timestamp = %v, expected the injected clock", rec.Timestamp)
	}
	if *notified != 1 {
		t.Errorf("expected exactly 1 notification, got %d", *notified)
	}
}

func TestMarkAttendanceOutsideFence(t *testing.T) {
	svc := newTestService(t)
	notified := countNotifications(svc)
	before := len(svc.Attendance("s1", ""))

	// Pune coordinates against the Mumbai site, far beyond the 500m radius
	_, err := svc.MarkAttendance(MarkAttendancePayload{
		UserID: "u1", SiteID: "s1",
		Lat: 18.5913, Lon: 73.7389,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if got := len(svc.Attendance("s1", "")); got != before {
		t.Errorf("failed mark changed the collection: %d -> %d", before, got)
	}
	if *notified != 0 {
		t.Errorf("failed mark must not notify, got %d", *notified)
	}
}

func TestMarkAttendanceRejectsBadCoordinates(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.MarkAttendance(MarkAttendancePayload{
		UserID: "u1", SiteID: "s1",
		Lat: 95, Lon: 72.8777,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for out-of-range latitude, got %v", err)
	}
}

func TestMarkAttendanceUnknownSite(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.MarkAttendance(MarkAttendancePayload{
		UserID: "u1", SiteID: "nope",
		Lat: 19.076, Lon: 72.8777,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApproveAttendance(t *testing.T) {
	svc := newTestService(t)
	notified := countNotifications(svc)

	// a2 is seeded pending
	rec, err := svc.ApproveAttendance("a2", true, models.RoleSupervisor)
	if err != nil {
		t.Fatalf("ApproveAttendance returned error: %v", err)
	}
	if rec.Status != models.AttendanceApproved {
		t.Errorf("status = %q, expected approved", rec.Status)
	}
	if *notified != 1 {
		t.Errorf("expected 1 notification, got %d", *notified)
	}

	// approving again must fail and leave the record approved
	_, err = svc.ApproveAttendance("a2", true, models.RoleSupervisor)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("second approve: expected ErrIllegalTransition, got %v", err)
	}
	for _, r := range svc.Attendance("s1", "") {
		if r.ID == "a2" && r.Status != models.AttendanceApproved {
			t.Errorf("record changed after failed transition: %q", r.Status)
		}
	}
	if *notified != 1 {
		t.Errorf("failed transition must not notify, got %d", *notified)
	}
}

func TestApproveAttendanceRoleGate(t *testing.T) {
	svc := newTestService(t)
	notified := countNotifications(svc)

	for _, role := range []models.Role{models.RoleLabour, models.RoleJuniorEngineer} {
		_, err := svc.ApproveAttendance("a2", true, role)
		if !errors.Is(err, ErrAuthorization) {
			t.Errorf("role %q: expected ErrAuthorization, got %v", role, err)
		}
	}
	if *notified != 0 {
		t.Errorf("denied approvals must not notify, got %d", *notified)
	}
}

func TestRejectAttendance(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.ApproveAttendance("a4", false, models.RoleProjectManager)
	if err != nil {
		t.Fatalf("reject returned error: %v", err)
	}
	if rec.Status != models.AttendanceRejected {
		t.Errorf("status = %q, expected rejected", rec.Status)
	}

	// rejected is terminal
	if _, err := svc.ApproveAttendance("a4", true, models.RoleOwner); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("approve after reject: expected ErrIllegalTransition, got %v", err)
	}
}

func TestAttendanceFilters(t *testing.T) {
	svc := newTestService(t)

	pending := svc.Attendance("s1", models.AttendancePending)
	for _, r := range pending {
		if r.Status != models.AttendancePending {
			t.Errorf("filter leaked status %q", r.Status)
		}
	}
	if len(pending) != 2 {
		t.Errorf("expected 2 seeded pending records, got %d", len(pending))
	}

	if got := svc.Attendance("s2", ""); len(got) != 0 {
		t.Errorf("expected no records on s2, got %d", len(got))
	}
}
