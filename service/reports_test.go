package service

import (
	"errors"
	"math"
	"testing"

	"p9e.in/sitehub/models"
)

func TestConsumptionVariance(t *testing.T) {
	svc := newTestService(t)

	report := svc.ConsumptionVariance("s1")
	if len(report) != 4 {
		t.Fatalf("expected 4 seeded rows, got %d", len(report))
	}

	byName := map[string]models.ConsumptionVariance{}
	for _, row := range report {
		byName[row.MaterialName] = row
	}

	// cement: 495 of 500 used, 1% under -> ok
	cement := byName["OPC Cement"]
	if cement.Status != models.VarianceOK {
		t.Errorf("cement status = %q, expected ok", cement.Status)
	}
	if cement.Variance != -5 {
		t.Errorf("cement variance = %f, expected -5", cement.Variance)
	}

	// steel: 2150 of 2000, 7.5% over -> warning
	steel := byName["TMT Steel Bars"]
	if steel.Status != models.VarianceWarning {
		t.Errorf("steel status = %q, expected warning", steel.Status)
	}
	if math.Abs(steel.VariancePercent-7.5) > 1e-9 {
		t.Errorf("steel variance pct = %f, expected 7.5", steel.VariancePercent)
	}

	// sand: 22 of 15, ~46.7% over -> alert
	sand := byName["River Sand"]
	if sand.Status != models.VarianceAlert {
		t.Errorf("sand status = %q, expected alert", sand.Status)
	}
}

func TestRecordConsumptionUpserts(t *testing.T) {
	svc := newTestService(t)
	notified := countNotifications(svc)
	before := len(svc.ConsumptionVariance("s1"))

	// updating an existing material must not add a row
	_, err := svc.RecordConsumption(RecordConsumptionPayload{
		SiteID: "s1", MaterialName: "OPC Cement",
		TheoreticalQty: 500, ActualQty: 600, Unit: "bags",
	})
	if err != nil {
		t.Fatalf("RecordConsumption returned error: %v", err)
	}
	report := svc.ConsumptionVariance("s1")
	if len(report) != before {
		t.Errorf("update added a row: %d -> %d", before, len(report))
	}
	for _, row := range report {
		if row.MaterialName == "OPC Cement" && row.Status != models.VarianceAlert {
			t.Errorf("cement should now be alert at 20%% over, got %q", row.Status)
		}
	}

	// a new material adds a row
	_, err = svc.RecordConsumption(RecordConsumptionPayload{
		SiteID: "s1", MaterialName: "Curing Compound",
		TheoreticalQty: 40, ActualQty: 38, Unit: "liters",
	})
	if err != nil {
		t.Fatalf("RecordConsumption returned error: %v", err)
	}
	if got := len(svc.ConsumptionVariance("s1")); got != before+1 {
		t.Errorf("expected %d rows, got %d", before+1, got)
	}

	if *notified != 2 {
		t.Errorf("expected 2 notifications, got %d", *notified)
	}
}

func TestRecordConsumptionValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RecordConsumption(RecordConsumptionPayload{
		SiteID: "s1", MaterialName: "Sand", TheoreticalQty: 0, ActualQty: 5, Unit: "trucks",
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("zero theoretical: expected ErrValidation, got %v", err)
	}
}

func TestDashboard(t *testing.T) {
	svc := newTestService(t)

	d := svc.Dashboard("s1")

	// seeded paid bills: g2 (160480) + g3 (178500) = 338980
	if d.TotalSpend != "338980.00" {
		t.Errorf("total spend = %q, expected 338980.00", d.TotalSpend)
	}
	// 2 of 6 seeded tasks completed -> 33%
	if d.TotalTasks != 6 || d.CompletedTasks != 2 {
		t.Errorf("tasks = %d/%d, expected 2/6", d.CompletedTasks, d.TotalTasks)
	}
	if d.Progress != 33 {
		t.Errorf("progress = %d, expected 33", d.Progress)
	}
	if len(d.RecentBills) != 4 {
		t.Errorf("recent bills = %d, expected all 4 seeded", len(d.RecentBills))
	}

	// paying another bill raises the spend
	if _, err := svc.MarkGSTBillSent("g4"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.MarkGSTBillPaid("g4"); err != nil {
		t.Fatal(err)
	}
	d = svc.Dashboard("s1")
	if d.TotalSpend != "428580.00" {
		t.Errorf("total spend after paying g4 = %q, expected 428580.00", d.TotalSpend)
	}
}

func TestWorkLogs(t *testing.T) {
	svc := newTestService(t)
	notified := countNotifications(svc)

	wl, err := svc.AddWorkLog(AddWorkLogPayload{
		UserID: "u2", SiteID: "s1",
		WorkDone: "Shuttering removed from Block B columns",
		Lat:      19.077, Lon: 72.878, Address: "Block B",
	})
	if err != nil {
		t.Fatalf("AddWorkLog returned error: %v", err)
	}
	if wl.Timestamp != testNow {
		t.Errorf("timestamp = %v, expected the injected clock", wl.Timestamp)
	}
	if got := len(svc.WorkLogs("s1")); got != 5 {
		t.Errorf("expected 5 logs after adding one, got %d", got)
	}
	if *notified != 1 {
		t.Errorf("expected 1 notification, got %d", *notified)
	}

	if _, err := svc.AddWorkLog(AddWorkLogPayload{UserID: "u2", SiteID: "s1"}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing workDone: expected ErrValidation, got %v", err)
	}
}

func TestWorkPhotos(t *testing.T) {
	svc := newTestService(t)

	wp, err := svc.AddWorkPhoto("s1", "u1", "photos/slab-1.jpg")
	if err != nil {
		t.Fatalf("AddWorkPhoto returned error: %v", err)
	}
	if wp.PhotoRef != "photos/slab-1.jpg" {
		t.Errorf("photoRef = %q", wp.PhotoRef)
	}
	if got := len(svc.WorkPhotos("s1")); got != 4 {
		t.Errorf("expected 4 photos, got %d", got)
	}

	if _, err := svc.AddWorkPhoto("s1", "u1", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("missing photoRef: expected ErrValidation, got %v", err)
	}
}

func TestContractors(t *testing.T) {
	svc := newTestService(t)

	contractors := svc.Contractors()
	if len(contractors) != 5 {
		t.Fatalf("expected 5 seeded contractors, got %d", len(contractors))
	}
	for _, c := range contractors {
		switch c.PaymentAdvice {
		case models.PaymentRelease, models.PaymentHold, models.PaymentPartial:
		default:
			t.Errorf("contractor %s has unknown payment advice %q", c.ID, c.PaymentAdvice)
		}
	}
}
