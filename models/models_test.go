package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDeriveStockStatus(t *testing.T) {
	tests := []struct {
		name         string
		quantity     float64
		reorderLevel float64
		expected     StockStatus
	}{
		{"zero is critical", 0, 50, StockCritical},
		{"negative is critical", -3, 50, StockCritical},
		{"at reorder level is low", 50, 50, StockLow},
		{"below reorder level is low", 20, 50, StockLow},
		{"above reorder level is adequate", 51, 50, StockAdequate},
		{"zero reorder level, positive quantity", 1, 0, StockAdequate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStockStatus(tt.quantity, tt.reorderLevel); got != tt.expected {
				t.Errorf("DeriveStockStatus(%f, %f) = %q, expected %q", tt.quantity, tt.reorderLevel, got, tt.expected)
			}
		})
	}
}

func TestDeriveVariance(t *testing.T) {
	tests := []struct {
		name        string
		theoretical float64
		actual      float64
		expected    VarianceStatus
	}{
		{"exact consumption", 100, 100, VarianceOK},
		{"under consumption", 100, 80, VarianceOK},
		{"at warning threshold", 100, 105, VarianceOK},
		{"above warning threshold", 100, 106, VarianceWarning},
		{"at alert threshold", 100, 115, VarianceWarning},
		{"above alert threshold", 100, 116, VarianceAlert},
		{"zero theoretical avoids division", 0, 50, VarianceOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DeriveVariance(ConsumptionSnapshot{TheoreticalQty: tt.theoretical, ActualQty: tt.actual}, 5, 15)
			if v.Status != tt.expected {
				t.Errorf("DeriveVariance(%f, %f) status = %q, expected %q", tt.theoretical, tt.actual, v.Status, tt.expected)
			}
			if v.Variance != tt.actual-tt.theoretical {
				t.Errorf("variance = %f, expected %f", v.Variance, tt.actual-tt.theoretical)
			}
		})
	}
}

func TestComputeGSTTotals(t *testing.T) {
	items := []GSTLineItem{
		{Name: "Cement", Quantity: decimal.NewFromInt(500), Rate: decimal.NewFromInt(420), GSTPct: decimal.NewFromInt(18)},
		{Name: "Sand", Quantity: decimal.NewFromInt(20), Rate: decimal.NewFromInt(8500), GSTPct: decimal.NewFromInt(5)},
	}

	total, gst, grand := ComputeGSTTotals(items)

	// 500x420 = 210000, 20x8500 = 170000
	if !total.Equal(decimal.NewFromInt(380000)) {
		t.Errorf("total = %s, expected 380000", total)
	}
	// 18% of 210000 = 37800, 5% of 170000 = 8500
	if !gst.Equal(decimal.NewFromInt(46300)) {
		t.Errorf("gst = %s, expected 46300", gst)
	}
	if !grand.Equal(decimal.NewFromInt(426300)) {
		t.Errorf("grand = %s, expected 426300", grand)
	}
}

func TestMaterialRequestTotal(t *testing.T) {
	rate := decimal.NewFromInt(380)
	with := MaterialRequest{Quantity: decimal.NewFromInt(250), Rate: &rate}
	total, ok := with.Total()
	if !ok || !total.Equal(decimal.NewFromInt(95000)) {
		t.Errorf("Total() = %s, %v; expected 95000, true", total, ok)
	}

	without := MaterialRequest{Quantity: decimal.NewFromInt(250)}
	if _, ok := without.Total(); ok {
		t.Error("Total() without a rate should report false")
	}
}

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role         Role
		attendance   bool
		approver     bool
		aboveCeiling bool
	}{
		{RoleLabour, false, false, false},
		{RoleJuniorEngineer, false, false, false},
		{RoleSupervisor, true, true, false},
		{RoleProjectManager, true, true, true},
		{RoleOwner, true, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.CanApproveAttendance(); got != tt.attendance {
				t.Errorf("CanApproveAttendance = %v, expected %v", got, tt.attendance)
			}
			if got := tt.role.IsApprover(); got != tt.approver {
				t.Errorf("IsApprover = %v, expected %v", got, tt.approver)
			}
			if got := tt.role.CanApproveAboveCeiling(); got != tt.aboveCeiling {
				t.Errorf("CanApproveAboveCeiling = %v, expected %v", got, tt.aboveCeiling)
			}
		})
	}
}

func TestSiteHasFence(t *testing.T) {
	loc := &Coordinate{Lat: 19.076, Lon: 72.8777}
	square := []Coordinate{{19.07, 72.87}, {19.07, 72.89}, {19.09, 72.89}}

	tests := []struct {
		name     string
		site     Site
		expected bool
	}{
		{"no location, no boundary", Site{}, false},
		{"location without radius", Site{Location: loc}, false},
		{"location with radius", Site{Location: loc, RadiusMeters: 500}, true},
		{"boundary only", Site{Boundary: square}, true},
		{"degenerate boundary", Site{Boundary: square[:2]}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.site.HasFence(); got != tt.expected {
				t.Errorf("HasFence = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestValidTaskStatus(t *testing.T) {
	for _, s := range []TaskStatus{TaskPending, TaskInProgress, TaskCompleted} {
		if !ValidTaskStatus(s) {
			t.Errorf("ValidTaskStatus(%q) = false", s)
		}
	}
	for _, s := range []TaskStatus{"", "done", "archived"} {
		if ValidTaskStatus(s) {
			t.Errorf("ValidTaskStatus(%q) = true", s)
		}
	}
}
