package store

import (
	"errors"
	"testing"
	"time"

	"p9e.in/sitehub/models"
)

func TestCollectionCopyOnWrite(t *testing.T) {
	var c Collection[models.Site]
	c.Replace([]models.Site{{ID: "s1", Name: "Alpha"}})

	before := c.List()

	err := c.Mutate(func(current []models.Site) ([]models.Site, error) {
		next := append(append([]models.Site(nil), current...), models.Site{ID: "s2", Name: "Beta"})
		return next, nil
	})
	if err != nil {
		t.Fatalf("Mutate returned error: %v", err)
	}

	if len(before) != 1 {
		t.Errorf("earlier snapshot grew: len = %d", len(before))
	}
	if after := c.List(); len(after) != 2 {
		t.Errorf("expected 2 items after mutate, got %d", len(after))
	}
}

func TestCollectionMutateErrorLeavesItemsUntouched(t *testing.T) {
	var c Collection[models.Site]
	c.Replace([]models.Site{{ID: "s1"}})

	sentinel := errors.New("validation failed")
	err := c.Mutate(func(current []models.Site) ([]models.Site, error) {
		return nil, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Mutate error = %v, expected sentinel", err)
	}

	if items := c.List(); len(items) != 1 || items[0].ID != "s1" {
		t.Errorf("collection changed after failed mutate: %v", items)
	}
}

func TestMembershipsAddIsIdempotent(t *testing.T) {
	s := New()

	if !s.Memberships.Add("u1", "s1") {
		t.Fatal("first Add should report a change")
	}
	if s.Memberships.Add("u1", "s1") {
		t.Error("second Add of the same pair should be a no-op")
	}
	if got := s.Memberships.SitesFor("u1"); len(got) != 1 || got[0] != "s1" {
		t.Errorf("SitesFor(u1) = %v, expected [s1]", got)
	}
}

func TestMembershipsDefaultFallback(t *testing.T) {
	s := New()
	s.Memberships.Replace(map[string][]string{
		"u1":      {"s1", "s2"},
		"default": {"s1"},
	})

	if got := s.Memberships.SitesFor("u1"); len(got) != 2 {
		t.Errorf("SitesFor(u1) = %v, expected explicit memberships", got)
	}
	if got := s.Memberships.SitesFor("stranger"); len(got) != 1 || got[0] != "s1" {
		t.Errorf("SitesFor(stranger) = %v, expected the default entry", got)
	}
}

func TestMembershipsAddSwapsMap(t *testing.T) {
	s := New()
	s.Memberships.Replace(map[string][]string{"u1": {"s1"}})

	before := s.Memberships.Snapshot()
	s.Memberships.Add("u2", "s2")

	if _, ok := before["u2"]; ok {
		t.Error("earlier snapshot gained a key; map was mutated in place")
	}
	if got := s.Memberships.SitesFor("u2"); len(got) != 1 || got[0] != "s2" {
		t.Errorf("SitesFor(u2) = %v, expected [s2]", got)
	}
}

func TestSeed(t *testing.T) {
	s := New()
	Seed(s, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))

	if got := len(s.Sites.List()); got != 3 {
		t.Errorf("expected 3 seeded sites, got %d", got)
	}
	if got := len(s.Stock.List()); got != 7 {
		t.Errorf("expected 7 seeded stock items, got %d", got)
	}

	// seeded stock statuses must agree with the derivation rule
	for _, item := range s.Stock.List() {
		want := models.DeriveStockStatus(item.Quantity, item.ReorderLevel)
		if item.Status != want {
			t.Errorf("stock %s seeded with status %q, derivation says %q", item.ID, item.Status, want)
		}
	}

	// items near the reorder boundary land on the right side of it
	wantStatus := map[string]models.StockStatus{
		"st3": models.StockAdequate, // 28 trucks > reorder 20
		"st4": models.StockLow,      // 12 bags <= reorder 30
		"st6": models.StockAdequate, // 45 pieces > reorder 30
		"st7": models.StockLow,      // 8 rolls <= reorder 15
	}
	for _, item := range s.Stock.List() {
		if want, ok := wantStatus[item.ID]; ok && item.Status != want {
			t.Errorf("stock %s seeded with status %q, expected %q", item.ID, item.Status, want)
		}
	}

	// every seeded record must reference a seeded site
	sites := map[string]bool{}
	for _, site := range s.Sites.List() {
		sites[site.ID] = true
	}
	for _, a := range s.Attendance.List() {
		if !sites[a.SiteID] {
			t.Errorf("attendance %s references unknown site %s", a.ID, a.SiteID)
		}
	}
	for _, tr := range s.ToolRequests.List() {
		if !sites[tr.SiteID] {
			t.Errorf("tool request %s references unknown site %s", tr.ID, tr.SiteID)
		}
	}

	if got := s.Memberships.SitesFor("default"); len(got) == 0 {
		t.Error("seed must provide a default membership")
	}
}
