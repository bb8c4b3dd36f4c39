package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"p9e.in/sitehub/models"
)

// ConsumptionVariance returns the derived variance report. Variance,
// percent and status are recomputed on every read so the report is always
// consistent with the latest write.
func (s *Service) ConsumptionVariance(siteID string) []models.ConsumptionVariance {
	out := []models.ConsumptionVariance{}
	for _, snap := range s.store.Consumption.List() {
		if siteID != "" && snap.SiteID != siteID {
			continue
		}
		out = append(out, models.DeriveVariance(snap, s.cfg.VarianceWarningPct, s.cfg.VarianceAlertPct))
	}
	return out
}

// RecordConsumptionPayload is the input for RecordConsumption.
type RecordConsumptionPayload struct {
	SiteID         string  `json:"siteId" validate:"required"`
	MaterialName   string  `json:"materialName" validate:"required"`
	TheoreticalQty float64 `json:"theoreticalQty" validate:"gt=0"`
	ActualQty      float64 `json:"actualQty" validate:"gte=0"`
	Unit           string  `json:"unit" validate:"required"`
}

// RecordConsumption upserts the consumption snapshot for a material on a
// site. The derived fields are not stored; reads compute them.
func (s *Service) RecordConsumption(p RecordConsumptionPayload) (models.ConsumptionSnapshot, error) {
	if err := s.checkPayload(p); err != nil {
		return models.ConsumptionSnapshot{}, err
	}

	var saved models.ConsumptionSnapshot
	err := s.store.Consumption.Mutate(func(current []models.ConsumptionSnapshot) ([]models.ConsumptionSnapshot, error) {
		next := make([]models.ConsumptionSnapshot, len(current))
		copy(next, current)
		for i, snap := range next {
			if snap.SiteID == p.SiteID && snap.MaterialName == p.MaterialName {
				snap.TheoreticalQty = p.TheoreticalQty
				snap.ActualQty = p.ActualQty
				snap.Unit = p.Unit
				snap.UpdatedAt = s.now()
				next[i] = snap
				saved = snap
				return next, nil
			}
		}
		saved = models.ConsumptionSnapshot{
			ID:             s.newID(),
			SiteID:         p.SiteID,
			MaterialName:   p.MaterialName,
			TheoreticalQty: p.TheoreticalQty,
			ActualQty:      p.ActualQty,
			Unit:           p.Unit,
			UpdatedAt:      s.now(),
		}
		return append(next, saved), nil
	})
	if err != nil {
		return models.ConsumptionSnapshot{}, err
	}

	s.committed("consumption", saved.ID, "recorded")
	return saved, nil
}

// Contractors returns the contractor rating report.
func (s *Service) Contractors() []models.Contractor {
	return s.store.Contractors.List()
}

// OwnerDashboard is the owner's financial and progress summary.
type OwnerDashboard struct {
	TotalSpend     string           `json:"totalSpend"`
	CompletedTasks int              `json:"completedTasks"`
	TotalTasks     int              `json:"totalTasks"`
	Progress       int              `json:"progress"` // percent, rounded
	RecentBills    []models.GSTBill `json:"recentBills"`
}

// Dashboard aggregates paid-bill spend and task completion for the owner
// view. Everything is computed from current snapshots. Tasks are scoped to
// siteID; bills are ledger-wide because a GSTBill carries a project name
// but no site id, so spend and recent bills cover the whole business.
func (s *Service) Dashboard(siteID string) OwnerDashboard {
	bills := s.store.GSTBills.List()
	tasks := s.Tasks(siteID)

	spend := decimal.Zero
	for _, b := range bills {
		if b.Status == models.GSTPaid {
			spend = spend.Add(b.GrandTotal)
		}
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == models.TaskCompleted {
			completed++
		}
	}
	progress := 0
	if len(tasks) > 0 {
		progress = int(math.Round(float64(completed) / float64(len(tasks)) * 100))
	}

	recent := bills
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return OwnerDashboard{
		TotalSpend:     spend.StringFixed(2),
		CompletedTasks: completed,
		TotalTasks:     len(tasks),
		Progress:       progress,
		RecentBills:    recent,
	}
}

// WorkLogs returns daily logs for a site.
func (s *Service) WorkLogs(siteID string) []models.WorkLog {
	out := []models.WorkLog{}
	for _, wl := range s.store.WorkLogs.List() {
		if siteID != "" && wl.SiteID != siteID {
			continue
		}
		out = append(out, wl)
	}
	return out
}

// AddWorkLogPayload is the input for AddWorkLog.
type AddWorkLogPayload struct {
	UserID   string  `json:"userId" validate:"required"`
	SiteID   string  `json:"siteId" validate:"required"`
	WorkDone string  `json:"workDone" validate:"required"`
	PhotoRef string  `json:"photoRef"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Address  string  `json:"address"`
}

// AddWorkLog records a geotagged daily progress entry.
func (s *Service) AddWorkLog(p AddWorkLogPayload) (models.WorkLog, error) {
	if err := s.checkPayload(p); err != nil {
		return models.WorkLog{}, err
	}

	wl := models.WorkLog{
		ID:        s.newID(),
		SiteID:    p.SiteID,
		UserID:    p.UserID,
		WorkDone:  p.WorkDone,
		PhotoRef:  p.PhotoRef,
		Lat:       p.Lat,
		Lon:       p.Lon,
		Address:   p.Address,
		Timestamp: s.now(),
	}

	err := s.store.WorkLogs.Mutate(func(current []models.WorkLog) ([]models.WorkLog, error) {
		return append(append([]models.WorkLog(nil), current...), wl), nil
	})
	if err != nil {
		return models.WorkLog{}, err
	}

	s.committed("work_log", wl.ID, "added")
	return wl, nil
}

// WorkPhotos returns documentation photos for a site.
func (s *Service) WorkPhotos(siteID string) []models.WorkPhoto {
	out := []models.WorkPhoto{}
	for _, wp := range s.store.WorkPhotos.List() {
		if siteID != "" && wp.SiteID != siteID {
			continue
		}
		out = append(out, wp)
	}
	return out
}

// AddWorkPhoto records a site documentation photo reference.
func (s *Service) AddWorkPhoto(siteID, userID, photoRef string) (models.WorkPhoto, error) {
	if siteID == "" || userID == "" || photoRef == "" {
		return models.WorkPhoto{}, fmt.Errorf("%w: siteId, userId and photoRef are required", ErrValidation)
	}

	wp := models.WorkPhoto{
		ID:        s.newID(),
		SiteID:    siteID,
		UserID:    userID,
		PhotoRef:  photoRef,
		Timestamp: s.now(),
	}

	err := s.store.WorkPhotos.Mutate(func(current []models.WorkPhoto) ([]models.WorkPhoto, error) {
		return append(append([]models.WorkPhoto(nil), current...), wp), nil
	})
	if err != nil {
		return models.WorkPhoto{}, err
	}

	s.committed("work_photo", wp.ID, "added")
	return wp, nil
}
