package models

import "time"

// VarianceStatus grades consumption variance against configured thresholds.
type VarianceStatus string

const (
	VarianceOK      VarianceStatus = "ok"
	VarianceWarning VarianceStatus = "warning"
	VarianceAlert   VarianceStatus = "alert"
)

// ConsumptionSnapshot stores the raw theoretical and actual consumption for
// one material. Variance, percent and status are derived on every read so
// reports always reflect the latest write.
type ConsumptionSnapshot struct {
	ID             string    `json:"id"`
	SiteID         string    `json:"siteId"`
	MaterialName   string    `json:"materialName"`
	TheoreticalQty float64   `json:"theoreticalQty"`
	ActualQty      float64   `json:"actualQty"`
	Unit           string    `json:"unit"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ConsumptionVariance is the derived report row for one snapshot.
type ConsumptionVariance struct {
	ConsumptionSnapshot
	Variance        float64        `json:"variance"`
	VariancePercent float64        `json:"variancePercent"`
	Status          VarianceStatus `json:"status"`
}

// DeriveVariance computes variance fields for a snapshot. Over-consumption
// beyond warningPct raises warning, beyond alertPct raises alert.
func DeriveVariance(s ConsumptionSnapshot, warningPct, alertPct float64) ConsumptionVariance {
	v := ConsumptionVariance{ConsumptionSnapshot: s}
	v.Variance = s.ActualQty - s.TheoreticalQty
	if s.TheoreticalQty != 0 {
		v.VariancePercent = v.Variance / s.TheoreticalQty * 100
	}
	switch {
	case v.VariancePercent > alertPct:
		v.Status = VarianceAlert
	case v.VariancePercent > warningPct:
		v.Status = VarianceWarning
	default:
		v.Status = VarianceOK
	}
	return v
}
