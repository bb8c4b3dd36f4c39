package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialPriority ranks how urgently a material request is needed.
type MaterialPriority string

const (
	PriorityLow    MaterialPriority = "low"
	PriorityMedium MaterialPriority = "medium"
	PriorityHigh   MaterialPriority = "high"
)

// MaterialStatus is the approval state of a material request.
type MaterialStatus string

const (
	MaterialPending  MaterialStatus = "pending"
	MaterialApproved MaterialStatus = "approved"
	MaterialRejected MaterialStatus = "rejected"
)

// MaterialRequest represents a material indent raised from a site.
// Quantity times unit rate (when a rate is known) is the basis for the
// approval ceiling check.
type MaterialRequest struct {
	ID              string           `json:"id"`
	SiteID          string           `json:"siteId,omitempty"`
	RequestedBy     string           `json:"requestedBy"`
	RequestedByRole Role             `json:"requestedByRole"`
	MaterialName    string           `json:"materialName"`
	Quantity        decimal.Decimal  `json:"quantity"`
	Unit            string           `json:"unit"`
	Rate            *decimal.Decimal `json:"rate,omitempty"` // price per unit
	Priority        MaterialPriority `json:"priority"`
	Status          MaterialStatus   `json:"status"`
	Reason          string           `json:"reason,omitempty"`
	Timestamp       time.Time        `json:"timestamp"`
	ApprovedBy      string           `json:"approvedBy,omitempty"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
}

// Total returns quantity x rate and whether a rate was present to compute it.
func (m MaterialRequest) Total() (decimal.Decimal, bool) {
	if m.Rate == nil {
		return decimal.Zero, false
	}
	return m.Quantity.Mul(*m.Rate), true
}
