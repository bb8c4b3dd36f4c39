package models

import "time"

// StockStatus is derived from quantity against the reorder level; it is
// never set directly.
type StockStatus string

const (
	StockAdequate StockStatus = "adequate"
	StockLow      StockStatus = "low"
	StockCritical StockStatus = "critical"
)

// StockDirection is the side of a stock movement.
type StockDirection string

const (
	StockIn  StockDirection = "in"
	StockOut StockDirection = "out"
)

// StockItem represents one material held at a site store or yard.
type StockItem struct {
	ID           string         `json:"id"`
	SiteID       string         `json:"siteId,omitempty"`
	MaterialName string         `json:"materialName"`
	Quantity     float64        `json:"quantity"`
	Unit         string         `json:"unit"`
	Location     string         `json:"location,omitempty"`
	LastUpdated  time.Time      `json:"lastUpdated"`
	ReorderLevel float64        `json:"reorderLevel"`
	Status       StockStatus    `json:"status"`
	LastMovement StockDirection `json:"lastMovement,omitempty"`
	LastQty      float64        `json:"lastQtyChange,omitempty"`
}

// DeriveStockStatus computes the status law: critical when quantity <= 0,
// low when quantity <= reorder level, adequate otherwise.
func DeriveStockStatus(quantity, reorderLevel float64) StockStatus {
	switch {
	case quantity <= 0:
		return StockCritical
	case quantity <= reorderLevel:
		return StockLow
	default:
		return StockAdequate
	}
}
