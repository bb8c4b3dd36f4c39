package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PettyCashStatus is the approval state of a petty cash claim.
type PettyCashStatus string

const (
	PettyCashPending  PettyCashStatus = "pending"
	PettyCashApproved PettyCashStatus = "approved"
	PettyCashRejected PettyCashStatus = "rejected"
)

// PettyCashEntry represents a geotagged out-of-pocket expense claim.
type PettyCashEntry struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Purpose    string          `json:"purpose"`
	ReceiptRef string          `json:"receiptRef,omitempty"`
	Lat        float64         `json:"lat"`
	Lon        float64         `json:"lon"`
	Address    string          `json:"address,omitempty"`
	UserID     string          `json:"userId"`
	Timestamp  time.Time       `json:"timestamp"`
	Status     PettyCashStatus `json:"status"`
}
