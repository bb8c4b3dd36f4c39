package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GSTBillStatus is the billing state of a vendor invoice.
type GSTBillStatus string

const (
	GSTDraft GSTBillStatus = "draft"
	GSTSent  GSTBillStatus = "sent"
	GSTPaid  GSTBillStatus = "paid"
)

// GSTLineItem is one line on a GST bill.
type GSTLineItem struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	GSTPct   decimal.Decimal `json:"gst"` // percent, e.g. 18
}

// GSTBill represents a vendor invoice with GST breakup. Totals are derived
// from line items at creation and never edited independently.
type GSTBill struct {
	ID          string          `json:"id"`
	BillNumber  string          `json:"billNumber"`
	VendorName  string          `json:"vendorName"`
	VendorGST   string          `json:"vendorGST"`
	Items       []GSTLineItem   `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	GSTAmount   decimal.Decimal `json:"gstAmount"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
	Date        time.Time       `json:"date"`
	Status      GSTBillStatus   `json:"status"`
	ProjectName string          `json:"projectName,omitempty"`
}

// ComputeGSTTotals derives taxable total, GST amount and grand total from
// the line items.
func ComputeGSTTotals(items []GSTLineItem) (total, gst, grand decimal.Decimal) {
	hundred := decimal.NewFromInt(100)
	for _, it := range items {
		line := it.Quantity.Mul(it.Rate)
		total = total.Add(line)
		gst = gst.Add(line.Mul(it.GSTPct).Div(hundred))
	}
	grand = total.Add(gst)
	return total, gst, grand
}
