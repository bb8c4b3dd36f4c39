package service

import (
	"fmt"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/workflow"
)

// CreateGSTBillPayload is the input for CreateGSTBill. Totals are not
// accepted from the caller; they are derived from the line items.
type CreateGSTBillPayload struct {
	BillNumber  string               `json:"billNumber" validate:"required"`
	VendorName  string               `json:"vendorName" validate:"required"`
	VendorGST   string               `json:"vendorGST" validate:"required"`
	Items       []models.GSTLineItem `json:"items" validate:"required,min=1"`
	ProjectName string               `json:"projectName"`
}

// CreateGSTBill records a vendor invoice in draft with computed totals.
func (s *Service) CreateGSTBill(p CreateGSTBillPayload) (models.GSTBill, error) {
	if err := s.checkPayload(p); err != nil {
		return models.GSTBill{}, err
	}
	for i, item := range p.Items {
		if !item.Quantity.IsPositive() || item.Rate.IsNegative() || item.GSTPct.IsNegative() {
			return models.GSTBill{}, fmt.Errorf("%w: line item %d has invalid quantity, rate or gst", ErrValidation, i)
		}
	}

	total, gst, grand := models.ComputeGSTTotals(p.Items)
	bill := models.GSTBill{
		ID:          s.newID(),
		BillNumber:  p.BillNumber,
		VendorName:  p.VendorName,
		VendorGST:   p.VendorGST,
		Items:       p.Items,
		TotalAmount: total,
		GSTAmount:   gst,
		GrandTotal:  grand,
		Date:        s.now(),
		Status:      workflow.GSTBill.Initial,
		ProjectName: p.ProjectName,
	}

	err := s.store.GSTBills.Mutate(func(current []models.GSTBill) ([]models.GSTBill, error) {
		return append(append([]models.GSTBill(nil), current...), bill), nil
	})
	if err != nil {
		return models.GSTBill{}, err
	}

	s.committed("gst_bill", bill.ID, "created")
	return bill, nil
}

// MarkGSTBillSent moves a draft bill to sent.
func (s *Service) MarkGSTBillSent(id string) (models.GSTBill, error) {
	return s.transitionGSTBill(id, workflow.ActionSend)
}

// MarkGSTBillPaid settles a sent bill.
func (s *Service) MarkGSTBillPaid(id string) (models.GSTBill, error) {
	return s.transitionGSTBill(id, workflow.ActionPay)
}

func (s *Service) transitionGSTBill(id, action string) (models.GSTBill, error) {
	var updated models.GSTBill
	err := s.store.GSTBills.Mutate(func(current []models.GSTBill) ([]models.GSTBill, error) {
		next := make([]models.GSTBill, len(current))
		found := false
		for i, bill := range current {
			if bill.ID == id {
				found = true
				nextStatus, ok := workflow.GSTBill.Next(bill.Status, action)
				if !ok {
					return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, workflow.GSTBill.ErrIllegal(bill.Status, action))
				}
				bill.Status = nextStatus
				updated = bill
			}
			next[i] = bill
		}
		if !found {
			return nil, fmt.Errorf("%w: gst bill %s", ErrNotFound, id)
		}
		return next, nil
	})
	if err != nil {
		return models.GSTBill{}, err
	}

	s.committed("gst_bill", id, action)
	return updated, nil
}

// GSTBills returns all bills.
func (s *Service) GSTBills() []models.GSTBill {
	return s.store.GSTBills.List()
}
