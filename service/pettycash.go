package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/utils"
	"p9e.in/sitehub/workflow"
)

// AddPettyCashPayload is the input for AddPettyCash.
type AddPettyCashPayload struct {
	UserID     string          `json:"userId" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Purpose    string          `json:"purpose" validate:"required"`
	ReceiptRef string          `json:"receiptRef"`
	Lat        float64         `json:"lat"`
	Lon        float64         `json:"lon"`
	Address    string          `json:"address"`
}

// AddPettyCash records a geotagged expense claim in the pending state.
func (s *Service) AddPettyCash(p AddPettyCashPayload) (models.PettyCashEntry, error) {
	if err := s.checkPayload(p); err != nil {
		return models.PettyCashEntry{}, err
	}
	if !p.Amount.IsPositive() {
		return models.PettyCashEntry{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if err := utils.ValidateCoordinate(models.Coordinate{Lat: p.Lat, Lon: p.Lon}); err != nil {
		return models.PettyCashEntry{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	entry := models.PettyCashEntry{
		ID:         s.newID(),
		Amount:     p.Amount,
		Purpose:    p.Purpose,
		ReceiptRef: p.ReceiptRef,
		Lat:        p.Lat,
		Lon:        p.Lon,
		Address:    p.Address,
		UserID:     p.UserID,
		Timestamp:  s.now(),
		Status:     workflow.PettyCash.Initial,
	}

	err := s.store.PettyCash.Mutate(func(current []models.PettyCashEntry) ([]models.PettyCashEntry, error) {
		return append(append([]models.PettyCashEntry(nil), current...), entry), nil
	})
	if err != nil {
		return models.PettyCashEntry{}, err
	}

	s.committed("petty_cash", entry.ID, "added")
	return entry, nil
}

// DecidePettyCash approves or rejects a pending claim; both are terminal.
func (s *Service) DecidePettyCash(id string, approve bool) (models.PettyCashEntry, error) {
	action := workflow.ActionApprove
	if !approve {
		action = workflow.ActionReject
	}

	var updated models.PettyCashEntry
	err := s.store.PettyCash.Mutate(func(current []models.PettyCashEntry) ([]models.PettyCashEntry, error) {
		next := make([]models.PettyCashEntry, len(current))
		found := false
		for i, entry := range current {
			if entry.ID == id {
				found = true
				nextStatus, ok := workflow.PettyCash.Next(entry.Status, action)
				if !ok {
					return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, workflow.PettyCash.ErrIllegal(entry.Status, action))
				}
				entry.Status = nextStatus
				updated = entry
			}
			next[i] = entry
		}
		if !found {
			return nil, fmt.Errorf("%w: petty cash entry %s", ErrNotFound, id)
		}
		return next, nil
	})
	if err != nil {
		return models.PettyCashEntry{}, err
	}

	s.committed("petty_cash", id, action)
	return updated, nil
}

// PettyCash returns claims, optionally filtered by user.
func (s *Service) PettyCash(userID string) []models.PettyCashEntry {
	out := []models.PettyCashEntry{}
	for _, entry := range s.store.PettyCash.List() {
		if userID != "" && entry.UserID != userID {
			continue
		}
		out = append(out, entry)
	}
	return out
}
