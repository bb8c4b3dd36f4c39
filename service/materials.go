package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/workflow"
)

// RequestMaterialPayload is the input for RequestMaterial.
type RequestMaterialPayload struct {
	SiteID          string                  `json:"siteId"`
	RequestedBy     string                  `json:"requestedBy" validate:"required"`
	RequestedByRole models.Role             `json:"requestedByRole" validate:"required"`
	MaterialName    string                  `json:"materialName" validate:"required"`
	Quantity        decimal.Decimal         `json:"quantity"`
	Unit            string                  `json:"unit" validate:"required"`
	Rate            *decimal.Decimal        `json:"rate"`
	Priority        models.MaterialPriority `json:"priority" validate:"required,oneof=low medium high"`
	Reason          string                  `json:"reason"`
}

// RequestMaterial creates a pending material request.
func (s *Service) RequestMaterial(p RequestMaterialPayload) (models.MaterialRequest, error) {
	if err := s.checkPayload(p); err != nil {
		return models.MaterialRequest{}, err
	}
	if !p.Quantity.IsPositive() {
		return models.MaterialRequest{}, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if p.Rate != nil && p.Rate.IsNegative() {
		return models.MaterialRequest{}, fmt.Errorf("%w: rate must not be negative", ErrValidation)
	}

	req := models.MaterialRequest{
		ID:              s.newID(),
		SiteID:          p.SiteID,
		RequestedBy:     p.RequestedBy,
		RequestedByRole: p.RequestedByRole,
		MaterialName:    p.MaterialName,
		Quantity:        p.Quantity,
		Unit:            p.Unit,
		Rate:            p.Rate,
		Priority:        p.Priority,
		Status:          workflow.Material.Initial,
		Reason:          p.Reason,
		Timestamp:       s.now(),
	}

	err := s.store.MaterialRequests.Mutate(func(current []models.MaterialRequest) ([]models.MaterialRequest, error) {
		return append(append([]models.MaterialRequest(nil), current...), req), nil
	})
	if err != nil {
		return models.MaterialRequest{}, err
	}

	s.committed("material_request", req.ID, "requested")
	return req, nil
}

// DecideMaterialRequest approves or rejects a pending request. The approver
// must hold an approving role, must not be the requester, and may only
// approve totals above the configured ceiling with a higher-tier role.
// These preconditions are checked before any mutation.
func (s *Service) DecideMaterialRequest(id string, approve bool, actor string, actorRole models.Role, rejectionReason string) (models.MaterialRequest, error) {
	if !actorRole.IsApprover() {
		return models.MaterialRequest{}, fmt.Errorf("%w: role %q may not decide material requests", ErrAuthorization, actorRole)
	}

	action := workflow.ActionApprove
	if !approve {
		action = workflow.ActionReject
	}

	ceiling := decimal.NewFromFloat(s.cfg.MaterialApprovalCeiling)

	var updated models.MaterialRequest
	err := s.store.MaterialRequests.Mutate(func(current []models.MaterialRequest) ([]models.MaterialRequest, error) {
		next := make([]models.MaterialRequest, len(current))
		found := false
		for i, req := range current {
			if req.ID == id {
				found = true
				if req.RequestedBy == actor {
					return nil, fmt.Errorf("%w: requester may not decide their own request", ErrAuthorization)
				}
				if approve {
					if total, ok := req.Total(); ok && total.GreaterThan(ceiling) && !actorRole.CanApproveAboveCeiling() {
						return nil, fmt.Errorf("%w: total %s exceeds approval ceiling %s for role %q",
							ErrAuthorization, total.StringFixed(2), ceiling.StringFixed(2), actorRole)
					}
				}
				nextStatus, ok := workflow.Material.Next(req.Status, action)
				if !ok {
					return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, workflow.Material.ErrIllegal(req.Status, action))
				}
				req.Status = nextStatus
				if approve {
					req.ApprovedBy = actor
					req.RejectionReason = ""
				} else {
					req.ApprovedBy = ""
					req.RejectionReason = rejectionReason
				}
				updated = req
			}
			next[i] = req
		}
		if !found {
			return nil, fmt.Errorf("%w: material request %s", ErrNotFound, id)
		}
		return next, nil
	})
	if err != nil {
		return models.MaterialRequest{}, err
	}

	s.committed("material_request", id, action)
	return updated, nil
}

// MaterialRequests returns requests, optionally filtered by site.
func (s *Service) MaterialRequests(siteID string) []models.MaterialRequest {
	out := []models.MaterialRequest{}
	for _, req := range s.store.MaterialRequests.List() {
		if siteID != "" && req.SiteID != siteID {
			continue
		}
		out = append(out, req)
	}
	return out
}
