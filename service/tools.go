package service

import (
	"fmt"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/workflow"
)

// Tools returns the tool catalog for a site.
func (s *Service) Tools(siteID string) []models.Tool {
	out := []models.Tool{}
	for _, tool := range s.store.Tools.List() {
		if siteID != "" && tool.SiteID != siteID {
			continue
		}
		out = append(out, tool)
	}
	return out
}

// ToolRequests returns a user's checkout requests on a site. Either filter
// may be empty.
func (s *Service) ToolRequests(siteID, userID string) []models.ToolRequest {
	out := []models.ToolRequest{}
	for _, req := range s.store.ToolRequests.List() {
		if siteID != "" && req.SiteID != siteID {
			continue
		}
		if userID != "" && req.UserID != userID {
			continue
		}
		out = append(out, req)
	}
	return out
}

// RequestToolPayload is the input for RequestTool.
type RequestToolPayload struct {
	ToolID            string `json:"toolId" validate:"required"`
	SiteID            string `json:"siteId" validate:"required"`
	UserID            string `json:"userId" validate:"required"`
	RequestedDuration string `json:"requestedDuration" validate:"required"`
}

// RequestTool creates a pending checkout. The tool name is resolved from
// the catalog and denormalized onto the request.
func (s *Service) RequestTool(p RequestToolPayload) (models.ToolRequest, error) {
	if err := s.checkPayload(p); err != nil {
		return models.ToolRequest{}, err
	}

	toolName := ""
	for _, tool := range s.store.Tools.List() {
		if tool.ID == p.ToolID {
			toolName = tool.Name
			break
		}
	}
	if toolName == "" {
		return models.ToolRequest{}, fmt.Errorf("%w: tool %s", ErrNotFound, p.ToolID)
	}

	req := models.ToolRequest{
		ID:                s.newID(),
		ToolID:            p.ToolID,
		ToolName:          toolName,
		SiteID:            p.SiteID,
		UserID:            p.UserID,
		Status:            workflow.Tool.Initial,
		RequestedDuration: p.RequestedDuration,
		RequestedAt:       s.now(),
	}

	err := s.store.ToolRequests.Mutate(func(current []models.ToolRequest) ([]models.ToolRequest, error) {
		return append(append([]models.ToolRequest(nil), current...), req), nil
	})
	if err != nil {
		return models.ToolRequest{}, err
	}

	s.committed("tool_request", req.ID, "requested")
	return req, nil
}

// IssueTool hands the tool out: pending -> issued.
func (s *Service) IssueTool(id string) (models.ToolRequest, error) {
	return s.transitionToolRequest(id, workflow.ActionIssue)
}

// ReturnTool closes the checkout: issued -> returned.
func (s *Service) ReturnTool(id string) (models.ToolRequest, error) {
	return s.transitionToolRequest(id, workflow.ActionReturn)
}

// RejectToolRequest declines a pending checkout.
func (s *Service) RejectToolRequest(id string) (models.ToolRequest, error) {
	return s.transitionToolRequest(id, workflow.ActionReject)
}

func (s *Service) transitionToolRequest(id, action string) (models.ToolRequest, error) {
	var updated models.ToolRequest
	err := s.store.ToolRequests.Mutate(func(current []models.ToolRequest) ([]models.ToolRequest, error) {
		next := make([]models.ToolRequest, len(current))
		found := false
		for i, req := range current {
			if req.ID == id {
				found = true
				nextStatus, ok := workflow.Tool.Next(req.Status, action)
				if !ok {
					return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, workflow.Tool.ErrIllegal(req.Status, action))
				}
				now := s.now()
				req.Status = nextStatus
				switch nextStatus {
				case models.ToolIssued:
					req.IssuedAt = &now
				case models.ToolReturned:
					req.ReturnedAt = &now
				}
				updated = req
			}
			next[i] = req
		}
		if !found {
			return nil, fmt.Errorf("%w: tool request %s", ErrNotFound, id)
		}
		return next, nil
	})
	if err != nil {
		return models.ToolRequest{}, err
	}

	s.committed("tool_request", id, action)
	return updated, nil
}
