package service

import (
	"fmt"
	"time"

	"p9e.in/sitehub/models"
	"p9e.in/sitehub/utils"
	"p9e.in/sitehub/workflow"
)

// RequestPermitPayload is the input for RequestPermit.
type RequestPermitPayload struct {
	TaskName   string `json:"taskName" validate:"required"`
	WorkerID   string `json:"workerId" validate:"required"`
	WorkerName string `json:"workerName" validate:"required"`
	SiteID     string `json:"siteId" validate:"required"`
}

// RequestPermit opens a permit-to-work in the requested state. The one-time
// code is only generated when the permit moves to otp_sent.
func (s *Service) RequestPermit(p RequestPermitPayload) (models.PermitRequest, error) {
	if err := s.checkPayload(p); err != nil {
		return models.PermitRequest{}, err
	}

	permit := models.PermitRequest{
		ID:          s.newID(),
		TaskName:    p.TaskName,
		WorkerID:    p.WorkerID,
		WorkerName:  p.WorkerName,
		SiteID:      p.SiteID,
		Status:      workflow.Permit.Initial,
		RequestedAt: s.now(),
	}

	err := s.store.Permits.Mutate(func(current []models.PermitRequest) ([]models.PermitRequest, error) {
		return append(append([]models.PermitRequest(nil), current...), permit), nil
	})
	if err != nil {
		return models.PermitRequest{}, err
	}

	s.committed("permit", permit.ID, "requested")
	return permit, nil
}

// SendPermitOTP generates the one-time code and moves the permit to
// otp_sent. The code is numeric with the configured length.
func (s *Service) SendPermitOTP(id string) (models.PermitRequest, error) {
	otp, err := utils.GenerateOTP(s.cfg.PermitOTPLength)
	if err != nil {
		return models.PermitRequest{}, err
	}

	var updated models.PermitRequest
	err = s.store.Permits.Mutate(func(current []models.PermitRequest) ([]models.PermitRequest, error) {
		next := make([]models.PermitRequest, len(current))
		found := false
		for i, permit := range current {
			if permit.ID == id {
				found = true
				nextStatus, ok := workflow.Permit.Next(permit.Status, workflow.ActionSendOTP)
				if !ok {
					return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, workflow.Permit.ErrIllegal(permit.Status, workflow.ActionSendOTP))
				}
				now := s.now()
				permit.Status = nextStatus
				permit.OTP = otp
				permit.OTPSentAt = &now
				updated = permit
			}
			next[i] = permit
		}
		if !found {
			return nil, fmt.Errorf("%w: permit %s", ErrNotFound, id)
		}
		return next, nil
	})
	if err != nil {
		return models.PermitRequest{}, err
	}

	s.committed("permit", id, "otp_sent")
	return updated, nil
}

// VerifyPermitOTP checks the entered code against the permit's one-time
// code. A mismatch is an expected user-correctable condition: it returns
// false with a nil error and the permit stays in otp_sent. A match moves
// the permit to verified and notifies.
func (s *Service) VerifyPermitOTP(id, enteredOTP string) (bool, error) {
	matched := false
	err := s.store.Permits.Mutate(func(current []models.PermitRequest) ([]models.PermitRequest, error) {
		idx := -1
		for i, permit := range current {
			if permit.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: permit %s", ErrNotFound, id)
		}

		permit := current[idx]
		if !workflow.Permit.Can(permit.Status, workflow.ActionVerify) {
			return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, workflow.Permit.ErrIllegal(permit.Status, workflow.ActionVerify))
		}
		if s.otpExpired(permit) {
			return nil, fmt.Errorf("%w: one-time code has expired", ErrValidation)
		}
		if permit.OTP == "" || permit.OTP != enteredOTP {
			// wrong code: no mutation, no notification
			return current, nil
		}

		matched = true
		now := s.now()
		next := make([]models.PermitRequest, len(current))
		copy(next, current)
		permit.Status = models.PermitVerified
		permit.VerifiedAt = &now
		next[idx] = permit
		return next, nil
	})
	if err != nil {
		return false, err
	}

	if matched {
		s.committed("permit", id, "verified")
	}
	return matched, nil
}

// RejectPermit declines a permit from any non-terminal state.
func (s *Service) RejectPermit(id string) (models.PermitRequest, error) {
	var updated models.PermitRequest
	err := s.store.Permits.Mutate(func(current []models.PermitRequest) ([]models.PermitRequest, error) {
		next := make([]models.PermitRequest, len(current))
		found := false
		for i, permit := range current {
			if permit.ID == id {
				found = true
				nextStatus, ok := workflow.Permit.Next(permit.Status, workflow.ActionReject)
				if !ok {
					return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, workflow.Permit.ErrIllegal(permit.Status, workflow.ActionReject))
				}
				permit.Status = nextStatus
				updated = permit
			}
			next[i] = permit
		}
		if !found {
			return nil, fmt.Errorf("%w: permit %s", ErrNotFound, id)
		}
		return next, nil
	})
	if err != nil {
		return models.PermitRequest{}, err
	}

	s.committed("permit", id, "rejected")
	return updated, nil
}

// Permits returns permit requests, optionally filtered by site.
func (s *Service) Permits(siteID string) []models.PermitRequest {
	out := []models.PermitRequest{}
	for _, permit := range s.store.Permits.List() {
		if siteID != "" && permit.SiteID != siteID {
			continue
		}
		out = append(out, permit)
	}
	return out
}

// otpExpired applies the optional TTL policy. TTL zero means codes never
// expire, matching the original behavior.
func (s *Service) otpExpired(p models.PermitRequest) bool {
	if s.cfg.PermitOTPTTLMinutes <= 0 || p.OTPSentAt == nil {
		return false
	}
	deadline := p.OTPSentAt.Add(time.Duration(s.cfg.PermitOTPTTLMinutes) * time.Minute)
	return s.now().After(deadline)
}
